package config

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the structured error types below.
var (
	ErrNilConfig           = errors.New("configuration is nil")
	ErrConfigIO            = errors.New("config file unreadable")
	ErrSubstitution        = errors.New("environment substitution failed")
	ErrParse               = errors.New("config parse failed")
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
)

// IOError is returned when the configuration file cannot be read.
type IOError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("failed to read config file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying OS error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target.
func (e *IOError) Is(target error) bool {
	if target == ErrConfigIO {
		return true
	}
	_, ok := target.(*IOError)
	return ok
}

// SubstitutionError is returned when a ${NAME} placeholder references a
// variable missing from the environment.
type SubstitutionError struct {
	Name string
}

// Error implements the error interface.
func (e *SubstitutionError) Error() string {
	return fmt.Sprintf("cannot substitute environment variable: %s is not set", e.Name)
}

// Is checks if the error matches the target.
func (e *SubstitutionError) Is(target error) bool {
	if target == ErrSubstitution {
		return true
	}
	_, ok := target.(*SubstitutionError)
	return ok
}

// ParseError is returned for malformed TOML or a schema mismatch.
// Location is either a line:column position or a TOML key path.
type ParseError struct {
	Location string
	Message  string
	Err      error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Location != "" {
		return fmt.Sprintf("syntax error in config file at %s: %s", e.Location, e.Message)
	}
	return fmt.Sprintf("syntax error in config file: %s", e.Message)
}

// Unwrap returns the underlying decoder error, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target.
func (e *ParseError) Is(target error) bool {
	if target == ErrParse {
		return true
	}
	_, ok := target.(*ParseError)
	return ok
}

// Scope identifies the container in which an identifier must be unique.
type Scope string

// Identifier scopes.
const (
	ScopeService        Scope = "service"
	ScopeNodeInService  Scope = "node-in-service"
	ScopeGroupInService Scope = "group-in-service"
	ScopeNodeInGroup    Scope = "node-in-group"
)

// DuplicateIdentifierError reports the first identifier found twice within
// the same scope. ServiceID is empty for ScopeService and GroupID is only
// set for ScopeNodeInGroup.
type DuplicateIdentifierError struct {
	Scope     Scope
	ID        string
	ServiceID string
	GroupID   string
}

// Error implements the error interface.
func (e *DuplicateIdentifierError) Error() string {
	switch e.Scope {
	case ScopeService:
		return fmt.Sprintf("configuration has duplicate service identifier: %s", e.ID)
	case ScopeNodeInService:
		return fmt.Sprintf("configuration has duplicate node identifier: %s in service: %s",
			e.ID, e.ServiceID)
	case ScopeGroupInService:
		return fmt.Sprintf("configuration has duplicate group identifier: %s in service: %s",
			e.ID, e.ServiceID)
	case ScopeNodeInGroup:
		return fmt.Sprintf("configuration has duplicate node identifier: %s in group: %s from service: %s",
			e.ID, e.GroupID, e.ServiceID)
	default:
		return fmt.Sprintf("configuration has duplicate identifier: %s (%s)", e.ID, e.Scope)
	}
}

// Is checks if the error matches the target.
func (e *DuplicateIdentifierError) Is(target error) bool {
	if target == ErrDuplicateIdentifier {
		return true
	}
	_, ok := target.(*DuplicateIdentifierError)
	return ok
}
