package config

// idSet records identifiers seen within one scope.
type idSet map[string]struct{}

// insert adds id to the set and reports whether it was absent.
func (s idSet) insert(id string) bool {
	if _, exists := s[id]; exists {
		return false
	}
	s[id] = struct{}{}
	return true
}

// Validator checks identifier uniqueness across the probe topology.
//
// Services are unique within the configuration, groups and direct nodes
// within their service, and grouped nodes within their group. Direct nodes
// and grouped nodes never share a scope. The first violation in tree order
// is returned.
type Validator struct{}

// NewValidator creates a new configuration validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate validates a configuration.
func Validate(config *Config) error {
	return NewValidator().Validate(config)
}

// Validate validates the configuration and returns the first duplicate
// identifier found.
func (v *Validator) Validate(config *Config) error {
	if config == nil {
		return ErrNilConfig
	}

	services := make(idSet)
	for i := range config.Probe.Service {
		service := &config.Probe.Service[i]
		if !services.insert(service.ID) {
			return &DuplicateIdentifierError{Scope: ScopeService, ID: service.ID}
		}
		if err := v.validateService(service); err != nil {
			return err
		}
	}

	return nil
}

// validateService validates the node and group scopes of one service.
func (v *Validator) validateService(service *Service) error {
	nodes := make(idSet)
	for i := range service.Node {
		if !nodes.insert(service.Node[i].ID) {
			return &DuplicateIdentifierError{
				Scope:     ScopeNodeInService,
				ID:        service.Node[i].ID,
				ServiceID: service.ID,
			}
		}
	}

	groups := make(idSet)
	for i := range service.Group {
		group := &service.Group[i]
		if !groups.insert(group.ID) {
			return &DuplicateIdentifierError{
				Scope:     ScopeGroupInService,
				ID:        group.ID,
				ServiceID: service.ID,
			}
		}
		if err := v.validateGroup(service.ID, group); err != nil {
			return err
		}
	}

	return nil
}

// validateGroup validates node uniqueness within one group.
func (v *Validator) validateGroup(serviceID string, group *Group) error {
	nodes := make(idSet)
	for i := range group.Node {
		if !nodes.insert(group.Node[i].ID) {
			return &DuplicateIdentifierError{
				Scope:     ScopeNodeInGroup,
				ID:        group.Node[i].ID,
				ServiceID: serviceID,
				GroupID:   group.ID,
			}
		}
	}
	return nil
}
