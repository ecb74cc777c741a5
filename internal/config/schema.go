package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// schemaValidator checks the struct-tag constraints. It reports fields by
// their TOML key names.
var schemaValidator = newSchemaValidator()

func newSchemaValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("toml"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// presenceDocument mirrors the topology with pointer ids so that an absent
// id is told apart from an empty one. Only key presence is checked here.
type presenceDocument struct {
	Probe presenceProbe `toml:"probe"`
}

type presenceProbe struct {
	Service []presenceService `toml:"service" validate:"dive"`
}

type presenceService struct {
	ID    *string         `toml:"id" validate:"required"`
	Node  []presenceNode  `toml:"node" validate:"dive"`
	Group []presenceGroup `toml:"group" validate:"dive"`
}

type presenceGroup struct {
	ID   *string        `toml:"id" validate:"required"`
	Node []presenceNode `toml:"node" validate:"required,dive"`
}

type presenceNode struct {
	ID *string `toml:"id" validate:"required"`
}

// checkSchema returns a ParseError for the first missing required key, then
// for the first field of cfg violating its value constraint. content must
// already have decoded into cfg.
func checkSchema(content string, cfg *Config) error {
	var doc presenceDocument
	if err := toml.Unmarshal([]byte(content), &doc); err != nil {
		return toParseError(err)
	}

	if err := validateStruct(&doc); err != nil {
		return err
	}

	return validateStruct(cfg)
}

func validateStruct(s any) error {
	err := schemaValidator.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ParseError{Message: err.Error(), Err: err}
	}

	fe := verrs[0]
	return &ParseError{
		Location: tomlPath(fe.Namespace()),
		Message:  schemaMessage(fe),
		Err:      err,
	}
}

// tomlPath strips the root struct name from a validator namespace, turning
// "Config.probe.service[0].id" into "probe.service[0].id".
func tomlPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func schemaMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("missing required field %q", fe.Field())
	case "oneof":
		return fmt.Sprintf("invalid value %q for field %q, expected one of: %s",
			fmt.Sprint(fe.Value()), fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("field %q failed %q constraint", fe.Field(), fe.Tag())
	}
}
