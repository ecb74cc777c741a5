package config

import (
	"os"
	"regexp"
	"strings"
)

// envVarPattern matches ${VAR} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Environment maps variable names to values for placeholder substitution.
type Environment map[string]string

// EnvironmentFromOS snapshots the current process environment.
func EnvironmentFromOS() Environment {
	vars := os.Environ()
	env := make(Environment, len(vars))
	for _, kv := range vars {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		env[name] = value
	}
	return env
}

// Lookup returns the value of the named variable.
func (e Environment) Lookup(name string) (string, bool) {
	v, ok := e[name]
	return v, ok
}

// substituteEnvVars replaces every ${VAR} placeholder with its value from env.
// The first placeholder without a value, in text order, fails the whole
// substitution.
func substituteEnvVars(content string, env Environment) (string, error) {
	matches := envVarPattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content, nil
	}

	var sb strings.Builder
	sb.Grow(len(content))

	last := 0
	for _, m := range matches {
		name := content[m[2]:m[3]]
		value, ok := env.Lookup(name)
		if !ok {
			return "", &SubstitutionError{Name: name}
		}
		sb.WriteString(content[last:m[0]])
		sb.WriteString(value)
		last = m[1]
	}
	sb.WriteString(content[last:])

	return sb.String(), nil
}
