package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstituteEnvVars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		env      Environment
		expected string
		missing  string
	}{
		{
			name:     "simple substitution",
			input:    `url = "http://x:${PORT}"`,
			env:      Environment{"PORT": "8080"},
			expected: `url = "http://x:8080"`,
		},
		{
			name:     "multiple substitutions",
			input:    "host = ${HOST}, port = ${PORT}",
			env:      Environment{"HOST": "localhost", "PORT": "8080"},
			expected: "host = localhost, port = 8080",
		},
		{
			name:     "substitution inside identifier",
			input:    `id = "${REGION}-web"`,
			env:      Environment{"REGION": "eu"},
			expected: `id = "eu-web"`,
		},
		{
			name:     "empty value",
			input:    "token = '${TOKEN}'",
			env:      Environment{"TOKEN": ""},
			expected: "token = ''",
		},
		{
			name:     "no placeholders",
			input:    `id = "plain"`,
			env:      Environment{},
			expected: `id = "plain"`,
		},
		{
			name:     "non placeholder dollar left untouched",
			input:    "price = '$100 ${} ${1BAD} $PORT'",
			env:      Environment{"PORT": "8080"},
			expected: "price = '$100 ${} ${1BAD} $PORT'",
		},
		{
			name:     "value is not rescanned",
			input:    "a = '${A}'",
			env:      Environment{"A": "${B}"},
			expected: "a = '${B}'",
		},
		{
			name:    "missing variable",
			input:   `url = "http://x:${PORT}"`,
			env:     Environment{},
			missing: "PORT",
		},
		{
			name:    "first missing variable reported",
			input:   "${SET} ${FIRST} ${SECOND}",
			env:     Environment{"SET": "1"},
			missing: "FIRST",
		},
		{
			name:    "nil environment",
			input:   "${HOME}",
			env:     nil,
			missing: "HOME",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := substituteEnvVars(tt.input, tt.env)

			if tt.missing != "" {
				var subErr *SubstitutionError
				require.ErrorAs(t, err, &subErr)
				assert.Equal(t, tt.missing, subErr.Name)
				assert.ErrorIs(t, err, ErrSubstitution)
				assert.Contains(t, err.Error(), tt.missing)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestEnvironmentFromOS(t *testing.T) {
	t.Setenv("VIGIL_TEST_ENV", "a=b")

	env := EnvironmentFromOS()

	value, ok := env.Lookup("VIGIL_TEST_ENV")
	assert.True(t, ok)
	assert.Equal(t, "a=b", value)

	_, ok = env.Lookup("VIGIL_TEST_ENV_UNSET_SURELY")
	assert.False(t, ok)
}
