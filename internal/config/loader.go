package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/vyrodovalexey/vigil/internal/observability"
)

// Loader reads, substitutes, parses and validates configuration files.
type Loader struct {
	env     Environment
	logger  observability.Logger
	metrics *observability.LoadMetrics
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithEnvironment sets the variables used for ${VAR} substitution.
func WithEnvironment(env Environment) LoaderOption {
	return func(l *Loader) {
		l.env = env
	}
}

// WithLogger sets the loader logger.
func WithLogger(logger observability.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithMetrics records load outcomes and topology sizes.
func WithMetrics(m *observability.LoadMetrics) LoaderOption {
	return func(l *Loader) {
		l.metrics = m
	}
}

// NewLoader creates a new configuration loader. Without WithEnvironment,
// any ${VAR} placeholder fails substitution.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		env:    Environment{},
		logger: observability.NopLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadConfig loads and validates configuration from a file path.
func LoadConfig(path string, env Environment) (*Config, error) {
	return NewLoader(WithEnvironment(env)).Load(path)
}

// LoadConfigFromReader loads and validates configuration from an io.Reader.
func LoadConfigFromReader(r io.Reader, env Environment) (*Config, error) {
	return NewLoader(WithEnvironment(env)).LoadFromReader(r)
}

// Load loads configuration from a file path.
func (l *Loader) Load(path string) (*Config, error) {
	start := time.Now()

	l.logger.Debug("reading config file", observability.String("path", path))

	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the operator
	if err != nil {
		return nil, l.fail(&IOError{Path: path, Err: err}, start)
	}

	l.logger.Debug("read config file",
		observability.String("path", path),
		observability.Int("bytes", len(data)),
	)

	return l.finish(data, start)
}

// LoadFromReader loads configuration from an io.Reader.
func (l *Loader) LoadFromReader(r io.Reader) (*Config, error) {
	start := time.Now()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, l.fail(&IOError{Path: "<reader>", Err: err}, start)
	}

	return l.finish(data, start)
}

func (l *Loader) finish(data []byte, start time.Time) (*Config, error) {
	cfg, err := l.parseConfig(data)
	if err != nil {
		return nil, l.fail(err, start)
	}

	stats := cfg.Stats()
	if l.metrics != nil {
		l.metrics.RecordLoad(observability.LoadResultSuccess, time.Since(start))
		l.metrics.SetTopology(stats.Services, stats.Groups, stats.Nodes())
	}

	if stats.Services == 0 {
		l.logger.Warn("configuration defines no services")
	}

	l.logger.Info("configuration loaded",
		observability.Int("services", stats.Services),
		observability.Int("groups", stats.Groups),
		observability.Int("nodes", stats.Nodes()),
		observability.Duration("duration", time.Since(start)),
	)

	return cfg, nil
}

func (l *Loader) fail(err error, start time.Time) error {
	if l.metrics != nil {
		l.metrics.RecordLoad(loadResult(err), time.Since(start))
	}
	return err
}

// parseConfig substitutes, decodes and validates raw configuration data.
func (l *Loader) parseConfig(data []byte) (*Config, error) {
	content, err := substituteEnvVars(string(data), l.env)
	if err != nil {
		return nil, err
	}

	var config Config
	dec := toml.NewDecoder(strings.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&config); err != nil {
		return nil, toParseError(err)
	}

	if err := checkSchema(content, &config); err != nil {
		return nil, err
	}

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// toParseError converts a TOML decoder error into a ParseError carrying the
// offending position or key.
func toParseError(err error) *ParseError {
	var strictErr *toml.StrictMissingError
	if errors.As(err, &strictErr) && len(strictErr.Errors) > 0 {
		first := strictErr.Errors[0]
		row, col := first.Position()
		return &ParseError{
			Location: fmt.Sprintf("line %d, column %d", row, col),
			Message:  fmt.Sprintf("unknown field %q", joinKey(first.Key())),
			Err:      err,
		}
	}

	var decErr *toml.DecodeError
	if errors.As(err, &decErr) {
		row, col := decErr.Position()
		return &ParseError{
			Location: fmt.Sprintf("line %d, column %d", row, col),
			Message:  decErr.Error(),
			Err:      err,
		}
	}

	return &ParseError{Message: err.Error(), Err: err}
}

func joinKey(key toml.Key) string {
	return strings.Join(key, ".")
}

func loadResult(err error) string {
	switch {
	case errors.Is(err, ErrConfigIO):
		return observability.LoadResultIOError
	case errors.Is(err, ErrSubstitution):
		return observability.LoadResultSubstitutionError
	case errors.Is(err, ErrParse):
		return observability.LoadResultParseError
	case errors.Is(err, ErrDuplicateIdentifier):
		return observability.LoadResultDuplicateIdentifier
	default:
		return observability.LoadResultUnknown
	}
}
