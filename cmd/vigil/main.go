// Package main is the entry point for vigil.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vyrodovalexey/vigil/internal/config"
	"github.com/vyrodovalexey/vigil/internal/observability"
)

// Version information (set at build time).
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

// cliFlags holds command line flags.
type cliFlags struct {
	configPath  string
	logLevel    string
	logFormat   string
	textfile    string
	showVersion bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes the startup sequence and returns the process exit code.
func run(args []string, stdout io.Writer) int {
	flags, err := parseFlags(args)
	if err != nil {
		return 2
	}

	if flags.showVersion {
		printVersion(stdout)
		return 0
	}

	logger, err := initLogger(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	metrics := observability.NewLoadMetrics("vigil")

	_, loadErr := loadAndValidateConfig(flags.configPath, config.EnvironmentFromOS(), logger, metrics)

	if flags.textfile != "" {
		if err := prometheus.WriteToTextfile(flags.textfile, metrics.Registry()); err != nil {
			logger.Error("failed to write metrics textfile",
				observability.String("path", flags.textfile),
				observability.Error(err),
			)
			return 1
		}
	}

	if loadErr != nil {
		return 1
	}

	return 0
}

// parseFlags parses command line flags.
func parseFlags(args []string) (cliFlags, error) {
	var flags cliFlags

	fs := flag.NewFlagSet("vigil", flag.ContinueOnError)
	fs.StringVar(&flags.configPath, "config", getEnvOrDefault("VIGIL_CONFIG_PATH", "config.cfg"),
		"Path to configuration file")
	fs.StringVar(&flags.logLevel, "log-level", getEnvOrDefault("VIGIL_LOG_LEVEL", "info"),
		"Log level (debug, info, warn, error)")
	fs.StringVar(&flags.logFormat, "log-format", getEnvOrDefault("VIGIL_LOG_FORMAT", "json"),
		"Log format (json, console)")
	fs.StringVar(&flags.textfile, "metrics-textfile", getEnvOrDefault("VIGIL_METRICS_TEXTFILE", ""),
		"Write load metrics to this file for the node_exporter textfile collector")
	fs.BoolVar(&flags.showVersion, "version", false, "Show version information")

	if err := fs.Parse(args); err != nil {
		return cliFlags{}, err
	}

	return flags, nil
}

// printVersion prints version information.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "vigil version %s\n", version)
	fmt.Fprintf(w, "  Build time: %s\n", buildTime)
	fmt.Fprintf(w, "  Git commit: %s\n", gitCommit)
}

// initLogger initializes the logger.
func initLogger(flags cliFlags) (observability.Logger, error) {
	return observability.NewLogger(observability.LogConfig{
		Level:  flags.logLevel,
		Format: flags.logFormat,
		Output: "stderr",
	})
}

// loadAndValidateConfig loads and validates the configuration. Any error is
// fatal to startup; the caller is expected to exit.
func loadAndValidateConfig(
	configPath string,
	env config.Environment,
	logger observability.Logger,
	metrics *observability.LoadMetrics,
) (*config.Config, error) {
	logger.Info("starting vigil",
		observability.String("version", version),
		observability.String("config", configPath),
	)

	loader := config.NewLoader(
		config.WithEnvironment(env),
		config.WithLogger(logger),
		config.WithMetrics(metrics),
	)

	cfg, err := loader.Load(configPath)
	if err != nil {
		logger.Error("invalid configuration", observability.Error(err))
		return nil, err
	}

	for _, svc := range cfg.Probe.Service {
		logger.Debug("service configured",
			observability.String("service", svc.ID),
			observability.Int("nodes", len(svc.Node)),
			observability.Int("groups", len(svc.Group)),
		)
	}

	return cfg, nil
}
