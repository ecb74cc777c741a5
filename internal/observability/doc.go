// Package observability provides logging and metrics functionality for
// vigil.
//
// # Logging
//
// The Logger interface provides structured logging backed by zap:
//
//	logger, err := observability.NewLogger(observability.LogConfig{
//	    Level:  "info",
//	    Format: "json",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer logger.Sync()
//
//	logger.Info("configuration loaded",
//	    observability.Int("services", 3),
//	)
//
// # Metrics
//
// Prometheus metrics for configuration loading:
//
//	metrics := observability.NewLoadMetrics("vigil")
//	err := prometheus.WriteToTextfile(path, metrics.Registry())
package observability
