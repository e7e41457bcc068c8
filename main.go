package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"weather-cli/app"
	"weather-cli/cities"
	"weather-cli/datasource"
)

func main() {
	// Parse command line arguments
	envFile := flag.String("env", ".env", "Path to an optional .env file")
	timeout := flag.Duration("timeout", 0, "Forecast request timeout (overrides FORECAST_TIMEOUT)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")
	flag.Parse()

	// Load configuration
	config, err := datasource.LoadConfig(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *timeout > 0 {
		config.Timeout = *timeout
	}
	if *logLevel != "" {
		config.LogLevel = *logLevel
	}

	logger, err := newLogger(config.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	os.Exit(run(config, logger))
}

func run(config *datasource.Config, logger *zap.Logger) int {
	defer logger.Sync()

	source := datasource.NewOpenMeteoSource(config, logger)
	a := app.New(cities.Default(), source, os.Stdin, os.Stdout, logger)

	start := time.Now()
	if err := a.Run(context.Background()); err != nil {
		logger.Debug("run failed", zap.Duration("elapsed", time.Since(start)))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	logger.Debug("run complete", zap.Duration("elapsed", time.Since(start)))
	return 0
}

// newLogger builds a console logger writing to stderr so stdout only carries the forecast.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Development = false
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
