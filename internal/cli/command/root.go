// Package command provides CLI command definitions for surveyauth.
package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/surveyauth-go/internal/cli/config"
	"github.com/yndnr/surveyauth-go/internal/cli/output"
	"github.com/yndnr/surveyauth-go/internal/core/service"
	"github.com/yndnr/surveyauth-go/internal/infra/buildinfo"
	"github.com/yndnr/surveyauth-go/internal/infra/shutdown"
	"github.com/yndnr/surveyauth-go/internal/telemetry/logger"
	"github.com/yndnr/surveyauth-go/internal/telemetry/metric"
)

const (
	runtimeKey      = "runtime"
	shutdownTimeout = 5 * time.Second
)

// flagKeys maps global flags to configuration keys.
var flagKeys = map[string]string{
	"key":          "issuer.private_key",
	"salt-length":  "issuer.salt_length",
	"hash-length":  "issuer.hash_length",
	"parallelism":  "issuer.parallelism",
	"max-range":    "issuer.max_range",
	"output":       "output.format",
	"log-level":    "log.level",
	"log-format":   "log.format",
	"metrics-file": "metrics.file",
}

// Runtime holds the per-invocation state built by the Before hook.
type Runtime struct {
	Config   *config.CLIConfig
	Logger   logger.Logger
	Metrics  *metric.Registry
	Shutdown *shutdown.Handler

	ctx    context.Context
	cancel context.CancelFunc
}

// Context returns the invocation context, canceled on SIGINT or SIGTERM.
func (rt *Runtime) Context() context.Context {
	return rt.ctx
}

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:     "surveyauth",
		Usage:    "Issue and verify stateless survey tokens",
		Version:  buildinfo.String(),
		Flags:    globalFlags(),
		Metadata: map[string]any{},
		Commands: []*cli.Command{
			GenerateCommand(),
			GenerateRangeCommand(),
			VerifyCommand(),
			ConfigCommand(),
		},
		Before: setup,
		After:  teardown,
		// Exit codes are resolved by Run so the app never calls os.Exit itself.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

// Run executes the application and returns the process exit status.
func Run(args []string, stdout, stderr io.Writer) int {
	app := App()
	app.Writer = stdout
	app.ErrWriter = stderr

	err := app.Run(args)
	if err == nil {
		return 0
	}

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		if msg := exitErr.Error(); msg != "" {
			fmt.Fprintf(stderr, "error: %s\n", msg)
		}
		return exitErr.ExitCode()
	}

	fmt.Fprintf(stderr, "error: %v\n", err)
	return 1
}

// globalFlags returns the global CLI flags.
//
// Flags carry no defaults of their own; unset flags leave the value
// from config file, environment or built-in defaults in place.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a YAML configuration file",
		},
		&cli.StringFlag{
			Name:    "key",
			Aliases: []string{"k"},
			Usage:   "Private key shared by issuer and verifier",
		},
		&cli.IntFlag{
			Name:  "salt-length",
			Usage: fmt.Sprintf("Salt length in hex characters (default %d)", service.DefaultSaltLength),
		},
		&cli.IntFlag{
			Name:  "hash-length",
			Usage: fmt.Sprintf("Hash length in hex characters (default %d)", service.DefaultHashLength),
		},
		&cli.IntFlag{
			Name:  "parallelism",
			Usage: "Workers for generate-range (default GOMAXPROCS)",
		},
		&cli.Int64Flag{
			Name:  "max-range",
			Usage: fmt.Sprintf("Largest range generate-range accepts (default %d)", service.DefaultMaxRange),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: json, yaml, table (default json)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error (default warn)",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: json, text (default json)",
		},
		&cli.StringFlag{
			Name:  "metrics-file",
			Usage: "Write Prometheus metrics to this file on exit",
		},
	}
}

// overrides collects explicitly set global flags as configuration keys.
func overrides(c *cli.Context) map[string]any {
	values := make(map[string]any)
	for flag, key := range flagKeys {
		if c.IsSet(flag) {
			values[key] = c.Value(flag)
		}
	}
	return values
}

func setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"), overrides(c))
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: c.App.ErrWriter,
	})
	if err != nil {
		return err
	}

	metrics := metric.NewRegistry()
	info := buildinfo.Get()
	metrics.SetBuildInfo(info.Version, info.Commit)

	handler := shutdown.NewHandler(shutdownTimeout)
	if path := cfg.Metrics.File; path != "" {
		handler.OnShutdown(func(context.Context) error {
			return metrics.WriteTextfile(path)
		})
	}

	ctx, cancel := handler.WithSignals(c.Context)
	runID := logger.NewRunID()
	ctx = logger.WithRunID(logger.WithLogger(ctx, log), runID)

	c.App.Metadata[runtimeKey] = &Runtime{
		Config:   cfg,
		Logger:   log,
		Metrics:  metrics,
		Shutdown: handler,
		ctx:      ctx,
		cancel:   cancel,
	}

	logger.L(ctx).Debug("configuration loaded",
		"config_file", c.String("config"),
		"private_key", cfg.Issuer.PrivateKey,
		"output", cfg.Output.Format,
		"metrics_file", cfg.Metrics.File,
	)
	return nil
}

func teardown(c *cli.Context) error {
	rt, ok := c.App.Metadata[runtimeKey].(*Runtime)
	if !ok {
		return nil
	}
	rt.cancel()
	return rt.Shutdown.Run()
}

// GetRuntime retrieves the runtime built by the Before hook.
func GetRuntime(c *cli.Context) (*Runtime, error) {
	if rt, ok := c.App.Metadata[runtimeKey].(*Runtime); ok {
		return rt, nil
	}
	return nil, errors.New("runtime not initialized")
}

// newIssuer builds an issuer from the loaded configuration.
func newIssuer(rt *Runtime) (*service.Issuer, error) {
	return service.NewIssuer(service.IssuerConfig{
		PrivateKey:  rt.Config.Issuer.PrivateKey,
		SaltLength:  rt.Config.Issuer.SaltLength,
		HashLength:  rt.Config.Issuer.HashLength,
		Parallelism: rt.Config.Issuer.Parallelism,
		MaxRange:    rt.Config.Issuer.MaxRange,
	})
}

// render writes data to stdout in the configured format.
func render(c *cli.Context, rt *Runtime, data any) error {
	format, err := output.ParseFormat(rt.Config.Output.Format)
	if err != nil {
		return err
	}
	if err := output.NewFormatter(format).Format(c.App.Writer, data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
