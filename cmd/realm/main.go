// Package main is the entry point for the realm CLI. It loads configuration
// for the selected profile, wires all dependencies using samber/do v2, loads
// the dataset into the store, and runs one command.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"github.com/spf13/pflag"

	"github.com/jsamuelsen11/realm-chronicle/internal/adapters/cli"
	"github.com/jsamuelsen11/realm-chronicle/internal/adapters/cli/dto"
	"github.com/jsamuelsen11/realm-chronicle/internal/adapters/dataset"
	"github.com/jsamuelsen11/realm-chronicle/internal/adapters/memstore"
	"github.com/jsamuelsen11/realm-chronicle/internal/app"
	"github.com/jsamuelsen11/realm-chronicle/internal/platform/config"
	"github.com/jsamuelsen11/realm-chronicle/internal/platform/health"
	"github.com/jsamuelsen11/realm-chronicle/internal/platform/logging"
	"github.com/jsamuelsen11/realm-chronicle/internal/platform/telemetry"
	"github.com/jsamuelsen11/realm-chronicle/internal/ports"
)

const (
	defaultProfile      = "local"
	otelShutdownTimeout = 5 * time.Second
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	profile, configDir := bootstrapFlags(args)

	cfg, err := config.Load(profile, config.WithConfigDir(configDir))
	if err != nil {
		return fail(fmt.Errorf("loading config: %w", err))
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fail(fmt.Errorf("initializing telemetry: %w", err))
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)

	registerDependencies(injector, cfg, logger)

	// The dataset is loaded outside the container so its error keeps the
	// sentinel that selects the exit code.
	loader := do.MustInvoke[*dataset.Loader](injector)
	ds, err := loader.Load(ctx)
	if err != nil {
		return fail(err)
	}
	store, err := memstore.NewFromDataset(ds)
	if err != nil {
		return fail(fmt.Errorf("building store: %w", err))
	}
	do.ProvideValue(injector, store)

	characters, houses := store.Counts()
	logger.Debug("dataset loaded",
		slog.Int("characters", characters),
		slog.Int("houses", houses),
		slog.String("profile", profile),
	)

	deps, err := do.Invoke[cli.Deps](injector)
	if err != nil {
		return fail(fmt.Errorf("resolving commands: %w", err))
	}

	root := cli.NewRootCommand(deps)
	root.SetArgs(args)
	return cli.Execute(ctx, root)
}

// bootstrapFlags reads --profile and --config-dir ahead of cobra, since the
// command tree cannot be built until configuration is loaded. Every other
// flag is left for cobra to parse.
func bootstrapFlags(args []string) (profile, configDir string) {
	fs := pflag.NewFlagSet("realm", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.StringVar(&profile, "profile", os.Getenv("APP_PROFILE"), "")
	fs.StringVar(&configDir, "config-dir", os.Getenv("APP_CONFIG_DIR"), "")
	_ = fs.Parse(args)

	if profile == "" {
		profile = defaultProfile
	}
	if configDir == "" {
		configDir = "configs"
	}
	return profile, configDir
}

// fail reports a bootstrap error as a problem document and returns its exit
// code.
func fail(err error) int {
	problem := dto.NewProblem("realm", "", err)
	if renderErr := dto.NewRenderer(dto.FormatJSON, os.Stderr).Render(problem); renderErr != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return problem.ExitCode
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*dataset.Loader, error) {
		return dataset.NewLoader(cfg.Dataset.Paths, cfg.Dataset.Concurrency, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ReadAccess, error) {
		store := do.MustInvoke[*memstore.Store](i)
		return store.View(), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.QueryService, error) {
		read := do.MustInvoke[ports.ReadAccess](i)
		return app.NewQueryService(read, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.WriteService, error) {
		store := do.MustInvoke[*memstore.Store](i)
		read := do.MustInvoke[ports.ReadAccess](i)
		return app.NewWriteService(store, read, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		registry.Register(do.MustInvoke[*dataset.Loader](i))
		registry.Register(do.MustInvoke[*memstore.Store](i))
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (cli.Deps, error) {
		return cli.Deps{
			Queries: do.MustInvoke[ports.QueryService](i),
			Writes:  do.MustInvoke[ports.WriteService](i),
			Read:    do.MustInvoke[ports.ReadAccess](i),
			Health:  do.MustInvoke[ports.HealthRegistry](i),
			Logger:  logger,
			Metrics: do.MustInvoke[*telemetry.Metrics](i),
			Format:  cfg.Output.Format,
			Timeout: cfg.CLI.Timeout,
		}, nil
	})
}
