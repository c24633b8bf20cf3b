// Package cli is the inbound command-line adapter. Each cobra command runs
// one query or mutation through the middleware chain and renders its result
// to standard output; failures are rendered to standard error as a problem
// document and mapped to an exit code by Execute.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/realm-chronicle/internal/adapters/cli/dto"
	"github.com/jsamuelsen11/realm-chronicle/internal/adapters/cli/middleware"
	"github.com/jsamuelsen11/realm-chronicle/internal/domain"
	"github.com/jsamuelsen11/realm-chronicle/internal/platform/telemetry"
	"github.com/jsamuelsen11/realm-chronicle/internal/ports"
)

// Deps are the collaborators the commands run against.
type Deps struct {
	Queries ports.QueryService
	Writes  ports.WriteService
	Read    ports.ReadAccess
	Health  ports.HealthRegistry
	Logger  *slog.Logger
	Metrics *telemetry.Metrics

	// Format is the default for --output.
	Format string

	// Timeout bounds each command. Zero disables the deadline.
	Timeout time.Duration
}

// runner executes command handlers with the shared middleware stack.
type runner struct {
	deps   Deps
	format string
}

// NewRootCommand builds the realm command tree.
func NewRootCommand(deps Deps) *cobra.Command {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	if deps.Format == "" {
		deps.Format = dto.FormatJSON
	}

	r := &runner{deps: deps}

	root := &cobra.Command{
		Use:           "realm",
		Short:         "Query and update the houses and characters of the realm",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			switch r.format {
			case dto.FormatJSON, dto.FormatYAML:
				return nil
			default:
				return invalidArg("output", "must be json or yaml")
			}
		},
	}

	root.PersistentFlags().StringVarP(&r.format, "output", "o", deps.Format, "output format (json|yaml)")
	root.PersistentFlags().String("profile", "", "configuration profile (default $APP_PROFILE or local)")
	root.PersistentFlags().String("config-dir", "", "configuration directory (default $APP_CONFIG_DIR or configs)")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	})

	root.AddCommand(
		r.namesCmd(),
		r.titledCmd(),
		r.mostTitledCmd(),
		r.mottoLengthsCmd(),
		r.dornishLordsCmd(),
		r.titleShareCmd(),
		r.overlordedCmd(),
		r.vassalsCmd(),
		r.addHouseCmd(),
		r.addCharacterCmd(),
		r.changeRulerCmd(),
		r.crownCmd(),
		r.healthCmd(),
	)

	return root
}

// Execute runs root and returns the process exit code. A failure is written
// to the command's error stream as a problem document.
func Execute(ctx context.Context, root *cobra.Command) int {
	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return dto.ExitOK
	}

	if cmd == nil {
		cmd = root
	}

	var runID string
	var rerr *runError
	if errors.As(err, &rerr) {
		runID = rerr.runID
	}

	format, _ := root.PersistentFlags().GetString("output")
	problem := dto.NewProblem(cmd.CommandPath(), runID, err)
	if renderErr := dto.NewRenderer(format, cmd.ErrOrStderr()).Render(problem); renderErr != nil {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	}
	return problem.ExitCode
}

// runError carries the run ID of a failed invocation to Execute.
type runError struct {
	runID string
	err   error
}

func (e *runError) Error() string { return e.err.Error() }

func (e *runError) Unwrap() error { return e.err }

// run executes h under the middleware chain and renders any non-nil
// result, including one returned alongside an error.
func (r *runner) run(cmd *cobra.Command, h middleware.Handler) error {
	name := cmd.Name()
	runID := uuid.NewString()

	chain := middleware.Chain(
		middleware.Recovery(r.deps.Logger, name),
		middleware.RunID(),
		middleware.Logging(r.deps.Logger, name),
		middleware.OpenTelemetry(r.deps.Metrics, name),
		middleware.Timeout(r.deps.Timeout),
	)

	result, err := chain(h)(middleware.WithRunID(cmd.Context(), runID))
	if result != nil {
		if renderErr := r.render(cmd.OutOrStdout(), result); renderErr != nil && err == nil {
			err = renderErr
		}
	}
	if err != nil {
		return &runError{runID: runID, err: err}
	}
	return nil
}

func (r *runner) render(w io.Writer, v any) error {
	return dto.NewRenderer(r.format, w).Render(v)
}
