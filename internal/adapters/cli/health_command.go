package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/realm-chronicle/internal/domain"
	"github.com/jsamuelsen11/realm-chronicle/internal/platform/health"
)

// healthCmd renders the health report and fails with domain.ErrUnavailable
// when any component is unhealthy.
func (r *runner) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the dataset sources and the store",
		Args:  exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd, func(ctx context.Context) (any, error) {
				report := health.Summarize(r.deps.Health.CheckAll(ctx))
				if !report.Healthy {
					return report, fmt.Errorf("health check: %w", domain.ErrUnavailable)
				}
				return report, nil
			})
		},
	}
}
