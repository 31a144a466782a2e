package cli

import (
	"context"
	"fmt"

	"github.com/upfleet/synckit/pkg/api"
)

// healthView дополняет отчет процентом для шаблона.
type healthView struct {
	*api.HealthReport
	FailureRatePercent float64
}

func (c *Cli) runHealth(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing organization ID. Usage: synckit health <org-id>")
	}

	report, err := c.health.Evaluate(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to evaluate sync health: %w", err)
	}

	view := healthView{
		HealthReport:       report,
		FailureRatePercent: report.FailureRate * 100,
	}
	return c.renderTemplate("health", healthTemplate, view)
}
