package rewoo

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Plan sends the task through the planner template and parses the model's
// response into the ordered step sequence. The verbatim response is
// returned as the plan trace. Lines that do not conform to the plan grammar
// are dropped; a response yielding zero steps is rejected with
// ErrEmptyPlan. Provider failures propagate to the caller.
func (e *Engine) Plan(ctx context.Context, task string) ([]Step, string, error) {
	prompt := plannerPrompt(e.registry, task)

	text, err := e.complete(ctx, e.cfg.PlannerModel, prompt, "plan")
	if err != nil {
		return nil, "", fmt.Errorf("planning failed: %w", err)
	}

	steps := ParsePlan(text)
	if len(steps) == 0 {
		return nil, text, ErrEmptyPlan
	}

	e.logger.Info("plan generated",
		zap.Int("steps", len(steps)),
		zap.String("model", e.cfg.PlannerModel))
	return steps, text, nil
}
