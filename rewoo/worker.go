package rewoo

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/supportflow/supportflow/tools"
)

// NextStep returns the 1-indexed number of the next unexecuted step. It
// reports false exactly when the evidence store holds one entry per step.
// Steps execute strictly in declared order with no gaps, so the next step
// is always len(results)+1. The function only reads state; calling it twice
// without executing anything in between yields the same answer.
func NextStep(st *State) (int, bool) {
	if len(st.Results) == len(st.Steps) {
		return 0, false
	}
	return len(st.Results) + 1, true
}

// Substitute replaces every evidence placeholder in input with its resolved
// value, by literal text replacement. Higher-numbered identifiers are
// replaced first so #E10 is never clobbered by the #E1 token it contains.
func Substitute(input string, results map[string]string) string {
	if len(results) == 0 || !strings.Contains(input, "#E") {
		return input
	}

	ids := make([]string, 0, len(results))
	for id := range results {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return stepNum(ids[i]) > stepNum(ids[j]) })

	for _, id := range ids {
		input = strings.ReplaceAll(input, id, results[id])
	}
	return input
}

func stepNum(id string) int {
	n, _ := strconv.Atoi(strings.TrimPrefix(id, "#E"))
	return n
}

// ExecuteNext runs the next unexecuted step and records its evidence. It
// returns false with a nil error when no steps remain. This is the sole
// writer of the evidence store: exactly one entry is appended per call, in
// step order, never overwriting.
//
// Dispatch: the LLM sentinel sends the resolved argument string to the
// model as the entire prompt; any other action must be a registered tool.
// An unregistered action aborts the run; tool failures propagate uncaught.
func (e *Engine) ExecuteNext(ctx context.Context, st *State) (bool, error) {
	n, ok := NextStep(st)
	if !ok {
		return false, nil
	}

	step := st.Steps[n-1]
	input := Substitute(step.Input, st.Results)

	var result string
	var err error
	switch {
	case step.Tool == LLMTool:
		result, err = e.complete(ctx, e.cfg.PlannerModel, input, "worker")
	default:
		tool, found := e.registry.Get(step.Tool)
		if !found {
			return false, &UnknownToolError{Name: step.Tool}
		}
		start := time.Now()
		result, err = tools.Invoke(ctx, tool, input)
		e.metrics.ObserveToolExecution(step.Tool, err, time.Since(start))
	}
	if err != nil {
		return false, fmt.Errorf("step %s (%s) failed: %w", step.ID, step.Tool, err)
	}

	st.Results[step.ID] = result
	e.logger.Debug("step executed",
		zap.String("id", step.ID),
		zap.String("tool", step.Tool),
		zap.Int("remaining", len(st.Steps)-len(st.Results)))
	return true, nil
}
