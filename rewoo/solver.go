package rewoo

import (
	"context"
	"fmt"
	"strings"
)

// BuildTrace reconstructs the full plan with every placeholder resolved,
// followed by an Evidence section listing each step's result. The
// substitution here mirrors the worker's but is purely for display; the
// evidence store is not touched.
func BuildTrace(st *State) string {
	var b strings.Builder
	for _, step := range st.Steps {
		id := Substitute(step.ID, st.Results)
		input := Substitute(step.Input, st.Results)
		fmt.Fprintf(&b, "Plan: %s\n%s = %s[%s]\n", step.Description, id, step.Tool, input)
	}

	b.WriteString("\nEvidence:\n")
	for _, step := range st.Steps {
		if result, ok := st.Results[step.ID]; ok {
			fmt.Fprintf(&b, "%s = %s\n", step.ID, result)
		}
	}
	return b.String()
}

// Solve composes the solver prompt from the task and the reconstructed
// trace, invokes the model once, and records the final answer. Callers must
// not invoke it before every step has evidence.
func (e *Engine) Solve(ctx context.Context, st *State) (string, error) {
	prompt := solverPrompt(BuildTrace(st), st.Task)

	answer, err := e.complete(ctx, e.cfg.SolverModel, prompt, "solve")
	if err != nil {
		return "", fmt.Errorf("solving failed: %w", err)
	}

	st.Answer = answer
	return answer, nil
}
