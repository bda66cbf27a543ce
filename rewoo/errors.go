package rewoo

import (
	"errors"
	"fmt"
)

// ErrEmptyPlan is returned when the planner's output contains no line that
// conforms to the plan grammar. Malformed individual lines are dropped, but
// a plan with zero steps would make the solver answer from no evidence, so
// it is rejected outright.
var ErrEmptyPlan = errors.New("planner produced no parseable steps")

// UnknownToolError reports a planned action that is neither the LLM
// sentinel nor a registered tool. This is a configuration fault and aborts
// the run.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool: %s", e.Name)
}
