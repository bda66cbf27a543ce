package rewoo

// LLMTool is the reserved action name meaning "invoke the language model
// directly on the resolved argument string" instead of a registry tool.
const LLMTool = "LLM"

// Step is one planned unit of work. Steps are produced once by the planner,
// in declared dependency order, and are immutable afterwards.
type Step struct {
	Description string `json:"description"` // human-readable rationale, never executed
	ID          string `json:"id"`          // evidence identifier, e.g. #E1
	Tool        string `json:"tool"`        // registry action name or LLMTool
	Input       string `json:"input"`       // raw argument string, may reference earlier IDs
}

// State is the mutable store for one task execution. The evidence map has
// exactly one writer at a time: the worker appends one entry per step, in
// step order, and never overwrites.
type State struct {
	Task       string            `json:"task"`
	PlanString string            `json:"plan_string"` // verbatim planner output
	Steps      []Step            `json:"steps"`
	Results    map[string]string `json:"results"` // step ID -> evidence
	Answer     string            `json:"answer"`  // set once by the solver
}

// NewState initializes execution state for one task.
func NewState(task string) *State {
	return &State{
		Task:    task,
		Results: make(map[string]string),
	}
}

// Done reports whether every planned step has evidence.
func (s *State) Done() bool {
	return len(s.Results) == len(s.Steps)
}
