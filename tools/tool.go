// Package tools provides the tool registry the ReWOO worker dispatches
// against. Every tool declares an explicit, ordered parameter schema; the
// planner prompt is rendered from these declarations and the worker binds
// comma-separated argument strings against them.
package tools

import "context"

// ParamType is the declared scalar type of a tool parameter. Argument
// values are coerced to this type on a best-effort basis before invocation.
type ParamType string

const (
	TypeString ParamType = "string"
	TypeInt    ParamType = "int"
	TypeFloat  ParamType = "float"
	TypeBool   ParamType = "bool"
)

// Param describes one declared tool parameter, in positional order.
type Param struct {
	Name     string    `json:"name"`
	Type     ParamType `json:"type"`
	Optional bool      `json:"optional,omitempty"`
}

// Args carries the bound parameter values for one invocation, keyed by
// declared parameter name. Parameters with no supplied value are absent.
type Args map[string]any

// String returns the named argument as a string, or def when absent or of
// another type.
func (a Args) String(name, def string) string {
	if v, ok := a[name].(string); ok {
		return v
	}
	return def
}

// Float returns the named argument as a float64, or def when absent.
func (a Args) Float(name string, def float64) float64 {
	if v, ok := a[name].(float64); ok {
		return v
	}
	return def
}

// Func executes the tool. The returned string is stored verbatim as the
// step's evidence.
type Func func(ctx context.Context, args Args) (string, error)

// Tool is one registered action the planner may schedule.
type Tool struct {
	Name        string
	Description string
	Params      []Param
	Fn          Func
}

// Signature renders the tool's planner-facing signature, e.g.
// "ProcessRefund[order_id, reason, amount]".
func (t Tool) Signature() string {
	sig := t.Name + "["
	for i, p := range t.Params {
		if i > 0 {
			sig += ", "
		}
		sig += p.Name
	}
	return sig + "]"
}
