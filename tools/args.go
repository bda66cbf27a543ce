package tools

import (
	"context"
	"strconv"
	"strings"
)

// SplitParams splits a raw tool input into comma-separated positional
// values, trimming surrounding whitespace. The plan grammar allows no
// nesting and no comma escaping, so a plain split is the whole contract.
func SplitParams(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// BindParams zips positional values with the tool's declared parameters.
// Values are coerced to the declared type best-effort; a value that fails
// coercion is kept as the raw string rather than rejected. Fewer values
// than parameters leaves the remainder unbound; extra values are dropped.
func BindParams(t Tool, values []string) Args {
	args := make(Args, len(t.Params))
	for i, p := range t.Params {
		if i >= len(values) {
			break
		}
		args[p.Name] = coerce(values[i], p.Type)
	}
	return args
}

func coerce(value string, typ ParamType) any {
	switch typ {
	case TypeInt:
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	case TypeFloat:
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	case TypeBool:
		switch strings.ToLower(value) {
		case "true", "1", "yes", "y":
			return true
		case "false", "0", "no", "n":
			return false
		}
	}
	return value
}

// Invoke parses the raw input, binds it against the tool's schema, and runs
// the tool. Tool errors propagate to the caller untouched; retry policy
// does not live here.
func Invoke(ctx context.Context, t Tool, input string) (string, error) {
	args := BindParams(t, SplitParams(input))
	return t.Fn(ctx, args)
}
