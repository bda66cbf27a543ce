package rewoo

import (
	"bufio"
	"regexp"
	"strings"
)

// stepLine is the plan-line grammar. It is the interchange format between
// the planning model and the worker and must not drift:
//
//	Plan: <description> #E<n> = <Action>[<args>]
//
// Arguments are comma-separated positional values with no nesting and no
// comma escaping.
var stepLine = regexp.MustCompile(`^Plan:\s*(.+?)\s*(#E\d+)\s*=\s*(\w+)\s*\[([^\]]+)\]\s*$`)

// ParsePlan scans the planner's free-text output line by line and collects
// every line matching the plan grammar, in document order. Non-conforming
// lines are dropped; callers decide whether an empty result is acceptable.
func ParsePlan(text string) []Step {
	var steps []Step
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		m := stepLine.FindStringSubmatch(strings.TrimSpace(sc.Text()))
		if m == nil {
			continue
		}
		steps = append(steps, Step{
			Description: m[1],
			ID:          m[2],
			Tool:        m[3],
			Input:       m[4],
		})
	}
	return steps
}
