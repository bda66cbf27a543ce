package rewoo

import (
	"fmt"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// Substitution and next-step selection are the load-bearing pieces of the
// worker; exercise them over generated inputs.

func TestSubstitute_Property(t *testing.T) {
	t.Parallel()

	t.Run("all known placeholders are consumed", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			n := rapid.IntRange(1, 20).Draw(t, "steps")

			results := make(map[string]string, n)
			for i := 1; i <= n; i++ {
				// Evidence values without placeholder tokens of their own.
				v := rapid.StringMatching(`[a-zA-Z0-9 .,]{0,40}`).Draw(t, fmt.Sprintf("v%d", i))
				results[fmt.Sprintf("#E%d", i)] = v
			}

			var parts []string
			for i := 1; i <= n; i++ {
				parts = append(parts, fmt.Sprintf("#E%d", i))
			}
			input := strings.Join(parts, " and ")

			got := Substitute(input, results)
			if strings.Contains(got, "#E") {
				t.Fatalf("unresolved placeholder left in %q", got)
			}
		})
	})

	t.Run("substitution without matching tokens is identity", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			input := rapid.StringMatching(`[a-zA-Z0-9 ?!.,]{0,80}`).Draw(t, "input")
			results := map[string]string{"#E1": "evidence"}
			if got := Substitute(input, results); got != input {
				t.Fatalf("input %q changed to %q", input, got)
			}
		})
	})
}

func TestNextStep_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		steps := rapid.IntRange(0, 25).Draw(t, "steps")
		executed := rapid.IntRange(0, steps).Draw(t, "executed")

		st := NewState("task")
		for i := 1; i <= steps; i++ {
			st.Steps = append(st.Steps, Step{ID: fmt.Sprintf("#E%d", i), Tool: "T", Input: "x"})
		}
		for i := 1; i <= executed; i++ {
			st.Results[fmt.Sprintf("#E%d", i)] = "done"
		}

		n, ok := NextStep(st)
		if executed == steps {
			if ok {
				t.Fatalf("expected completion with %d/%d executed, got step %d", executed, steps, n)
			}
			return
		}
		if !ok {
			t.Fatalf("expected a next step with %d/%d executed", executed, steps)
		}
		if n != executed+1 {
			t.Fatalf("next step = %d, want %d", n, executed+1)
		}

		// Re-query must agree.
		n2, ok2 := NextStep(st)
		if n2 != n || ok2 != ok {
			t.Fatalf("NextStep not idempotent: (%d,%v) then (%d,%v)", n, ok, n2, ok2)
		}
	})
}
