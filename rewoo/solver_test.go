package rewoo

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supportflow/supportflow/testutil/mocks"
	"github.com/supportflow/supportflow/tools"
)

func TestBuildTrace(t *testing.T) {
	t.Parallel()

	t.Run("reconstructs plan with placeholders resolved", func(t *testing.T) {
		t.Parallel()
		st := NewState("task")
		st.Steps = []Step{
			{Description: "Check the order.", ID: "#E1", Tool: "OrderStatus", Input: "12345"},
			{Description: "Analyze delivery.", ID: "#E2", Tool: LLMTool, Input: "Is it delivered based on #E1?"},
		}
		st.Results = map[string]string{
			"#E1": "Status: Delivered",
			"#E2": "Yes",
		}

		trace := BuildTrace(st)

		assert.Contains(t, trace, "Plan: Check the order.\n")
		assert.Contains(t, trace, "OrderStatus[12345]")
		assert.Contains(t, trace, "LLM[Is it delivered based on Status: Delivered?]",
			"argument placeholders must be resolved for display")
		assert.Contains(t, trace, "\nEvidence:\n")
		assert.Contains(t, trace, "#E1 = Status: Delivered")
		assert.Contains(t, trace, "#E2 = Yes")
	})

	t.Run("evidence section follows step order", func(t *testing.T) {
		t.Parallel()
		st := NewState("task")
		st.Steps = []Step{
			{Description: "a", ID: "#E1", Tool: "T", Input: "x"},
			{Description: "b", ID: "#E2", Tool: "T", Input: "y"},
			{Description: "c", ID: "#E3", Tool: "T", Input: "z"},
		}
		st.Results = map[string]string{"#E1": "r1", "#E2": "r2", "#E3": "r3"}

		trace := BuildTrace(st)
		i1 := strings.Index(trace, "#E1 = r1")
		i2 := strings.Index(trace, "#E2 = r2")
		i3 := strings.Index(trace, "#E3 = r3")
		require.True(t, i1 >= 0 && i2 >= 0 && i3 >= 0)
		assert.Less(t, i1, i2)
		assert.Less(t, i2, i3)
	})

	t.Run("display substitution leaves the evidence store untouched", func(t *testing.T) {
		t.Parallel()
		st := NewState("task")
		st.Steps = []Step{
			{Description: "a", ID: "#E1", Tool: "T", Input: "x"},
			{Description: "b", ID: "#E2", Tool: "T", Input: "use #E1"},
		}
		st.Results = map[string]string{"#E1": "value one", "#E2": "value two"}

		_ = BuildTrace(st)
		assert.Equal(t, map[string]string{"#E1": "value one", "#E2": "value two"}, st.Results)
		assert.Equal(t, "use #E1", st.Steps[1].Input, "steps are immutable")
	})
}

func TestSolve(t *testing.T) {
	t.Parallel()

	t.Run("composes prompt from trace and task, records answer", func(t *testing.T) {
		t.Parallel()
		provider := mocks.NewProvider("Your order was delivered on the 28th.")
		e := New(provider, tools.NewRegistry(nil), DefaultConfig(), nil)

		st := NewState("Where is my order?")
		st.Steps = []Step{{Description: "Check.", ID: "#E1", Tool: "OrderStatus", Input: "12345"}}
		st.Results = map[string]string{"#E1": "Status: Delivered"}

		answer, err := e.Solve(context.Background(), st)
		require.NoError(t, err)
		assert.Equal(t, "Your order was delivered on the 28th.", answer)
		assert.Equal(t, answer, st.Answer)

		calls := provider.Calls()
		require.Len(t, calls, 1)
		prompt := calls[0].Messages[0].Content
		assert.Contains(t, prompt, "Task: Where is my order?")
		assert.Contains(t, prompt, "Status: Delivered")
		assert.Contains(t, prompt, "customer service agent")
	})

	t.Run("provider failure propagates", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("upstream down")
		e := New(mocks.NewErrorProvider(boom), tools.NewRegistry(nil), DefaultConfig(), nil)

		st := NewState("task")
		st.Steps = []Step{{Description: "a", ID: "#E1", Tool: "T", Input: "x"}}
		st.Results = map[string]string{"#E1": "r"}

		_, err := e.Solve(context.Background(), st)
		require.ErrorIs(t, err, boom)
		assert.Empty(t, st.Answer)
	})
}
