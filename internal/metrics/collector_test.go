package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilCollectorIsSafe(t *testing.T) {
	t.Parallel()

	var c *Collector
	c.ObserveRun(nil, time.Second, 3)
	c.ObserveLLMRequest("planner", nil, time.Second)
	c.ObserveToolExecution("OrderStatus", errors.New("boom"), time.Second)
}

func TestObserveRun(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := NewCollector("supportflow", reg)

	c.ObserveRun(nil, 2*time.Second, 3)
	c.ObserveRun(errors.New("planner down"), time.Second, 0)

	assert.Equal(t, float64(1), testutil.ToFloat64(c.runsTotal.WithLabelValues("ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.runsTotal.WithLabelValues("error")))

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	assert.True(t, names["supportflow_runs_total"])
	assert.True(t, names["supportflow_run_duration_seconds"])
	// Failed runs with no parsed plan do not count toward step sizes.
	assert.True(t, names["supportflow_plan_steps"])
}

func TestObserveLLMAndTools(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := NewCollector("supportflow", reg)

	c.ObserveLLMRequest("planner", nil, 300*time.Millisecond)
	c.ObserveLLMRequest("solver", nil, 500*time.Millisecond)
	c.ObserveLLMRequest("worker", errors.New("rate limited"), 100*time.Millisecond)
	c.ObserveToolExecution("OrderStatus", nil, 2*time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(c.llmRequestsTotal.WithLabelValues("planner", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.llmRequestsTotal.WithLabelValues("worker", "error")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.toolExecutions.WithLabelValues("OrderStatus", "ok")))
}
