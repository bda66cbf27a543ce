// Package metrics provides internal metrics collection for the ReWOO
// pipeline. This package is internal and should not be imported by external
// projects.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the Prometheus instruments for one engine. A nil
// *Collector is valid and records nothing, so metrics stay optional.
type Collector struct {
	runsTotal        *prometheus.CounterVec
	runDuration      prometheus.Histogram
	planSteps        prometheus.Histogram
	llmRequestsTotal *prometheus.CounterVec
	llmDuration      *prometheus.HistogramVec
	toolExecutions   *prometheus.CounterVec
	toolDuration     *prometheus.HistogramVec
}

// NewCollector creates a collector registered against reg. Passing a fresh
// prometheus.NewRegistry keeps tests independent of the global registry.
func NewCollector(namespace string, reg prometheus.Registerer) *Collector {
	c := &Collector{
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Completed ReWOO runs by status.",
			},
			[]string{"status"},
		),
		runDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "End-to-end run latency.",
				Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
			},
		),
		planSteps: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "plan_steps",
				Help:      "Number of steps per generated plan.",
				Buckets:   prometheus.LinearBuckets(1, 1, 10),
			},
		),
		llmRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "llm_requests_total",
				Help:      "LLM invocations by pipeline phase and status.",
			},
			[]string{"phase", "status"},
		),
		llmDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "llm_request_duration_seconds",
				Help:      "LLM invocation latency by pipeline phase.",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
			},
			[]string{"phase"},
		),
		toolExecutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tool_executions_total",
				Help:      "Tool dispatches by tool name and status.",
			},
			[]string{"tool", "status"},
		),
		toolDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "tool_execution_duration_seconds",
				Help:      "Tool execution latency by tool name.",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
			},
			[]string{"tool"},
		),
	}

	reg.MustRegister(
		c.runsTotal, c.runDuration, c.planSteps,
		c.llmRequestsTotal, c.llmDuration,
		c.toolExecutions, c.toolDuration,
	)
	return c
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ObserveRun records one completed (or failed) run.
func (c *Collector) ObserveRun(err error, d time.Duration, steps int) {
	if c == nil {
		return
	}
	c.runsTotal.WithLabelValues(status(err)).Inc()
	c.runDuration.Observe(d.Seconds())
	if steps > 0 {
		c.planSteps.Observe(float64(steps))
	}
}

// ObserveLLMRequest records one model invocation for a pipeline phase.
func (c *Collector) ObserveLLMRequest(phase string, err error, d time.Duration) {
	if c == nil {
		return
	}
	c.llmRequestsTotal.WithLabelValues(phase, status(err)).Inc()
	c.llmDuration.WithLabelValues(phase).Observe(d.Seconds())
}

// ObserveToolExecution records one tool dispatch.
func (c *Collector) ObserveToolExecution(tool string, err error, d time.Duration) {
	if c == nil {
		return
	}
	c.toolExecutions.WithLabelValues(tool, status(err)).Inc()
	c.toolDuration.WithLabelValues(tool).Observe(d.Seconds())
}
