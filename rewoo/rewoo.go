// Package rewoo implements the ReWOO (Reasoning Without Observation)
// controller for a customer-support agent: a planner that generates the
// complete plan upfront with evidence placeholders (#E1, #E2, ...), a
// worker that executes one step at a time with placeholder substitution,
// and a solver that integrates all evidence into the final answer.
//
// Unlike a ReAct loop, which alternates model calls and tool calls until it
// decides to stop, ReWOO separates deciding (one model call) from doing
// (N tool dispatches, no model in the loop) from synthesizing (one model
// call): a run costs exactly two model invocations plus one per step that
// uses the LLM reasoning sentinel.
package rewoo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/supportflow/supportflow/internal/metrics"
	"github.com/supportflow/supportflow/llm"
	"github.com/supportflow/supportflow/tools"
)

// Config configures the ReWOO engine.
type Config struct {
	PlannerModel string        // model for planning and LLM-sentinel steps
	SolverModel  string        // model for answer synthesis
	Temperature  float32       // sampling temperature for both phases
	MaxTokens    int           // completion cap per model call
	Timeout      time.Duration // overall run timeout
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		PlannerModel: "gpt-4o-mini",
		SolverModel:  "gpt-4o-mini",
		Temperature:  0,
		MaxTokens:    2000,
		Timeout:      120 * time.Second,
	}
}

// Engine drives the planner, worker, and solver over one shared state. All
// execution is strictly sequential: each phase blocks until the previous
// completes, and the worker runs one step per invocation.
type Engine struct {
	provider llm.Provider
	registry *tools.Registry
	cfg      Config
	logger   *zap.Logger
	metrics  *metrics.Collector
}

// New creates a ReWOO engine. The registry is the full set of actions the
// planner may schedule; it is injected here rather than held as module
// state.
func New(provider llm.Provider, registry *tools.Registry, cfg Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		provider: provider,
		registry: registry,
		cfg:      cfg,
		logger:   logger,
	}
}

// WithMetrics attaches a metrics collector. Without one the engine records
// nothing.
func (e *Engine) WithMetrics(c *metrics.Collector) *Engine {
	e.metrics = c
	return e
}

// Result is the terminal output of one run.
type Result struct {
	RunID      string            `json:"run_id"`
	Task       string            `json:"task"`
	PlanString string            `json:"plan_string"`
	Steps      []Step            `json:"steps"`
	Evidence   map[string]string `json:"evidence"`
	Answer     string            `json:"answer"`
	LLMCalls   int               `json:"llm_calls"`
	Latency    time.Duration     `json:"latency"`
}

// Run executes the full pipeline for one task: plan once, execute every
// step in declared order, solve once. Any phase failure aborts the run and
// propagates; a partially populated evidence store is simply discarded with
// the state.
func (e *Engine) Run(ctx context.Context, task string) (*Result, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	runID := uuid.NewString()
	logger := e.logger.With(zap.String("run_id", runID))
	st := NewState(task)

	logger.Info("phase 1: planning")
	steps, planString, err := e.Plan(ctx, task)
	if err != nil {
		e.metrics.ObserveRun(err, time.Since(start), 0)
		return nil, err
	}
	st.Steps = steps
	st.PlanString = planString

	logger.Info("phase 2: executing", zap.Int("steps", len(steps)))
	for {
		executed, err := e.ExecuteNext(ctx, st)
		if err != nil {
			e.metrics.ObserveRun(err, time.Since(start), len(steps))
			return nil, err
		}
		if !executed {
			break
		}
	}

	logger.Info("phase 3: solving")
	answer, err := e.Solve(ctx, st)
	if err != nil {
		e.metrics.ObserveRun(err, time.Since(start), len(steps))
		return nil, err
	}

	result := &Result{
		RunID:      runID,
		Task:       task,
		PlanString: planString,
		Steps:      steps,
		Evidence:   st.Results,
		Answer:     answer,
		LLMCalls:   e.llmCalls(steps),
		Latency:    time.Since(start),
	}
	e.metrics.ObserveRun(nil, result.Latency, len(steps))
	logger.Info("run complete",
		zap.Int("llm_calls", result.LLMCalls),
		zap.Duration("latency", result.Latency))
	return result, nil
}

// llmCalls is the deterministic model-call count for a plan: planner plus
// solver, plus one per LLM-sentinel step.
func (e *Engine) llmCalls(steps []Step) int {
	calls := 2
	for _, s := range steps {
		if s.Tool == LLMTool {
			calls++
		}
	}
	return calls
}

func (e *Engine) complete(ctx context.Context, model, prompt, phase string) (string, error) {
	start := time.Now()
	resp, err := e.provider.Completion(ctx, &llm.ChatRequest{
		Model:       model,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Temperature: e.cfg.Temperature,
		MaxTokens:   e.cfg.MaxTokens,
	})
	e.metrics.ObserveLLMRequest(phase, err, time.Since(start))
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
