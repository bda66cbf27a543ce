// supportflow runs a customer-support task through the ReWOO pipeline:
// plan once, execute every step, solve once.
//
// Usage:
//
//	supportflow [-config config.yaml] [-verbose] "What's the status of order #12345?"
//	supportflow -demo        # run the built-in demo scenarios
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/supportflow/supportflow/config"
	"github.com/supportflow/supportflow/providers/openai"
	"github.com/supportflow/supportflow/rewoo"
	"github.com/supportflow/supportflow/support"
	"github.com/supportflow/supportflow/tools"
)

var demoTasks = []string{
	"What's the status of order #12345?",
	"My order #12346 hasn't arrived yet and I need it by Friday. Can you expedite it?",
	"I want to return the jeans from order #12345. What's the policy and can you start a refund?",
}

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	demo := flag.Bool("demo", false, "run the built-in demo scenarios")
	verbose := flag.Bool("verbose", false, "show the generated plan and evidence")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger, err := buildLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	tasks := flag.Args()
	if *demo {
		tasks = demoTasks
	}
	if len(tasks) == 0 {
		fmt.Fprintln(os.Stderr, `usage: supportflow [-config config.yaml] [-verbose] "your question"`)
		os.Exit(1)
	}

	engine := buildEngine(cfg, logger)
	for i, task := range tasks {
		if len(tasks) > 1 {
			fmt.Printf("\n=== Scenario %d ===\n", i+1)
		}
		runTask(engine, task, *verbose, logger)
	}
}

func buildEngine(cfg *config.Config, logger *zap.Logger) *rewoo.Engine {
	provider := openai.New(openai.Config{
		BaseURL: cfg.Provider.BaseURL,
		APIKey:  cfg.APIKey(),
		Model:   cfg.Provider.Model,
		Timeout: secs(cfg.Provider.TimeoutSeconds),
	}, logger)

	registry := tools.NewRegistry(logger)
	support.NewDesk(logger).Register(registry)

	return rewoo.New(provider, registry, rewoo.Config{
		PlannerModel: cfg.ReWOO.PlannerModel,
		SolverModel:  cfg.ReWOO.SolverModel,
		Temperature:  cfg.ReWOO.Temperature,
		MaxTokens:    cfg.ReWOO.MaxTokens,
		Timeout:      secs(cfg.ReWOO.TimeoutSeconds),
	}, logger)
}

func runTask(engine *rewoo.Engine, task string, verbose bool, logger *zap.Logger) {
	fmt.Printf("\nCustomer: %s\n", task)

	result, err := engine.Run(context.Background(), task)
	if err != nil {
		// Never show raw errors to the user; log them and hand out a
		// reference ID for escalation.
		ref := uuid.NewString()[:8]
		logger.Error("run failed", zap.String("reference_id", ref), zap.Error(err))
		fmt.Printf("\nAgent: I'm having trouble processing this right now. Please try again, or contact support with reference ID %s.\n", strings.ToUpper(ref))
		return
	}

	if verbose {
		fmt.Printf("\nGenerated Plan:\n%s\n", result.PlanString)
		fmt.Println("Evidence:")
		for _, step := range result.Steps {
			fmt.Printf("  %s = %s\n", step.ID, firstLine(result.Evidence[step.ID]))
		}
	}
	fmt.Printf("\nAgent: %s\n", result.Answer)
	fmt.Printf("(%d steps, %d LLM calls, %s)\n", len(result.Steps), result.LLMCalls, result.Latency.Round(time.Millisecond))
}

func secs(n int) time.Duration { return time.Duration(n) * time.Second }

func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	return zcfg.Build()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}
