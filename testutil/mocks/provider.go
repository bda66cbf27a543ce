// Package mocks provides test doubles shared across packages.
package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/supportflow/supportflow/llm"
)

// Provider is a scripted llm.Provider. Responses are returned in the order
// they were queued, one per Completion call; the last response repeats once
// the queue is exhausted. All calls are recorded for inspection.
type Provider struct {
	mu        sync.Mutex
	responses []string
	err       error
	failAfter int // fail on call N+1 and later; 0 disables
	calls     []*llm.ChatRequest

	completionFunc func(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error)
}

// NewProvider creates a provider that answers every call with response.
func NewProvider(response string) *Provider {
	return &Provider{responses: []string{response}}
}

// NewScriptedProvider creates a provider that plays back responses in
// order.
func NewScriptedProvider(responses ...string) *Provider {
	return &Provider{responses: responses}
}

// NewErrorProvider creates a provider that always fails with err.
func NewErrorProvider(err error) *Provider {
	return &Provider{err: err}
}

// WithFailAfter makes the provider fail on every call after the first n.
func (p *Provider) WithFailAfter(n int) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failAfter = n
	return p
}

// WithCompletionFunc overrides Completion entirely; the call is still
// recorded.
func (p *Provider) WithCompletionFunc(fn func(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error)) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.completionFunc = fn
	return p
}

func (p *Provider) Name() string { return "mock" }

func (p *Provider) Completion(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error) {
	p.mu.Lock()
	p.calls = append(p.calls, req)
	n := len(p.calls)

	if p.err != nil {
		err := p.err
		p.mu.Unlock()
		return nil, err
	}
	if p.failAfter > 0 && n > p.failAfter {
		p.mu.Unlock()
		return nil, &llm.Error{Code: llm.ErrUpstreamError, Message: "mock: configured to fail", Retryable: true, Provider: "mock"}
	}
	if p.completionFunc != nil {
		fn := p.completionFunc
		p.mu.Unlock()
		return fn(ctx, req)
	}

	idx := n - 1
	if idx >= len(p.responses) {
		idx = len(p.responses) - 1
	}
	content := ""
	if idx >= 0 {
		content = p.responses[idx]
	}
	p.mu.Unlock()

	return &llm.ChatResponse{
		ID:       "mock-response",
		Provider: "mock",
		Model:    req.Model,
		Choices: []llm.ChatChoice{{
			FinishReason: "stop",
			Message:      llm.Message{Role: llm.RoleAssistant, Content: content},
		}},
		Usage:     llm.ChatUsage{PromptTokens: 10, CompletionTokens: 20, TotalTokens: 30},
		CreatedAt: time.Now(),
	}, nil
}

// Calls returns the recorded requests.
func (p *Provider) Calls() []*llm.ChatRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*llm.ChatRequest(nil), p.calls...)
}

// CallCount returns how many Completion calls were made.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}
