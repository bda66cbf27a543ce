package llm

import (
	"context"
	"time"
)

// ErrorCode classifies provider failures so callers can align HTTP status
// and retryability without string-matching messages.
type ErrorCode string

const (
	ErrInvalidRequest  ErrorCode = "LLM_INVALID_REQUEST"  // bad parameters or payload
	ErrUnauthorized    ErrorCode = "LLM_UNAUTHORIZED"     // missing or revoked key
	ErrForbidden       ErrorCode = "LLM_FORBIDDEN"        // permission or content policy
	ErrRateLimited     ErrorCode = "LLM_RATE_LIMITED"     // upstream throttling
	ErrQuotaExceeded   ErrorCode = "LLM_QUOTA_EXCEEDED"   // credits exhausted
	ErrModelOverloaded ErrorCode = "LLM_MODEL_OVERLOADED" // model at capacity
	ErrUpstreamTimeout ErrorCode = "LLM_UPSTREAM_TIMEOUT" // upstream timeout
	ErrUpstreamError   ErrorCode = "LLM_UPSTREAM_ERROR"   // upstream 5xx or network error
)

// Error is the typed error returned by providers.
type Error struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	HTTPStatus int       `json:"http_status"`
	Retryable  bool      `json:"retryable"`
	Provider   string    `json:"provider,omitempty"`
}

func (e *Error) Error() string { return e.Message }

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content,omitempty"`
}

type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []Message     `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float32       `json:"temperature,omitempty"`
	Stop        []string      `json:"stop,omitempty"`
	Timeout     time.Duration `json:"timeout,omitempty"`
}

type ChatUsage struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens,omitempty"`
}

type ChatChoice struct {
	Index        int     `json:"index"`
	FinishReason string  `json:"finish_reason,omitempty"`
	Message      Message `json:"message"`
}

type ChatResponse struct {
	ID        string       `json:"id,omitempty"`
	Provider  string       `json:"provider,omitempty"`
	Model     string       `json:"model"`
	Choices   []ChatChoice `json:"choices"`
	Usage     ChatUsage    `json:"usage,omitempty"`
	CreatedAt time.Time    `json:"created_at,omitempty"`
}

// Text returns the content of the first choice, or "" when the response
// carries none. Providers populate at least one choice on success.
func (r *ChatResponse) Text() string {
	if r == nil || len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}

// HealthStatus reports the result of a provider health probe.
type HealthStatus struct {
	Healthy bool          `json:"healthy"`
	Latency time.Duration `json:"latency"`
}

// Provider is the synchronous language-model invocation contract. The ReWOO
// controller assumes no retry or backoff at this layer; resilience, if any,
// belongs to the caller or the transport.
type Provider interface {
	// Completion issues one chat request and returns the full response.
	Completion(ctx context.Context, req *ChatRequest) (*ChatResponse, error)

	// Name returns the provider's unique identifier.
	Name() string
}
