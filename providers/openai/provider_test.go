package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supportflow/supportflow/llm"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *Provider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{
		BaseURL: srv.URL + "/v1",
		APIKey:  "sk-test",
		Model:   "gpt-4o-mini",
		Timeout: 5 * time.Second,
	}, nil)
}

func TestCompletion(t *testing.T) {
	t.Parallel()

	t.Run("decodes a successful response", func(t *testing.T) {
		t.Parallel()
		var gotReq apiRequest
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

			json.NewEncoder(w).Encode(apiResponse{
				ID:    "chatcmpl-1",
				Model: "gpt-4o-mini",
				Choices: []apiChoice{{
					FinishReason: "stop",
					Message:      apiMessage{Role: "assistant", Content: "Plan: check the order #E1 = OrderStatus[12345]"},
				}},
				Usage:   &apiUsage{PromptTokens: 120, CompletionTokens: 30, TotalTokens: 150},
				Created: 1756598400,
			})
		})

		resp, err := p.Completion(context.Background(), &llm.ChatRequest{
			Messages:    []llm.Message{{Role: llm.RoleUser, Content: "where is my order?"}},
			Temperature: 0,
			MaxTokens:   2000,
		})
		require.NoError(t, err)
		assert.Equal(t, "Plan: check the order #E1 = OrderStatus[12345]", resp.Text())
		assert.Equal(t, "openai", resp.Provider)
		assert.Equal(t, 150, resp.Usage.TotalTokens)

		// Model falls back to the configured default when the request leaves it empty.
		assert.Equal(t, "gpt-4o-mini", gotReq.Model)
		require.Len(t, gotReq.Messages, 1)
		assert.Equal(t, "user", gotReq.Messages[0].Role)
	})

	t.Run("request model wins over default", func(t *testing.T) {
		t.Parallel()
		var gotReq apiRequest
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
			json.NewEncoder(w).Encode(apiResponse{Choices: []apiChoice{{Message: apiMessage{Content: "ok"}}}})
		})

		_, err := p.Completion(context.Background(), &llm.ChatRequest{
			Model:    "gpt-4o",
			Messages: []llm.Message{{Role: llm.RoleUser, Content: "hi"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "gpt-4o", gotReq.Model)
	})

	t.Run("empty choices yield empty text", func(t *testing.T) {
		t.Parallel()
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(apiResponse{ID: "chatcmpl-2"})
		})

		resp, err := p.Completion(context.Background(), &llm.ChatRequest{
			Messages: []llm.Message{{Role: llm.RoleUser, Content: "hi"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "", resp.Text())
	})

	t.Run("context cancellation", func(t *testing.T) {
		t.Parallel()
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			// Drain the body so the server notices the client disconnect
			// and cancels r.Context(); with an unread body it never does.
			io.Copy(io.Discard, r.Body)
			<-r.Context().Done()
		})

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		_, err := p.Completion(ctx, &llm.ChatRequest{
			Messages: []llm.Message{{Role: llm.RoleUser, Content: "hi"}},
		})
		var llmErr *llm.Error
		require.ErrorAs(t, err, &llmErr)
		assert.Equal(t, llm.ErrUpstreamError, llmErr.Code)
		assert.True(t, llmErr.Retryable)
	})
}

func TestCompletion_ErrorMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		status    int
		body      string
		wantCode  llm.ErrorCode
		retryable bool
	}{
		{
			name:     "unauthorized",
			status:   http.StatusUnauthorized,
			body:     `{"error": {"message": "Incorrect API key provided"}}`,
			wantCode: llm.ErrUnauthorized,
		},
		{
			name:      "rate limited",
			status:    http.StatusTooManyRequests,
			body:      `{"error": {"message": "Rate limit reached"}}`,
			wantCode:  llm.ErrRateLimited,
			retryable: true,
		},
		{
			name:     "quota exhausted on 400",
			status:   http.StatusBadRequest,
			body:     `{"error": {"message": "You exceeded your current quota"}}`,
			wantCode: llm.ErrQuotaExceeded,
		},
		{
			name:     "plain bad request",
			status:   http.StatusBadRequest,
			body:     `{"error": {"message": "Invalid value for max_tokens"}}`,
			wantCode: llm.ErrInvalidRequest,
		},
		{
			name:      "model overloaded",
			status:    529,
			body:      `{"error": {"message": "Overloaded"}}`,
			wantCode:  llm.ErrModelOverloaded,
			retryable: true,
		},
		{
			name:      "unknown 5xx",
			status:    http.StatusInsufficientStorage,
			body:      "disk full",
			wantCode:  llm.ErrUpstreamError,
			retryable: true,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			})

			_, err := p.Completion(context.Background(), &llm.ChatRequest{
				Messages: []llm.Message{{Role: llm.RoleUser, Content: "hi"}},
			})
			var llmErr *llm.Error
			require.ErrorAs(t, err, &llmErr)
			assert.Equal(t, tc.wantCode, llmErr.Code)
			assert.Equal(t, tc.status, llmErr.HTTPStatus)
			assert.Equal(t, tc.retryable, llmErr.Retryable)
			assert.Equal(t, "openai", llmErr.Provider)
		})
	}
}

func TestReadErrMsg(t *testing.T) {
	t.Parallel()

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("upstream melted"))
	})

	_, err := p.Completion(context.Background(), &llm.ChatRequest{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "hi"}},
	})
	var llmErr *llm.Error
	require.ErrorAs(t, err, &llmErr)
	// Non-JSON bodies are passed through verbatim.
	assert.Equal(t, "upstream melted", llmErr.Message)
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	t.Run("healthy", func(t *testing.T) {
		t.Parallel()
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/models", r.URL.Path)
			w.Write([]byte(`{"data": []}`))
		})

		status, err := p.HealthCheck(context.Background())
		require.NoError(t, err)
		assert.True(t, status.Healthy)
		assert.Greater(t, status.Latency, time.Duration(0))
	})

	t.Run("unhealthy on non-200", func(t *testing.T) {
		t.Parallel()
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		status, err := p.HealthCheck(context.Background())
		require.Error(t, err)
		assert.False(t, status.Healthy)
	})
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	p := New(Config{}, nil)
	assert.Equal(t, "https://api.openai.com/v1", p.cfg.BaseURL)
	assert.Equal(t, 60*time.Second, p.cfg.Timeout)
	assert.Equal(t, "openai", p.Name())
}
