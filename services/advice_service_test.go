package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adviceBackend(t *testing.T, handler http.HandlerFunc) *AdviceService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAdviceService("test-key", "test-model", srv.URL+"/v1")
}

func TestAdviceSendReturnsModelAnswer(t *testing.T) {
	svc := adviceBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "my prompt", req.Messages[1].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Eat more oats."}}]}`))
	})

	answer := svc.Send(context.Background(), "my prompt")
	assert.Equal(t, "Eat more oats.", answer)
}

func TestAdviceSendDegradesOnServiceError(t *testing.T) {
	svc := adviceBackend(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	})

	answer := svc.Send(context.Background(), "my prompt")
	assert.Contains(t, answer, "I apologize")
	assert.Contains(t, answer, "Error:")
}

func TestAdviceSendDegradesOnEmptyChoices(t *testing.T) {
	svc := adviceBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	answer := svc.Send(context.Background(), "my prompt")
	assert.Contains(t, answer, "I apologize")
}

func TestAdviceSendDegradesWhenUnreachable(t *testing.T) {
	// point at a server that is already closed
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	svc := NewAdviceService("test-key", "test-model", srv.URL+"/v1")

	answer := svc.Send(context.Background(), "my prompt")
	assert.Contains(t, answer, "I apologize")
}
