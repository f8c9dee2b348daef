package groq

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sprintslides/sprintslides-api/internal/config"
	"github.com/sprintslides/sprintslides-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(endpoint string) config.LLMConfig {
	return config.LLMConfig{
		GroqAPIKey:            "gsk_testkey12345678",
		ModelName:             "llama-3.1-8b-instant",
		Endpoint:              endpoint,
		RequestTimeoutSeconds: 5,
	}
}

func completionRequest() generation.CompletionRequest {
	return generation.CompletionRequest{
		Model:       "llama-3.1-8b-instant",
		System:      "You output ONLY valid JSON.",
		Prompt:      "Make a deck",
		Temperature: 0.25,
		MaxTokens:   2250,
		JSONOnly:    true,
	}
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(testConfig("https://example.test"), nil)
	assert.Error(t, err)

	cfg := testConfig("")
	_, err = NewClient(cfg, testLogger())
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	cfg = testConfig("https://example.test")
	cfg.RequestTimeoutSeconds = 0
	_, err = NewClient(cfg, testLogger())
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestComplete_SendsExpectedPayload(t *testing.T) {
	var captured chatRequest
	var authHeader, contentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "{\"slides\": []}"}}]}`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL), testLogger())
	require.NoError(t, err)

	text, err := client.Complete(context.Background(), completionRequest())
	require.NoError(t, err)
	assert.Equal(t, `{"slides": []}`, text)

	assert.Equal(t, "Bearer gsk_testkey12345678", authHeader)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, "llama-3.1-8b-instant", captured.Model)
	assert.Equal(t, float32(0.25), captured.Temperature)
	assert.Equal(t, 2250, captured.MaxTokens)
	require.NotNil(t, captured.ResponseFormat)
	assert.Equal(t, "json_object", captured.ResponseFormat.Type)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, "Make a deck", captured.Messages[1].Content)
}

func TestComplete_WithoutJSONMode(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "ok"}}]}`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL), testLogger())
	require.NoError(t, err)

	req := completionRequest()
	req.JSONOnly = false
	_, err = client.Complete(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, captured.ResponseFormat)
}

func TestComplete_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": "rate limited"}`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL), testLogger())
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), completionRequest())

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusTooManyRequests, upstream.Status)
	assert.Contains(t, upstream.Body, "rate limited")
}

func TestComplete_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL), testLogger())
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), completionRequest())
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestComplete_MissingAPIKey(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.GroqAPIKey = ""
	client, err := NewClient(cfg, testLogger())
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), completionRequest())
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	// Failure happens before any network call
	assert.Zero(t, calls)
}
