package assistant_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/book2screen/book2screen/internal/assistant"
)

func candidateResponse(text string, chunks []map[string]any) map[string]any {
	candidate := map[string]any{
		"content": map[string]any{
			"parts": []map[string]any{{"text": text}},
		},
	}
	if chunks != nil {
		candidate["groundingMetadata"] = map[string]any{"groundingChunks": chunks}
	}
	return map[string]any{"candidates": []any{candidate}}
}

/*
TestClient_Generate verifies the request shape and plain-text reply
extraction against a stub upstream.
*/
func TestClient_Generate(t *testing.T) {
	var captured struct {
		path   string
		apiKey string
		body   map[string]any
	}

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		captured.path = request.URL.Path
		captured.apiKey = request.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(request.Body).Decode(&captured.body))
		require.NoError(t, json.NewEncoder(writer).Encode(candidateResponse("Try Dune.", nil)))
	}))
	defer server.Close()

	client := assistant.NewClient(server.URL, "gemini-2.5-flash", "test-key", slog.Default())

	history := []assistant.ChatMessage{
		{Role: assistant.RoleModel, Text: assistant.Greeting},
		{Role: assistant.RoleModel, Text: assistant.FallbackReply, IsError: true},
	}
	text, err := client.Generate(context.Background(), history, "Recommend a sci-fi adaptation")
	require.NoError(t, err)
	assert.Equal(t, "Try Dune.", text)

	assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", captured.path)
	assert.Equal(t, "test-key", captured.apiKey)

	// Error placeholders are dropped from the replayed history, so the
	// request carries the greeting plus the new prompt.
	contents, ok := captured.body["contents"].([]any)
	require.True(t, ok)
	require.Len(t, contents, 2)
	assert.NotNil(t, captured.body["system_instruction"])
}

/*
TestClient_Generate_Sources appends grounding links as a markdown block.
*/
func TestClient_Generate_Sources(t *testing.T) {
	chunks := []map[string]any{
		{"web": map[string]any{"uri": "https://example.com/fair", "title": "Book Fair"}},
		{"maps": map[string]any{"uri": "https://maps.example.com/store", "title": "City Books"}},
		{"web": map[string]any{"uri": "", "title": "no uri"}},
	}

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		require.NoError(t, json.NewEncoder(writer).Encode(candidateResponse("Here are some spots.", chunks)))
	}))
	defer server.Close()

	client := assistant.NewClient(server.URL, "gemini-2.5-flash", "test-key", slog.Default())

	text, err := client.Generate(context.Background(), nil, "Where can I buy books?")
	require.NoError(t, err)

	expected := "Here are some spots.\n\nSources/Maps:\n" +
		"[Book Fair](https://example.com/fair)\n" +
		"[City Books](https://maps.example.com/store)"
	assert.Equal(t, expected, text)
}

/*
TestClient_Generate_Upstream5xx surfaces an error for the service to
turn into the fallback reply.
*/
func TestClient_Generate_Upstream5xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := assistant.NewClient(server.URL, "gemini-2.5-flash", "test-key", slog.Default())

	_, err := client.Generate(context.Background(), nil, "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
