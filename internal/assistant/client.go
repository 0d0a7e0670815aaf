package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const systemInstruction = `You are the intelligent assistant for "Book2Screen", a website dedicated to exploring book-to-movie adaptations.
Your name is "ScreenReader".
Your capabilities:
1. Recommend books or movies based on the user's mood, genre preference, or past favorites.
2. Provide details about specific adaptations (differences between book and movie).
3. Help users find book sales or literary events using the Google Maps tool if they ask about locations.
4. Keep answers concise, engaging, and relevant to literature and cinema.
5. If asked about the website features, explain: We have a Famous Novels section, Author exploration, a Book Sales map, User Reviews, and an Admin panel.

Tone: Knowledgeable, sophisticated, yet accessible. Like a librarian who loves cinema.`

// noTextReply stands in when the model answers with grounding data but
// no text part.
const noTextReply = "I couldn't generate a text response, but here is what I found."

// Client calls the Gemini generateContent endpoint.
type Client struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(baseURL, model, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		model:      model,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logger.With("adapter", "gemini"),
	}
}

// Wire types for the generateContent request and response. Only the
// fields the assistant reads are declared.

type generatePart struct {
	Text string `json:"text,omitempty"`
}

type generateContent struct {
	Role  string         `json:"role,omitempty"`
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	SystemInstruction *generateContent  `json:"system_instruction,omitempty"`
	Contents          []generateContent `json:"contents"`
}

type groundingSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

type groundingChunk struct {
	Web  *groundingSource `json:"web,omitempty"`
	Maps *groundingSource `json:"maps,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []generatePart `json:"parts"`
		} `json:"content"`
		GroundingMetadata *struct {
			GroundingChunks []groundingChunk `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
}

// Generate sends the transcript plus the new prompt and returns the
// model's reply text. Grounding links, when present, are appended as a
// markdown "Sources/Maps" block.
func (client *Client) Generate(ctx context.Context, history []ChatMessage, prompt string) (string, error) {
	payload := generateRequest{
		SystemInstruction: &generateContent{Parts: []generatePart{{Text: systemInstruction}}},
		Contents:          buildContents(history, prompt),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("gemini: encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", client.baseURL, client.model)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini: create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("x-goog-api-key", client.apiKey)

	response, err := client.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("gemini: request failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini: unexpected status %d", response.StatusCode)
	}

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("gemini: read body: %w", err)
	}

	var decoded generateResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("gemini: decode json: %w", err)
	}
	if len(decoded.Candidates) == 0 {
		return "", fmt.Errorf("gemini: empty candidate list")
	}

	candidate := decoded.Candidates[0]

	text := joinParts(candidate.Content.Parts)
	if text == "" {
		text = noTextReply
	}

	if candidate.GroundingMetadata != nil {
		if links := formatSources(candidate.GroundingMetadata.GroundingChunks); links != "" {
			text += "\n\nSources/Maps:\n" + links
		}
	}

	return text, nil
}

// buildContents replays the transcript as alternating turns, skipping
// error placeholders, then appends the new prompt.
func buildContents(history []ChatMessage, prompt string) []generateContent {
	contents := make([]generateContent, 0, len(history)+1)
	for _, message := range history {
		if message.IsError {
			continue
		}
		contents = append(contents, generateContent{
			Role:  message.Role,
			Parts: []generatePart{{Text: message.Text}},
		})
	}
	return append(contents, generateContent{
		Role:  RoleUser,
		Parts: []generatePart{{Text: prompt}},
	})
}

func joinParts(parts []generatePart) string {
	var builder strings.Builder
	for _, part := range parts {
		builder.WriteString(part.Text)
	}
	return builder.String()
}

// formatSources renders grounding chunks as markdown links, one per
// line. Web sources win over map sources within a chunk.
func formatSources(chunks []groundingChunk) string {
	links := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		source := chunk.Web
		if source == nil {
			source = chunk.Maps
		}
		if source == nil || source.URI == "" {
			continue
		}
		links = append(links, fmt.Sprintf("[%s](%s)", source.Title, source.URI))
	}
	return strings.Join(links, "\n")
}
