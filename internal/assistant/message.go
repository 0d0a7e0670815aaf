// Package assistant implements "ScreenReader", the site's literary
// chat assistant. It keeps a process-wide transcript and relays user
// prompts to the Gemini generateContent API, degrading to a canned
// reply when the upstream call fails.
package assistant

// Message roles in a transcript.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Greeting opens every fresh transcript.
const Greeting = "Hello! I'm ScreenReader. Ask me about books, movies, or where to find your next great read."

// FallbackReply is returned as a model message whenever the upstream
// API cannot be reached or answers with an error.
const FallbackReply = "I'm having trouble connecting to the literary archives (API Error). Please try again later."

// ChatMessage is one turn of the assistant transcript.
type ChatMessage struct {
	Role    string `json:"role"`
	Text    string `json:"text"`
	IsError bool   `json:"isError,omitempty"`
}
