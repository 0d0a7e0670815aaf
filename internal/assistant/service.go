package assistant

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/book2screen/book2screen/internal/platform/validate"
)

// Generator produces a model reply for a prompt given the transcript
// so far. The Gemini client implements it; tests inject a stub.
type Generator interface {
	Generate(ctx context.Context, history []ChatMessage, prompt string) (string, error)
}

// Service keeps the process-wide transcript and relays prompts to the
// generator.
type Service struct {
	generator Generator
	logger    *slog.Logger

	mutex    sync.RWMutex
	messages []ChatMessage
}

func NewService(generator Generator, logger *slog.Logger) *Service {
	return &Service{
		generator: generator,
		logger:    logger,
		messages:  []ChatMessage{{Role: RoleModel, Text: Greeting}},
	}
}

// Transcript returns the conversation so far, oldest first.
func (service *Service) Transcript(_ context.Context) []ChatMessage {
	service.mutex.RLock()
	defer service.mutex.RUnlock()
	return slices.Clone(service.messages)
}

// Send records the user's prompt, asks the generator for a reply, and
// records that too. An upstream failure never surfaces as an error:
// the reply becomes the canned fallback flagged with isError.
func (service *Service) Send(ctx context.Context, text string) (ChatMessage, error) {
	prompt := strings.TrimSpace(text)

	validator := &validate.Validator{}
	validator.Required("text", prompt)
	if err := validator.Err(); err != nil {
		return ChatMessage{}, err
	}

	service.mutex.Lock()
	history := slices.Clone(service.messages)
	service.messages = append(service.messages, ChatMessage{Role: RoleUser, Text: prompt})
	service.mutex.Unlock()

	reply := ChatMessage{Role: RoleModel}
	generated, err := service.generator.Generate(ctx, history, prompt)
	if err != nil {
		service.logger.Warn("assistant_generate_failed", "error", err)
		reply.Text = FallbackReply
		reply.IsError = true
	} else {
		reply.Text = generated
	}

	service.mutex.Lock()
	service.messages = append(service.messages, reply)
	service.mutex.Unlock()

	return reply, nil
}
