package llm

import (
	"context"
	"errors"
	"fmt"
)

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It hides concrete providers to preserve dependency direction.
type ChatModel interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Request is a single system+user exchange.
type Request struct {
	SystemPrompt string
	UserPrompt   string
	// JSONOutput asks the upstream for a json_object response format.
	JSONOutput  bool
	Temperature float64
}

// ErrNotConfigured is returned when no upstream credential was supplied.
var ErrNotConfigured = errors.New("llm: api key is not configured")

// StatusError is a non-2xx answer from the upstream completion API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("llm upstream http %d", e.StatusCode)
}

// Temporary reports whether the upstream signalled a server-side failure.
func (e *StatusError) Temporary() bool {
	return e.StatusCode >= 500 && e.StatusCode <= 599
}
