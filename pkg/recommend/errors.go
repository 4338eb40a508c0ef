package recommend

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/artem13815/pcbuild/pkg/llm"
)

// Messages holds the user-facing texts of one call site.
type Messages struct {
	RateLimited     string
	CreditsDepleted string
	Unavailable     string
	Timeout         string
	NotConfigured   string
	Fallback        string
}

var BuildMessages = Messages{
	RateLimited:     "Rate limit exceeded. Please try again in a moment.",
	CreditsDepleted: "AI service credits depleted. Please contact support.",
	Unavailable:     "The AI service is temporarily unavailable. Please try again in a moment.",
	Timeout:         "Request timed out. Please try again.",
	NotConfigured:   "AI service is not configured. Please contact support.",
	Fallback:        "Failed to generate builds. Please try again.",
}

var PeripheralMessages = Messages{
	RateLimited:     "Rate limit exceeded. Please try again in a moment.",
	CreditsDepleted: "AI service credits depleted.",
	Unavailable:     "The AI service is temporarily unavailable. Please try again in a moment.",
	Timeout:         "Request timed out. Please try again.",
	NotConfigured:   "AI service is not configured. Please contact support.",
	Fallback:        "Failed to generate peripheral recommendations. Please try again.",
}

// ErrMalformedRequest marks a request body that could not be decoded.
var ErrMalformedRequest = errors.New("malformed request body")

// Failure is an error already mapped to a response status and message.
type Failure struct {
	Status  int
	Message string
	Err     error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%d %s: %v", f.Status, f.Message, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// Classify maps a pipeline error onto the status and message a caller sees.
func Classify(err error, m Messages) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	fail := func(status int, msg string) *Failure {
		return &Failure{Status: status, Message: msg, Err: err}
	}

	var se *llm.StatusError
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		return fail(http.StatusInternalServerError, m.NotConfigured)
	case errors.Is(err, ErrMalformedRequest):
		return fail(http.StatusInternalServerError, m.Fallback)
	case errors.As(err, &se):
		switch {
		case se.StatusCode == http.StatusTooManyRequests:
			return fail(http.StatusTooManyRequests, m.RateLimited)
		case se.StatusCode == http.StatusPaymentRequired:
			return fail(http.StatusPaymentRequired, m.CreditsDepleted)
		case se.Temporary():
			return fail(http.StatusInternalServerError, m.Unavailable)
		default:
			return fail(http.StatusInternalServerError, fmt.Sprintf("AI Gateway error: %d", se.StatusCode))
		}
	case isTimeout(err):
		return fail(http.StatusInternalServerError, m.Timeout)
	}

	msg := m.Fallback
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return fail(http.StatusInternalServerError, msg)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
