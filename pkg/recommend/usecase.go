package recommend

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/artem13815/pcbuild/pkg/llm"
	"github.com/artem13815/pcbuild/pkg/logger"
	"github.com/artem13815/pcbuild/pkg/retry"
)

const (
	maxAttempts  = 3
	backoffStep  = time.Second
	logBodyLimit = 200
)

// UseCase produces raw completion text for the two recommendation flows.
// Errors are always *Failure.
type UseCase interface {
	GenerateBuilds(ctx context.Context, req BuildRequest) (string, error)
	RecommendPeripherals(ctx context.Context, req PeripheralRequest) (string, error)
}

type service struct {
	model  llm.ChatModel
	policy retry.Policy
	log    *zap.Logger
}

type Option func(*service)

// WithSleep replaces the inter-attempt sleep, e.g. with a fake clock.
func WithSleep(sleep retry.SleepFunc) Option {
	return func(s *service) { s.policy.Sleep = sleep }
}

// NewService wires the gateway. A nil model means no credential was
// configured; every call then fails without reaching the upstream.
func NewService(model llm.ChatModel, log *zap.Logger, opts ...Option) UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	s := &service{
		model: model,
		policy: retry.Policy{
			MaxAttempts: maxAttempts,
			Backoff:     retry.Linear(backoffStep),
			Sleep:       retry.Sleep,
		},
		log: log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) GenerateBuilds(ctx context.Context, req BuildRequest) (string, error) {
	return s.complete(ctx, "generate-pc-build", BuildPrompt(req), BuildMessages)
}

func (s *service) RecommendPeripherals(ctx context.Context, req PeripheralRequest) (string, error) {
	return s.complete(ctx, "recommend-peripherals", PeripheralPrompt(req), PeripheralMessages)
}

func (s *service) complete(ctx context.Context, flow string, req llm.Request, msgs Messages) (string, error) {
	log := s.log.With(zap.String("flow", flow))
	if s.model == nil {
		log.Error("llm credential is not configured")
		return "", Classify(llm.ErrNotConfigured, msgs)
	}

	policy := s.policy
	policy.OnRetry = func(attempt int, delay time.Duration, _ error) {
		log.Info("retrying upstream call",
			zap.Int("attempt", attempt),
			zap.Int("max_retries", maxAttempts-1),
			zap.Duration("delay", delay))
	}

	out, err := retry.Do(ctx, policy, func(ctx context.Context, attempt int) (string, error) {
		text, err := s.model.Complete(ctx, req)
		if err == nil {
			return text, nil
		}
		var se *llm.StatusError
		if errors.As(err, &se) {
			log.Error("ai gateway error",
				zap.Int("attempt", attempt+1),
				zap.Int("status", se.StatusCode),
				zap.String("body", logger.Truncate(se.Body, logBodyLimit)))
			if se.Temporary() {
				return "", err
			}
			return "", retry.Permanent(err)
		}
		if errors.Is(err, llm.ErrNotConfigured) {
			return "", retry.Permanent(err)
		}
		log.Error("upstream attempt failed",
			zap.Int("attempt", attempt+1),
			zap.Error(err))
		return "", err
	})
	if err != nil {
		f := Classify(err, msgs)
		log.Error("recommendation failed",
			zap.Int("status", f.Status),
			zap.String("message", f.Message),
			zap.Error(err))
		return "", f
	}

	log.Info("ai response received", zap.Int("bytes", len(out)))
	return out, nil
}
