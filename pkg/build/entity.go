package build

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Build is a saved recommendation result, optionally exposed by share token.
type Build struct {
	ID                 uuid.UUID       `json:"id"`
	Name               string          `json:"name"`
	Budget             float64         `json:"budget"`
	UseCase            string          `json:"useCase"`
	CustomRequirements string          `json:"customRequirements,omitempty"`
	BuildData          json.RawMessage `json:"buildData" swaggertype:"object"`
	SelectedTier       string          `json:"selectedTier"`
	ShareToken         *string         `json:"shareToken,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// ErrNotFound is returned when no build matches the id or token.
var ErrNotFound = errors.New("build not found")

// ErrValidation простая ошибка валидации.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// Repository: порт для хранения сборок.
type Repository interface {
	Create(ctx context.Context, b Build) error
	GetByID(ctx context.Context, id uuid.UUID) (Build, error)
	GetByShareToken(ctx context.Context, token string) (Build, error)
	List(ctx context.Context, limit, offset int) ([]Build, error)
}

// SharedCache keeps recently requested shared builds close to the handler.
type SharedCache interface {
	Get(ctx context.Context, token string) (Build, bool)
	Set(ctx context.Context, b Build)
}
