package build

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UseCase инкапсулирует сценарии работы с сохранёнными сборками.
type UseCase interface {
	Save(ctx context.Context, b Build, share bool) (Build, error)
	Get(ctx context.Context, id uuid.UUID) (Build, error)
	GetShared(ctx context.Context, token string) (Build, error)
	List(ctx context.Context, limit, offset int) ([]Build, error)
}

type service struct {
	repo  Repository
	cache SharedCache
	log   *zap.Logger
	now   func() time.Time
	token func() string
}

// NewService wires the saved-builds use case. cache may be nil.
func NewService(repo Repository, cache SharedCache, log *zap.Logger) UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{
		repo:  repo,
		cache: cache,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
		token: NewShareToken,
	}
}

// NewShareToken returns an opaque 32-character hex token.
func NewShareToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func (s *service) Save(ctx context.Context, b Build, share bool) (Build, error) {
	b.Name = strings.TrimSpace(b.Name)
	if b.Name == "" {
		return Build{}, ErrValidation("name is required")
	}
	if len(b.BuildData) == 0 || !json.Valid(b.BuildData) {
		return Build{}, ErrValidation("buildData must be a JSON document")
	}
	b.ID = uuid.New()
	b.CreatedAt = s.now()
	b.ShareToken = nil
	if share {
		t := s.token()
		b.ShareToken = &t
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return Build{}, err
	}
	s.log.Info("build saved",
		zap.String("id", b.ID.String()),
		zap.Bool("shared", share))
	return b, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (Build, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetShared(ctx context.Context, token string) (Build, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Build{}, ErrNotFound
	}
	if s.cache != nil {
		if b, ok := s.cache.Get(ctx, token); ok {
			return b, nil
		}
	}
	b, err := s.repo.GetByShareToken(ctx, token)
	if err != nil {
		return Build{}, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, b)
	}
	return b, nil
}

func (s *service) List(ctx context.Context, limit, offset int) ([]Build, error) {
	return s.repo.List(ctx, limit, offset)
}
