package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/pcbuild/pkg/build"
)

// BuildRepository хранит сохранённые сборки.
type BuildRepository struct {
	pool *pgxpool.Pool
}

// NewBuildRepository expects the schema to be migrated already.
func NewBuildRepository(pool *pgxpool.Pool) *BuildRepository {
	return &BuildRepository{pool: pool}
}

const buildColumns = `id, name, budget, use_case, custom_requirements, build_data, selected_tier, share_token, created_at`

func (r *BuildRepository) Create(ctx context.Context, b build.Build) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO builds (`+buildColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`, b.ID, b.Name, b.Budget, b.UseCase, nullable(b.CustomRequirements), []byte(b.BuildData), b.SelectedTier, b.ShareToken, b.CreatedAt)
	return err
}

func (r *BuildRepository) GetByID(ctx context.Context, id uuid.UUID) (build.Build, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+buildColumns+` FROM builds WHERE id = $1`, id)
	return scanBuild(row)
}

func (r *BuildRepository) GetByShareToken(ctx context.Context, token string) (build.Build, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+buildColumns+` FROM builds WHERE share_token = $1`, token)
	return scanBuild(row)
}

func (r *BuildRepository) List(ctx context.Context, limit, offset int) ([]build.Build, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+buildColumns+`
FROM builds
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]build.Build, 0, limit)
	for rows.Next() {
		b, err := scanBuild(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func scanBuild(row pgx.Row) (build.Build, error) {
	var (
		b      build.Build
		custom *string
		data   []byte
	)
	err := row.Scan(&b.ID, &b.Name, &b.Budget, &b.UseCase, &custom, &data, &b.SelectedTier, &b.ShareToken, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return build.Build{}, build.ErrNotFound
		}
		return build.Build{}, err
	}
	if custom != nil {
		b.CustomRequirements = *custom
	}
	b.BuildData = data
	b.CreatedAt = b.CreatedAt.UTC()
	return b, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
