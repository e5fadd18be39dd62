// Package repo contains persistence adapters for the repository ports.
// PostgresFeatureRepository and PostgresVoteRepository are the production
// adapters; the in-memory implementations back unit tests.
package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"featurevote/src/core/domain"
	"featurevote/src/core/ports"
	"featurevote/src/infra/db"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// PostgresFeatureRepository implements ports.FeatureRepository using pgx.
type PostgresFeatureRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresFeatureRepository constructs a feature repository backed by Postgres.
func NewPostgresFeatureRepository(pg *db.Postgres, log *slog.Logger) *PostgresFeatureRepository {
	return &PostgresFeatureRepository{
		pool: pg.Pool,
		log:  log,
	}
}

func (r *PostgresFeatureRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *PostgresFeatureRepository) Create(ctx context.Context, feature *domain.Feature) (*domain.Feature, error) {
	const q = `
		INSERT INTO features (id, title, description, author_name, votes_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, title, description, author_name, votes_count, created_at, updated_at
	`
	return scanFeature(r.pool.QueryRow(ctx, q,
		feature.ID, feature.Title, feature.Description, feature.AuthorName,
		feature.VotesCount, feature.CreatedAt, feature.UpdatedAt,
	))
}

func (r *PostgresFeatureRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Feature, error) {
	const q = `
		SELECT id, title, description, author_name, votes_count, created_at, updated_at
		FROM features
		WHERE id = $1
	`
	feature, err := scanFeature(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return feature, nil
}

func (r *PostgresFeatureRepository) ListAll(ctx context.Context, lq ports.ListQuery) ([]domain.Feature, error) {
	// Sort column and direction cannot be bound as parameters; both come from
	// the sanitized query vocabulary, never from raw request input.
	sortColumn := "created_at"
	if lq.SortBy == ports.SortByVotes {
		sortColumn = "votes_count"
	}
	direction := "DESC"
	if lq.Order == ports.OrderAsc {
		direction = "ASC"
	}

	q := fmt.Sprintf(`
		SELECT id, title, description, author_name, votes_count, created_at, updated_at
		FROM features
		ORDER BY %s %s
		LIMIT $1
	`, sortColumn, direction)

	rows, err := r.pool.Query(ctx, q, lq.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	features := make([]domain.Feature, 0, lq.Limit)
	for rows.Next() {
		feature, err := scanFeature(rows)
		if err != nil {
			return nil, err
		}
		features = append(features, *feature)
	}
	return features, rows.Err()
}

func (r *PostgresFeatureRepository) Update(ctx context.Context, feature *domain.Feature) (*domain.Feature, error) {
	const q = `
		UPDATE features
		SET title = $2, description = $3, author_name = $4, votes_count = $5, updated_at = $6
		WHERE id = $1
		RETURNING id, title, description, author_name, votes_count, created_at, updated_at
	`
	updated, err := scanFeature(r.pool.QueryRow(ctx, q,
		feature.ID, feature.Title, feature.Description, feature.AuthorName,
		feature.VotesCount, feature.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return updated, nil
}

func (r *PostgresFeatureRepository) IncrementVotes(ctx context.Context, id uuid.UUID) (*domain.Feature, error) {
	// The increment happens inside the database so concurrent upvotes on the
	// same feature cannot lose updates.
	const q = `
		UPDATE features
		SET votes_count = votes_count + 1, updated_at = now()
		WHERE id = $1
		RETURNING id, title, description, author_name, votes_count, created_at, updated_at
	`
	updated, err := scanFeature(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return updated, nil
}

func scanFeature(row pgx.Row) (*domain.Feature, error) {
	var f domain.Feature
	if err := row.Scan(
		&f.ID, &f.Title, &f.Description, &f.AuthorName,
		&f.VotesCount, &f.CreatedAt, &f.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &f, nil
}
