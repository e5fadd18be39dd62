package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"featurevote/src/core/domain"
	"featurevote/src/infra/db"
)

// PostgresVoteRepository implements ports.VoteRepository using pgx.
type PostgresVoteRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresVoteRepository constructs a vote repository backed by Postgres.
func NewPostgresVoteRepository(pg *db.Postgres, log *slog.Logger) *PostgresVoteRepository {
	return &PostgresVoteRepository{
		pool: pg.Pool,
		log:  log,
	}
}

func (r *PostgresVoteRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *PostgresVoteRepository) Create(ctx context.Context, vote *domain.Vote) (*domain.Vote, error) {
	const q = `
		INSERT INTO votes (id, feature_id, user_identifier, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, feature_id, user_identifier, created_at
	`
	var v domain.Vote
	err := r.pool.QueryRow(ctx, q, vote.ID, vote.FeatureID, vote.UserIdentifier, vote.CreatedAt).
		Scan(&v.ID, &v.FeatureID, &v.UserIdentifier, &v.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			// The votes_feature_user_unique constraint fired: a concurrent
			// request recorded the same (feature, voter) pair after the
			// use case's existence check passed.
			return nil, domain.NewDuplicateVoteError(vote.FeatureID, vote.UserIdentifier)
		}
		return nil, err
	}
	return &v, nil
}

func (r *PostgresVoteRepository) GetByFeatureAndUser(ctx context.Context, featureID uuid.UUID, userIdentifier string) (*domain.Vote, error) {
	const q = `
		SELECT id, feature_id, user_identifier, created_at
		FROM votes
		WHERE feature_id = $1 AND user_identifier = $2
	`
	var v domain.Vote
	err := r.pool.QueryRow(ctx, q, featureID, userIdentifier).
		Scan(&v.ID, &v.FeatureID, &v.UserIdentifier, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *PostgresVoteRepository) Exists(ctx context.Context, featureID uuid.UUID, userIdentifier string) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM votes WHERE feature_id = $1 AND user_identifier = $2
		)
	`
	var exists bool
	if err := r.pool.QueryRow(ctx, q, featureID, userIdentifier).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
