// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"github.com/google/uuid"

	"featurevote/src/core/domain"
)

// Sort fields accepted by FeatureRepository.ListAll.
const (
	SortByVotes     = "votes"
	SortByCreatedAt = "created_at"
)

// Sort directions accepted by FeatureRepository.ListAll.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Repository is the base interface for all repositories.
// Concrete repositories should embed this and add entity-specific methods.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// ListQuery carries sanitized listing parameters. Use cases are responsible
// for sanitizing values before handing the query to a repository.
type ListQuery struct {
	SortBy string
	Order  string
	Limit  int
}

// FeatureRepository persists Feature entities.
//
// Lookup methods return absence as a value: (nil, nil) when no row matches.
// Interpreting absence (not-found vs. ignore) is the use case's call, never
// the repository's. Create, Update, and IncrementVotes return the persisted
// representation so storage-assigned values round-trip back to the caller.
type FeatureRepository interface {
	Repository

	Create(ctx context.Context, feature *domain.Feature) (*domain.Feature, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Feature, error)
	ListAll(ctx context.Context, q ListQuery) ([]domain.Feature, error)
	Update(ctx context.Context, feature *domain.Feature) (*domain.Feature, error)

	// IncrementVotes bumps votes_count by one and refreshes updated_at as a
	// single storage-level operation, so concurrent upvotes on the same
	// feature cannot lose updates the way a load-mutate-Update cycle can.
	// Returns (nil, nil) when the feature does not exist.
	IncrementVotes(ctx context.Context, id uuid.UUID) (*domain.Feature, error)
}

// VoteRepository persists Vote value objects.
//
// Create must surface a storage-level uniqueness violation on
// (feature_id, user_identifier) as a DuplicateVoteError: the application-level
// Exists check and the insert are not atomic, so the storage constraint is the
// real duplicate-prevention guarantee.
type VoteRepository interface {
	Repository

	Create(ctx context.Context, vote *domain.Vote) (*domain.Vote, error)
	GetByFeatureAndUser(ctx context.Context, featureID uuid.UUID, userIdentifier string) (*domain.Vote, error)
	Exists(ctx context.Context, featureID uuid.UUID, userIdentifier string) (bool, error)
}
