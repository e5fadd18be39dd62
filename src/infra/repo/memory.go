package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"featurevote/src/core/domain"
	"featurevote/src/core/ports"
)

// In-memory adapters satisfying the repository ports. They back unit tests
// and let the use cases run without a database, per the swappable-adapter
// design of the persistence boundary.

var (
	_ ports.FeatureRepository = (*InMemoryFeatureRepository)(nil)
	_ ports.VoteRepository    = (*InMemoryVoteRepository)(nil)
)

// InMemoryFeatureRepository stores features in a map guarded by a mutex.
type InMemoryFeatureRepository struct {
	mu       sync.RWMutex
	features map[uuid.UUID]domain.Feature
}

// NewInMemoryFeatureRepository creates an empty in-memory feature store.
func NewInMemoryFeatureRepository() *InMemoryFeatureRepository {
	return &InMemoryFeatureRepository{
		features: make(map[uuid.UUID]domain.Feature),
	}
}

func (r *InMemoryFeatureRepository) Health(_ context.Context) error {
	return nil
}

func (r *InMemoryFeatureRepository) Create(_ context.Context, feature *domain.Feature) (*domain.Feature, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *feature
	r.features[stored.ID] = stored

	out := stored
	return &out, nil
}

func (r *InMemoryFeatureRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Feature, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.features[id]
	if !ok {
		return nil, nil
	}
	out := stored
	return &out, nil
}

func (r *InMemoryFeatureRepository) ListAll(_ context.Context, q ports.ListQuery) ([]domain.Feature, error) {
	r.mu.RLock()
	all := make([]domain.Feature, 0, len(r.features))
	for _, f := range r.features {
		all = append(all, f)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		var less bool
		if q.SortBy == ports.SortByVotes {
			if all[i].VotesCount != all[j].VotesCount {
				less = all[i].VotesCount < all[j].VotesCount
			} else {
				less = all[i].CreatedAt.Before(all[j].CreatedAt)
			}
		} else {
			less = all[i].CreatedAt.Before(all[j].CreatedAt)
		}
		if q.Order == ports.OrderDesc {
			return !less
		}
		return less
	})

	if q.Limit > 0 && len(all) > q.Limit {
		all = all[:q.Limit]
	}
	return all, nil
}

func (r *InMemoryFeatureRepository) Update(_ context.Context, feature *domain.Feature) (*domain.Feature, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.features[feature.ID]; !ok {
		return nil, nil
	}
	stored := *feature
	r.features[stored.ID] = stored

	out := stored
	return &out, nil
}

func (r *InMemoryFeatureRepository) IncrementVotes(_ context.Context, id uuid.UUID) (*domain.Feature, error) {
	// Increment happens under the write lock, mirroring the atomicity the
	// Postgres adapter gets from a single UPDATE statement.
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.features[id]
	if !ok {
		return nil, nil
	}
	stored.VotesCount++
	stored.UpdatedAt = time.Now().UTC()
	r.features[id] = stored

	out := stored
	return &out, nil
}

// InMemoryVoteRepository stores votes keyed by (feature_id, user_identifier).
type InMemoryVoteRepository struct {
	mu    sync.RWMutex
	votes map[domain.VoteKey]domain.Vote
}

// NewInMemoryVoteRepository creates an empty in-memory vote store.
func NewInMemoryVoteRepository() *InMemoryVoteRepository {
	return &InMemoryVoteRepository{
		votes: make(map[domain.VoteKey]domain.Vote),
	}
}

func (r *InMemoryVoteRepository) Health(_ context.Context) error {
	return nil
}

func (r *InMemoryVoteRepository) Create(_ context.Context, vote *domain.Vote) (*domain.Vote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := vote.Key()
	if _, ok := r.votes[key]; ok {
		// Same contract as the database uniqueness constraint.
		return nil, domain.NewDuplicateVoteError(vote.FeatureID, vote.UserIdentifier)
	}

	stored := *vote
	r.votes[key] = stored

	out := stored
	return &out, nil
}

func (r *InMemoryVoteRepository) GetByFeatureAndUser(_ context.Context, featureID uuid.UUID, userIdentifier string) (*domain.Vote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.votes[domain.VoteKey{FeatureID: featureID, UserIdentifier: userIdentifier}]
	if !ok {
		return nil, nil
	}
	out := stored
	return &out, nil
}

func (r *InMemoryVoteRepository) Exists(ctx context.Context, featureID uuid.UUID, userIdentifier string) (bool, error) {
	vote, err := r.GetByFeatureAndUser(ctx, featureID, userIdentifier)
	if err != nil {
		return false, err
	}
	return vote != nil, nil
}
