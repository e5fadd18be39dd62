// Package usecase contains application services orchestrating repositories
// and enforcing cross-entity rules. Services are stateless aside from their
// injected dependencies; every method is safe for concurrent use.
package usecase

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"featurevote/src/core/domain"
	"featurevote/src/core/metrics"
	"featurevote/src/core/ports"
)

// Listing defaults and bounds. Out-of-range values fall back silently rather
// than erroring.
const (
	DefaultSortBy = ports.SortByCreatedAt
	DefaultOrder  = ports.OrderDesc
	DefaultLimit  = 50
	MaxLimit      = 100
)

// Feature field bounds checked at creation time.
const (
	MaxTitleLen      = 200
	MaxAuthorNameLen = 100
)

// FeatureProjection is the read-facing representation of a feature returned
// across the use-case boundary.
type FeatureProjection struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AuthorName  string    `json:"author_name"`
	VotesCount  int       `json:"votes_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateFeatureInput carries the raw creation fields.
type CreateFeatureInput struct {
	Title       string
	Description string
	AuthorName  string
}

// ListFeaturesInput carries raw, unsanitized listing parameters. Zero values
// mean "use the default".
type ListFeaturesInput struct {
	SortBy string
	Order  string
	Limit  int
}

// FeatureService implements the feature-voting use cases: create, get, list,
// and upvote.
type FeatureService struct {
	features ports.FeatureRepository
	votes    ports.VoteRepository
	log      *slog.Logger
	metrics  *metrics.Metrics
}

// NewFeatureService creates a FeatureService. metrics may be nil.
func NewFeatureService(features ports.FeatureRepository, votes ports.VoteRepository, log *slog.Logger, m *metrics.Metrics) *FeatureService {
	return &FeatureService{
		features: features,
		votes:    votes,
		log:      log,
		metrics:  m,
	}
}

// Create validates the input, persists a new feature, and returns the
// persisted projection. Validation fails on the first violation, in field
// order: title, description, author name.
func (s *FeatureService) Create(ctx context.Context, in CreateFeatureInput) (*FeatureProjection, error) {
	// Bounds count characters, not bytes, matching the transport-layer
	// binding rules.
	if titleLen := utf8.RuneCountInString(in.Title); titleLen == 0 || titleLen > MaxTitleLen {
		return nil, domain.NewInvalidFeatureDataError("Title must be between 1 and 200 characters")
	}
	if len(in.Description) == 0 {
		return nil, domain.NewInvalidFeatureDataError("Description is required")
	}
	if authorLen := utf8.RuneCountInString(in.AuthorName); authorLen == 0 || authorLen > MaxAuthorNameLen {
		return nil, domain.NewInvalidFeatureDataError("Author name must be between 1 and 100 characters")
	}

	created, err := s.features.Create(ctx, domain.NewFeature(in.Title, in.Description, in.AuthorName))
	if err != nil {
		return nil, err
	}

	s.metrics.IncFeaturesCreated()
	s.log.Info("feature created", "feature_id", created.ID, "title", created.Title)
	return projectFeature(created), nil
}

// Get returns the projection of one feature, or FeatureNotFoundError.
func (s *FeatureService) Get(ctx context.Context, featureID uuid.UUID) (*FeatureProjection, error) {
	feature, err := s.features.GetByID(ctx, featureID)
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, domain.NewFeatureNotFoundError(featureID)
	}
	return projectFeature(feature), nil
}

// List returns feature projections ordered by the repository according to the
// sanitized query. Invalid sort_by, order, or limit values fall back to the
// defaults; listing never fails on bad parameters.
func (s *FeatureService) List(ctx context.Context, in ListFeaturesInput) ([]FeatureProjection, error) {
	q := sanitizeListInput(in)

	features, err := s.features.ListAll(ctx, q)
	if err != nil {
		return nil, err
	}

	out := make([]FeatureProjection, 0, len(features))
	for i := range features {
		out = append(out, *projectFeature(&features[i]))
	}
	return out, nil
}

// Upvote records one vote by userIdentifier on the feature and returns the
// updated projection.
//
// The Exists check runs before the insert so the common duplicate attempt is
// answered without a write, but two concurrent requests for the same pair can
// both pass it. The storage uniqueness constraint is the real guarantee:
// VoteRepository.Create surfaces that violation as DuplicateVoteError too.
func (s *FeatureService) Upvote(ctx context.Context, featureID uuid.UUID, userIdentifier string) (*FeatureProjection, error) {
	feature, err := s.features.GetByID(ctx, featureID)
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, domain.NewFeatureNotFoundError(featureID)
	}

	exists, err := s.votes.Exists(ctx, featureID, userIdentifier)
	if err != nil {
		return nil, err
	}
	if exists {
		s.metrics.IncDuplicateVotes()
		return nil, domain.NewDuplicateVoteError(featureID, userIdentifier)
	}

	if _, err := s.votes.Create(ctx, domain.NewVote(featureID, userIdentifier)); err != nil {
		if domain.IsConflict(err) {
			// Lost the race against a concurrent vote for the same pair.
			s.metrics.IncDuplicateVotes()
		}
		return nil, err
	}

	updated, err := s.features.IncrementVotes(ctx, featureID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.NewFeatureNotFoundError(featureID)
	}

	s.metrics.IncVotesCast()
	s.log.Info("vote recorded", "feature_id", featureID, "user_identifier", userIdentifier, "votes_count", updated.VotesCount)
	return projectFeature(updated), nil
}

func sanitizeListInput(in ListFeaturesInput) ports.ListQuery {
	q := ports.ListQuery{SortBy: in.SortBy, Order: in.Order, Limit: in.Limit}
	if q.SortBy != ports.SortByVotes && q.SortBy != ports.SortByCreatedAt {
		q.SortBy = DefaultSortBy
	}
	if q.Order != ports.OrderAsc && q.Order != ports.OrderDesc {
		q.Order = DefaultOrder
	}
	if q.Limit < 1 || q.Limit > MaxLimit {
		q.Limit = DefaultLimit
	}
	return q
}

func projectFeature(f *domain.Feature) *FeatureProjection {
	return &FeatureProjection{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
		AuthorName:  f.AuthorName,
		VotesCount:  f.VotesCount,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}
