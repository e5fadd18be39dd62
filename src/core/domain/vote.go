package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vote is a single voter's endorsement of one feature. It is a value object:
// immutable after construction, with identity derived from the
// (feature_id, user_identifier) pair rather than the generated id.
type Vote struct {
	ID             uuid.UUID `json:"id"`
	FeatureID      uuid.UUID `json:"feature_id"`
	UserIdentifier string    `json:"user_identifier"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewVote constructs a vote with a generated id and current timestamp.
func NewVote(featureID uuid.UUID, userIdentifier string) *Vote {
	return &Vote{
		ID:             uuid.New(),
		FeatureID:      featureID,
		UserIdentifier: userIdentifier,
		CreatedAt:      time.Now().UTC(),
	}
}

// RehydrateVote reconstructs a vote from stored fields.
func RehydrateVote(id, featureID uuid.UUID, userIdentifier string, createdAt time.Time) *Vote {
	return &Vote{
		ID:             id,
		FeatureID:      featureID,
		UserIdentifier: userIdentifier,
		CreatedAt:      createdAt,
	}
}

// VoteKey is the duplicate-detection key for a vote. Two votes are the same
// vote iff their keys match, regardless of id and created_at.
type VoteKey struct {
	FeatureID      uuid.UUID
	UserIdentifier string
}

// Key returns the vote's identity pair, usable as a map key.
func (v *Vote) Key() VoteKey {
	return VoteKey{FeatureID: v.FeatureID, UserIdentifier: v.UserIdentifier}
}

// Equal reports whether two votes represent the same (feature, voter) pair.
func (v *Vote) Equal(other *Vote) bool {
	if other == nil {
		return false
	}
	return v.Key() == other.Key()
}
