// Package domain contains the core domain model: the Feature entity, the Vote
// value object, and domain-specific errors.
// This package should have no infrastructure dependencies.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Feature is a proposed enhancement open for voting.
type Feature struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AuthorName  string    `json:"author_name"`
	VotesCount  int       `json:"votes_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewFeature constructs a fresh feature with a generated id, zero votes, and
// created_at == updated_at. Field validation is the use case's responsibility,
// keeping the entity a plain data holder.
func NewFeature(title, description, authorName string) *Feature {
	now := time.Now().UTC()
	return &Feature{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		AuthorName:  authorName,
		VotesCount:  0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// RehydrateFeature reconstructs a feature from stored fields. Repositories use
// this when mapping rows back to entities; nothing is generated or defaulted.
func RehydrateFeature(id uuid.UUID, title, description, authorName string, votesCount int, createdAt, updatedAt time.Time) *Feature {
	return &Feature{
		ID:          id,
		Title:       title,
		Description: description,
		AuthorName:  authorName,
		VotesCount:  votesCount,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// IncrementVote bumps the vote count and refreshes updated_at.
func (f *Feature) IncrementVote() {
	f.VotesCount++
	f.UpdatedAt = time.Now().UTC()
}
