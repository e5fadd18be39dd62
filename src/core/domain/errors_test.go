package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestErrorPredicates(t *testing.T) {
	featureID := uuid.New()

	notFound := NewFeatureNotFoundError(featureID)
	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsConflict(notFound))
	assert.Contains(t, notFound.Error(), featureID.String())

	dup := NewDuplicateVoteError(featureID, "bob")
	assert.True(t, IsConflict(dup))
	assert.False(t, IsNotFound(dup))
	assert.Contains(t, dup.Error(), "bob")

	invalid := NewInvalidFeatureDataError("Description is required")
	assert.True(t, IsValidationError(invalid))
	assert.Equal(t, "Description is required", invalid.Error())
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("loading feature: %w", NewFeatureNotFoundError(uuid.New()))
	assert.True(t, IsNotFound(err))

	var notFound *FeatureNotFoundError
	assert.True(t, errors.As(err, &notFound))
}
