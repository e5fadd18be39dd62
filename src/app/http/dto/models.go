// Package dto defines request payloads with transport-layer validation rules.
package dto

// CreateFeatureRequest is the payload for POST /api/v1/features.
type CreateFeatureRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required"`
	AuthorName  string `json:"author_name" binding:"required,max=100"`
}

// VoteRequest is the payload for POST /api/v1/features/:id/vote.
type VoteRequest struct {
	UserIdentifier string `json:"user_identifier" binding:"required,max=100"`
}

// ListFeaturesQuery captures the query parameters for GET /api/v1/features.
// Values are sanitized by the use case, not rejected here.
type ListFeaturesQuery struct {
	SortBy string `form:"sort_by"`
	Order  string `form:"order"`
	Limit  int    `form:"limit"`
}
