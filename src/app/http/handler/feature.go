// Package handler contains HTTP handlers for the API.
// Handlers are responsible for:
// - Parsing and validating HTTP requests
// - Calling use case methods
// - Converting results to HTTP responses
package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"featurevote/src/app/http/dto"
	"featurevote/src/app/http/response"
	"featurevote/src/app/middleware"
	"featurevote/src/core/usecase"
)

// FeatureHandler handles feature endpoints.
type FeatureHandler struct {
	featureService *usecase.FeatureService
}

// NewFeatureHandler creates a new FeatureHandler.
func NewFeatureHandler(featureService *usecase.FeatureService) *FeatureHandler {
	return &FeatureHandler{featureService: featureService}
}

// Create handles POST /api/v1/features.
func (h *FeatureHandler) Create(c *gin.Context) {
	var req dto.CreateFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	feature, err := h.featureService.Create(c.Request.Context(), usecase.CreateFeatureInput{
		Title:       req.Title,
		Description: req.Description,
		AuthorName:  req.AuthorName,
	})
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.Created(c, feature)
}

// List handles GET /api/v1/features.
func (h *FeatureHandler) List(c *gin.Context) {
	var query dto.ListFeaturesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "invalid query parameters", middleware.GetRequestID(c))
		return
	}

	features, err := h.featureService.List(c.Request.Context(), usecase.ListFeaturesInput{
		SortBy: query.SortBy,
		Order:  query.Order,
		Limit:  query.Limit,
	})
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.OK(c, features)
}

// Get handles GET /api/v1/features/:id.
func (h *FeatureHandler) Get(c *gin.Context) {
	featureID, ok := parseFeatureID(c)
	if !ok {
		return
	}

	feature, err := h.featureService.Get(c.Request.Context(), featureID)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.OK(c, feature)
}

// Vote handles POST /api/v1/features/:id/vote.
func (h *FeatureHandler) Vote(c *gin.Context) {
	featureID, ok := parseFeatureID(c)
	if !ok {
		return
	}

	var req dto.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	feature, err := h.featureService.Upvote(c.Request.Context(), featureID, req.UserIdentifier)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.OK(c, feature)
}

func parseFeatureID(c *gin.Context) (uuid.UUID, bool) {
	featureID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid feature id", middleware.GetRequestID(c))
		return uuid.Nil, false
	}
	return featureID, true
}
