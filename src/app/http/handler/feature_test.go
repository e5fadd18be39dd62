package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"featurevote/src/app/server"
	"featurevote/src/core/usecase"
	"featurevote/src/infra/config"
	"featurevote/src/infra/logger"
	"featurevote/src/infra/repo"
)

type FeatureAPISuite struct {
	suite.Suite
	router *gin.Engine
}

func TestFeatureAPISuite(t *testing.T) {
	suite.Run(t, new(FeatureAPISuite))
}

func (s *FeatureAPISuite) SetupTest() {
	cfg := &config.Config{
		Server: config.ServerConfig{Port: 0, Host: "127.0.0.1"},
		Log:    config.LogConfig{Level: "error", Format: "text"},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"*"}},
	}
	srv := server.New(cfg, logger.Discard(), repo.NewInMemoryFeatureRepository(), repo.NewInMemoryVoteRepository(), nil)
	s.router = srv.Router()
}

func (s *FeatureAPISuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *FeatureAPISuite) decodeFeature(rec *httptest.ResponseRecorder) usecase.FeatureProjection {
	var feature usecase.FeatureProjection
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &feature))
	return feature
}

func (s *FeatureAPISuite) createFeature(title string) usecase.FeatureProjection {
	rec := s.do(http.MethodPost, "/api/v1/features", gin.H{
		"title":       title,
		"description": "some description",
		"author_name": "alice",
	})
	s.Require().Equal(http.StatusCreated, rec.Code)
	return s.decodeFeature(rec)
}

func (s *FeatureAPISuite) TestVotingScenario() {
	// Create "Dark mode", vote as bob, reject bob's second vote, accept carol.
	rec := s.do(http.MethodPost, "/api/v1/features", gin.H{
		"title":       "Dark mode",
		"description": "Add dark theme",
		"author_name": "alice",
	})
	s.Require().Equal(http.StatusCreated, rec.Code)
	feature := s.decodeFeature(rec)
	s.Equal(0, feature.VotesCount)

	votePath := fmt.Sprintf("/api/v1/features/%s/vote", feature.ID)

	rec = s.do(http.MethodPost, votePath, gin.H{"user_identifier": "bob"})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(1, s.decodeFeature(rec).VotesCount)

	rec = s.do(http.MethodPost, votePath, gin.H{"user_identifier": "bob"})
	s.Require().Equal(http.StatusConflict, rec.Code)
	s.Contains(rec.Body.String(), "CONFLICT")

	rec = s.do(http.MethodGet, "/api/v1/features/"+feature.ID.String(), nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(1, s.decodeFeature(rec).VotesCount)

	rec = s.do(http.MethodPost, votePath, gin.H{"user_identifier": "carol"})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(2, s.decodeFeature(rec).VotesCount)
}

func (s *FeatureAPISuite) TestCreateValidation() {
	s.Run("missing fields rejected by binding", func() {
		rec := s.do(http.MethodPost, "/api/v1/features", gin.H{"title": "no description"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("overlong title rejected", func() {
		rec := s.do(http.MethodPost, "/api/v1/features", gin.H{
			"title":       strings.Repeat("x", 201),
			"description": "d",
			"author_name": "a",
		})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("malformed json rejected", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/features", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *FeatureAPISuite) TestGet() {
	s.Run("unknown id yields 404", func() {
		rec := s.do(http.MethodGet, "/api/v1/features/7c9eb9a3-99aa-4b05-9861-0ad304c7f1a5", nil)
		s.Equal(http.StatusNotFound, rec.Code)
		s.Contains(rec.Body.String(), "NOT_FOUND")
	})

	s.Run("non-uuid id yields 400", func() {
		rec := s.do(http.MethodGet, "/api/v1/features/not-a-uuid", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("timestamps serialize as ISO-8601", func() {
		created := s.createFeature("timestamped")
		rec := s.do(http.MethodGet, "/api/v1/features/"+created.ID.String(), nil)
		s.Require().Equal(http.StatusOK, rec.Code)

		var raw map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &raw))
		_, err := time.Parse(time.RFC3339Nano, raw["created_at"].(string))
		s.NoError(err)
	})
}

func (s *FeatureAPISuite) TestVoteErrors() {
	s.Run("unknown feature yields 404", func() {
		rec := s.do(http.MethodPost, "/api/v1/features/7c9eb9a3-99aa-4b05-9861-0ad304c7f1a5/vote", gin.H{"user_identifier": "bob"})
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("missing user_identifier yields 400", func() {
		created := s.createFeature("votable")
		rec := s.do(http.MethodPost, fmt.Sprintf("/api/v1/features/%s/vote", created.ID), gin.H{})
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *FeatureAPISuite) TestList() {
	s.Run("empty store lists empty array", func() {
		rec := s.do(http.MethodGet, "/api/v1/features", nil)
		s.Require().Equal(http.StatusOK, rec.Code)

		var features []usecase.FeatureProjection
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &features))
		s.Empty(features)
	})

	s.Run("oldest first with limit 2 over three features", func() {
		first := s.createFeature("first")
		time.Sleep(time.Millisecond)
		second := s.createFeature("second")
		time.Sleep(time.Millisecond)
		s.createFeature("third")

		rec := s.do(http.MethodGet, "/api/v1/features?sort_by=created_at&order=asc&limit=2", nil)
		s.Require().Equal(http.StatusOK, rec.Code)

		var features []usecase.FeatureProjection
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &features))
		s.Require().Len(features, 2)
		s.Equal(first.ID, features[0].ID)
		s.Equal(second.ID, features[1].ID)
	})

	s.Run("out-of-range limit falls back to the default", func() {
		for i := 0; i < 60; i++ {
			s.createFeature(fmt.Sprintf("feature %d", i))
		}

		for _, q := range []string{"?limit=0", "?limit=1000", "?sort_by=bogus&order=bogus"} {
			rec := s.do(http.MethodGet, "/api/v1/features"+q, nil)
			s.Require().Equal(http.StatusOK, rec.Code)

			var features []usecase.FeatureProjection
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &features))
			s.Len(features, usecase.DefaultLimit)
		}
	})
}

func (s *FeatureAPISuite) TestHealth() {
	rec := s.do(http.MethodGet, "/api/health", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var status usecase.HealthStatus
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &status))
	s.Equal("healthy", status.Status)
	s.Equal("connected", status.Database)
}

func (s *FeatureAPISuite) TestRequestIDPropagation() {
	rec := s.do(http.MethodGet, "/api/health", nil)
	s.NotEmpty(rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "trace-me")
	echo := httptest.NewRecorder()
	s.router.ServeHTTP(echo, req)
	s.Equal("trace-me", echo.Header().Get("X-Request-ID"))
}
