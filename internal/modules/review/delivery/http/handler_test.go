package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"anoa.com/portfoliocms/internal/entity"
	"anoa.com/portfoliocms/internal/middleware"
	crudRepo "anoa.com/portfoliocms/internal/modules/crud/repository"
	"anoa.com/portfoliocms/internal/modules/review/service"
	"anoa.com/portfoliocms/internal/testutil"
	"anoa.com/portfoliocms/pkg/logger"
	"anoa.com/portfoliocms/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestReviewRatingBounds(t *testing.T) {
	gin.SetMode(gin.TestMode)
	validator.RegisterJSONTagNames()

	db := testutil.NewDB(t, &entity.Review{})
	h := NewReviewHandler(service.NewReviewService(crudRepo.New[entity.Review](db)))

	r := gin.New()
	r.Use(middleware.ErrorHandler(logger.Discard(), false))
	owner := uuid.New()
	g := r.Group("/reviews", func(c *gin.Context) { c.Set("user_id", owner.String()) })
	h.Register(g)

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := post(`{"reviewerName":"Dana","rating":6,"comment":"great"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "rating must be at most 5")

	w = post(`{"reviewerName":"Dana","rating":5,"comment":"great"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}
