package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"anoa.com/portfoliocms/internal/middleware"
	"anoa.com/portfoliocms/pkg/apperror"
	"anoa.com/portfoliocms/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type tagInput struct {
	Name string `json:"name" binding:"required,max=10"`
}

type createTagRequest struct {
	tagInput
}

type updateTagRequest struct {
	tagInput
}

func (in tagInput) Fields() tagInput { return in }

type tagResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, owner uuid.UUID) ([]tagResponse, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tagResponse), args.Error(1)
}

func (m *MockService) GetByID(ctx context.Context, owner, id uuid.UUID) (tagResponse, error) {
	args := m.Called(ctx, owner, id)
	return args.Get(0).(tagResponse), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, owner uuid.UUID, in tagInput) (tagResponse, error) {
	args := m.Called(ctx, owner, in)
	return args.Get(0).(tagResponse), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, owner, id uuid.UUID, in tagInput) (tagResponse, error) {
	args := m.Called(ctx, owner, id, in)
	return args.Get(0).(tagResponse), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, owner, id uuid.UUID) error {
	return m.Called(ctx, owner, id).Error(0)
}

func setup(svc *MockService, userID uuid.UUID) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler(logger.Discard(), false))
	g := r.Group("/tags", func(c *gin.Context) {
		if userID != uuid.Nil {
			c.Set("user_id", userID.String())
		}
	})
	NewHandler[tagInput, tagResponse, createTagRequest, updateTagRequest](svc, "tag", "tags").Register(g)
	return r
}

type envelope struct {
	Success    bool            `json:"success"`
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Errors     []string        `json:"errors"`
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (int, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w.Code, env
}

func TestCreate(t *testing.T) {
	svc := new(MockService)
	owner := uuid.New()
	created := tagResponse{ID: uuid.New(), Name: "go"}
	svc.On("Create", mock.Anything, owner, tagInput{Name: "go"}).Return(created, nil)

	code, env := do(t, setup(svc, owner), http.MethodPost, "/tags", `{"name":"go"}`)

	assert.Equal(t, http.StatusCreated, code)
	assert.True(t, env.Success)
	assert.Equal(t, "tag created successfully", env.Message)
	var got tagResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, created, got)
	svc.AssertExpectations(t)
}

func TestCreateValidation(t *testing.T) {
	svc := new(MockService)
	r := setup(svc, uuid.New())

	code, env := do(t, r, http.MethodPost, "/tags", `{"name":"far too long for a tag"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Errors)
	assert.Empty(t, env.Data)

	code, _ = do(t, r, http.MethodPost, "/tags", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, code)

	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestUnauthenticated(t *testing.T) {
	svc := new(MockService)
	code, env := do(t, setup(svc, uuid.Nil), http.MethodGet, "/tags", "")

	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, 401, env.StatusCode)
	svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestGetNotFoundAndBadID(t *testing.T) {
	svc := new(MockService)
	owner := uuid.New()
	id := uuid.New()
	svc.On("GetByID", mock.Anything, owner, id).Return(tagResponse{}, apperror.NotFound("tag not found"))
	r := setup(svc, owner)

	code, env := do(t, r, http.MethodGet, "/tags/"+id.String(), "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "tag not found", env.Message)

	code, _ = do(t, r, http.MethodGet, "/tags/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestListUpdateDelete(t *testing.T) {
	svc := new(MockService)
	owner := uuid.New()
	id := uuid.New()
	svc.On("List", mock.Anything, owner).Return([]tagResponse{{ID: id, Name: "go"}}, nil)
	svc.On("Update", mock.Anything, owner, id, tagInput{Name: "golang"}).Return(tagResponse{ID: id, Name: "golang"}, nil)
	svc.On("Delete", mock.Anything, owner, id).Return(nil)
	r := setup(svc, owner)

	code, env := do(t, r, http.MethodGet, "/tags", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "tags retrieved successfully", env.Message)

	code, _ = do(t, r, http.MethodPut, "/tags/"+id.String(), `{"name":"golang"}`)
	assert.Equal(t, http.StatusOK, code)

	code, env = do(t, r, http.MethodDelete, "/tags/"+id.String(), "")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)

	svc.AssertExpectations(t)
}
