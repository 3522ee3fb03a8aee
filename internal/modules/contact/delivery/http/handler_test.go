package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"anoa.com/portfoliocms/internal/entity"
	"anoa.com/portfoliocms/internal/middleware"
	"anoa.com/portfoliocms/internal/modules/contact/repository"
	contact "anoa.com/portfoliocms/internal/modules/contact/service"
	profileRepo "anoa.com/portfoliocms/internal/modules/profile/repository"
	userRepo "anoa.com/portfoliocms/internal/modules/user/repository"
	"anoa.com/portfoliocms/internal/testutil"
	"anoa.com/portfoliocms/pkg/logger"
	"anoa.com/portfoliocms/pkg/ratelimiter"
	"anoa.com/portfoliocms/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessageValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	validator.RegisterJSONTagNames()

	db := testutil.NewDB(t, &entity.Role{}, &entity.User{}, &entity.UserProfile{}, &entity.ContactMessage{})
	owner := &entity.User{Username: "ada", Email: "ada@example.com", PasswordHash: "x"}
	require.NoError(t, db.Omit("Role", "Profile").Create(owner).Error)
	require.NoError(t, db.Create(&entity.UserProfile{UserID: owner.ID, FullName: "Ada", Status: entity.StatusEmployed, IsPublic: true}).Error)

	svc := contact.NewContactService(
		repository.NewContactMessageRepository(db),
		profileRepo.NewProfileRepository(db),
		userRepo.NewUserRepository(db),
		nil,
		nil,
		ratelimiter.New(nil, "rate_limit"),
		nil,
		contact.Options{},
		logger.Discard(),
	)
	h := NewContactHandler(svc, nil, nil, logger.Discard())

	r := gin.New()
	r.Use(middleware.ErrorHandler(logger.Discard(), false))
	r.POST("/portfolio/:username/contact", h.SendMessage)

	post := func(username, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/portfolio/"+username+"/contact", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := post("ada", `{"senderName":"Grace","senderEmail":"grace@example.com","subject":"Hi","description":"short"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "description must be at least 10 characters")

	var count int64
	require.NoError(t, db.Model(&entity.ContactMessage{}).Count(&count).Error)
	assert.Zero(t, count)

	w = post("ada", `{"senderName":"Grace","senderEmail":"not-an-email","subject":"Hi","description":"long enough message"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "senderEmail must be a valid email address")

	w = post("ada", `{"senderName":"   ","senderEmail":"grace@example.com","subject":"   ","description":"         a"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "senderName is required")
	assert.Contains(t, w.Body.String(), "subject is required")
	assert.Contains(t, w.Body.String(), "description must be at least 10 characters")

	require.NoError(t, db.Model(&entity.ContactMessage{}).Count(&count).Error)
	assert.Zero(t, count)

	w = post("ghost", `{"senderName":"Grace","senderEmail":"grace@example.com","subject":"Hi","description":"long enough message"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = post("ada", `{"senderName":"  Grace  ","senderEmail":" grace@example.com ","subject":" Hi ","description":"  long enough message  "}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	var stored entity.ContactMessage
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, "Grace", stored.SenderName)
	assert.Equal(t, "grace@example.com", stored.SenderEmail)
	assert.Equal(t, "Hi", stored.Subject)
	assert.Equal(t, "long enough message", stored.Description)

	w = post("ada", ``)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebSocketWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewContactHandler(nil, nil, nil, logger.Discard())
	r := gin.New()
	r.Use(middleware.ErrorHandler(logger.Discard(), false))
	r.GET("/ws", func(c *gin.Context) { c.Set("user_id", "0190a1b2-0000-7000-8000-000000000001") }, h.HandleWebSocket)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
