package validator

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"anoa.com/portfoliocms/pkg/apperror"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactForm struct {
	SenderEmail string `json:"senderEmail" validate:"required,email"`
	Description string `json:"description" validate:"required,min=10"`
	Rating      int    `json:"rating" validate:"gte=1,lte=5"`
}

func TestBindingErrorFromValidation(t *testing.T) {
	v := validator.New()
	UseTagNames(v)

	err := v.Struct(contactForm{SenderEmail: "nope", Description: "short", Rating: 9})
	require.Error(t, err)

	converted := BindingError(err)
	appErr, ok := apperror.As(converted)
	require.True(t, ok)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Equal(t, []string{
		"senderEmail must be a valid email address",
		"description must be at least 10 characters",
		"rating must be less than or equal to 5",
	}, appErr.Details)
}

func TestBindingErrorFromMalformedJSON(t *testing.T) {
	var form contactForm
	err := json.NewDecoder(strings.NewReader("{bad")).Decode(&form)
	require.Error(t, err)

	assert.Equal(t, apperror.KindValidation, apperror.KindOf(BindingError(err)))
}

type trimmedForm struct {
	Name        string `json:"name" binding:"required,max=10"`
	Description string `json:"description" binding:"required,min=10"`
}

func (f *trimmedForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
}

func TestBindJSONNormalizesBeforeValidating(t *testing.T) {
	gin.SetMode(gin.TestMode)
	RegisterJSONTagNames()

	bind := func(body string) (trimmedForm, error) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		var form trimmedForm
		err := BindJSON(c, &form)
		return form, err
	}

	_, err := bind(`{"name":"   ","description":"         a"}`)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"name is required", "description must be at least 10 characters"}, appErr.Details)

	form, err := bind(`{"name":"  Grace   ","description":"  a long enough text  "}`)
	require.NoError(t, err)
	assert.Equal(t, "Grace", form.Name)
	assert.Equal(t, "a long enough text", form.Description)

	_, err = bind(``)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}
