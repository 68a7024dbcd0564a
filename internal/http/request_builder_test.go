package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Name     string `json:"name" binding:"required"`
	Quantity int64  `json:"quantity"`
}

type validatedPayload struct {
	Quantity int64 `json:"quantity"`
}

func (p *validatedPayload) Validate() error {
	if p.Quantity <= 0 {
		return errors.New("quantity must be positive")
	}
	return nil
}

func newBuilderContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestResponseBuilder_Success(t *testing.T) {
	c, w := newBuilderContext("")

	NewResponseBuilder(c).SuccessOK(map[string]string{"note": "No note"})

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "No note", data["note"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestResponseBuilder_SuccessCreated(t *testing.T) {
	c, w := newBuilderContext("")

	NewResponseBuilder(c).SuccessCreated(gin.H{"id": "abc"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"abc"`)
}

func TestResponseBuilder_ErrorWithMessage(t *testing.T) {
	c, w := newBuilderContext("")

	NewResponseBuilder(c).ErrorWithMessage(http.StatusUnprocessableEntity, "at least one ingredient", errors.New("boom"))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "unprocessable", body["error"])
	assert.Equal(t, "at least one ingredient", body["message"])
	assert.True(t, c.IsAborted())
	require.Len(t, c.Errors, 1)
}

func TestBuildRequest(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		c, _ := newBuilderContext(`{"name":"Baguette","quantity":2}`)

		req, err := BuildRequest[testPayload](c)
		require.NoError(t, err)
		assert.Equal(t, "Baguette", req.Name)
		assert.Equal(t, int64(2), req.Quantity)
	})

	t.Run("malformed body", func(t *testing.T) {
		c, _ := newBuilderContext(`{"name":`)

		_, err := BuildRequest[testPayload](c)
		assert.Error(t, err)
	})

	t.Run("missing required field", func(t *testing.T) {
		c, _ := newBuilderContext(`{"quantity":2}`)

		_, err := BuildRequest[testPayload](c)
		assert.Error(t, err)
	})
}

func TestBuildRequestAndValidate(t *testing.T) {
	t.Run("passes validation", func(t *testing.T) {
		c, _ := newBuilderContext(`{"quantity":3}`)

		req, err := BuildRequestAndValidate[validatedPayload](c)
		require.NoError(t, err)
		assert.Equal(t, int64(3), req.Quantity)
	})

	t.Run("fails validation", func(t *testing.T) {
		c, _ := newBuilderContext(`{"quantity":0}`)

		_, err := BuildRequestAndValidate[validatedPayload](c)
		assert.EqualError(t, err, "quantity must be positive")
	})
}
