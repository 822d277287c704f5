package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"secinstall/internal/services"
)

func TestRespondServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("inquiry %w", services.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("lead %w", services.ErrAlreadyConverted), http.StatusConflict},
		{fmt.Errorf("%w: invoice already paid", services.ErrConflict), http.StatusConflict},
		{fmt.Errorf("%w: client_id or lead_id is required", services.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("something broke"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		respondServiceError(c, tc.err)
		assert.Equal(t, tc.want, w.Code, tc.err.Error())
	}
}

func TestPagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/leads?page=3&size=20", nil)
	limit, offset := pagination(c)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 40, offset)

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/leads?page=0&size=-5", nil)
	limit, offset = pagination(c)
	assert.Equal(t, 100, limit)
	assert.Equal(t, 0, offset)
}

func TestPathID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "id", Value: "12"}}
	id, ok := pathID(c, "id")
	assert.True(t, ok)
	assert.Equal(t, 12, id)

	w := httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	_, ok = pathID(c, "id")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
