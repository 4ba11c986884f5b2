package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeController(t *testing.T) {
	t.Run("index", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewHomeController(testLogger, fakePinger{}).Index(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rr.Code)
		env := decode[HomeResponse](t, rr)
		assert.Equal(t, "/venues", env.Data.Links["venues"])
	})

	t.Run("healthz ok", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewHomeController(testLogger, fakePinger{}).Healthz(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		require.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("healthz down", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewHomeController(testLogger, fakePinger{err: errors.New("refused")}).Healthz(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewHomeController(testLogger, fakePinger{}).NotFound(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "not_found", decode[any](t, rr).Error.Code)
	})
}
