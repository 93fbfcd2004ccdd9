package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/acmedash/seeder/internal/observability/metrics"
	"github.com/acmedash/seeder/internal/seed"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRunner struct {
	summary seed.Summary
	err     error
	calls   int
}

func (f *fakeRunner) Run(ctx context.Context) (seed.Summary, error) {
	f.calls++
	_ = ctx
	return f.summary, f.err
}

func newTestServer(t *testing.T, runner Runner) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := NewEngine(metrics.NewRegistry())
	srv := NewServer(engine, runner, zap.NewNop())
	srv.RegisterRoutes()
	return engine
}

func TestHandleSeedSuccess(t *testing.T) {
	runner := &fakeRunner{summary: seed.Summary{Users: 1, Customers: 6, Invoices: 13, Revenue: 12}}
	engine := newTestServer(t, runner)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/seed", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, runner.calls)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Counts  struct {
			Users     int `json:"users"`
			Customers int `json:"customers"`
			Invoices  int `json:"invoices"`
			Revenue   int `json:"revenue"`
		} `json:"counts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Message)
	assert.Equal(t, 1, body.Counts.Users)
	assert.Equal(t, 6, body.Counts.Customers)
	assert.Equal(t, 13, body.Counts.Invoices)
	assert.Equal(t, 12, body.Counts.Revenue)
}

func TestHandleSeedAcceptsGet(t *testing.T) {
	runner := &fakeRunner{}
	engine := newTestServer(t, runner)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/seed", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, runner.calls)
}

func TestHandleSeedFailure(t *testing.T) {
	runner := &fakeRunner{err: seed.ErrReferential(3, "missing-id")}
	engine := newTestServer(t, runner)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/seed", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body struct {
		Success    bool   `json:"success"`
		Error      string `json:"error"`
		Message    string `json:"message"`
		Suggestion string `json:"suggestion"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "referential_integrity", body.Error)
	assert.Contains(t, body.Message, "invoice 3")
	assert.Contains(t, body.Message, "missing-id")
	assert.NotEmpty(t, body.Suggestion)
}

func TestHandleSeedClassifiesUnknownErrors(t *testing.T) {
	runner := &fakeRunner{err: context.DeadlineExceeded}
	engine := newTestServer(t, runner)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/seed", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body seedFailureResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "unknown", body.Error)
}

func TestHealth(t *testing.T) {
	engine := newTestServer(t, &fakeRunner{})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
