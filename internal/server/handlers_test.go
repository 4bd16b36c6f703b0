package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/prosport1/ProSport/internal/domain"
	"github.com/prosport1/ProSport/internal/generator"
	"github.com/prosport1/ProSport/internal/storage"
	"github.com/prosport1/ProSport/internal/validation"
)

func newTestHandlers(t *testing.T) *handlers {
	t.Helper()

	v, err := validation.New()
	require.NoError(t, err)

	orch := generator.New(generator.Options{
		Store:    storage.NewMemoryStore(),
		Variants: func() int { return 1 },
		Logger:   zap.NewNop(),
	})

	return &handlers{
		orchestrator: orch,
		validator:    v,
		logger:       zap.NewNop(),
	}
}

func postJSON(t *testing.T, h http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/landing/generate", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestGenerateHandlerSuccess(t *testing.T) {
	h := newTestHandlers(t)

	rec := postJSON(t, h.generate, domain.AthleteProfile{
		Tier:            domain.TierBasic,
		Sport:           "Jiu-Jitsu",
		Name:            "Ana Silva",
		BirthDate:       "1998-03-12",
		Grade:           "Black belt",
		Team:            "Alliance",
		Titles:          "World champion 2023",
		Contact:         "5521999998888",
		PrimaryImageURL: "https://cdn.example.com/ana.jpg",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var result domain.GenerationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.OK)
	assert.True(t, result.UsedFallback)
	assert.Equal(t, domain.TierBasic, result.Tier)
	assert.Contains(t, result.URL, "landingpages/basic/")
}

func TestGenerateHandlerValidationFailure(t *testing.T) {
	h := newTestHandlers(t)

	rec := postJSON(t, h.generate, domain.AthleteProfile{
		Tier:  domain.TierBasic,
		Sport: "Jiu-Jitsu",
		// name and contact deliberately missing, image URL malformed
		BirthDate:       "1998-03-12",
		Grade:           "Black belt",
		Team:            "Alliance",
		Titles:          "World champion 2023",
		PrimaryImageURL: "not-a-url",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation failed", resp.Error)
	assert.Contains(t, resp.Fields, "name")
	assert.Contains(t, resp.Fields, "contact")
	assert.Contains(t, resp.Fields, "primaryImageUrl")
}

func TestGenerateHandlerMalformedBody(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodPost, "/api/landing/generate", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.generate(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "malformed JSON body", resp.Error)
}

func TestRecentHandlerWithoutRepository(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/api/landing/recent", nil)
	rec := httptest.NewRecorder()
	h.recent(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(context.Context) error {
	return f.err
}

func TestHealthHandler(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.health(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHealthHandlerChecksDatabase(t *testing.T) {
	h := newTestHandlers(t)
	h.database = &fakePinger{}

	rec := httptest.NewRecorder()
	h.health(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	h.database = &fakePinger{err: errors.New("connection refused")}
	rec = httptest.NewRecorder()
	h.health(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"degraded"}`, rec.Body.String())
}

func TestRouterWiring(t *testing.T) {
	v, err := validation.New()
	require.NoError(t, err)

	srv := New(Options{
		Addr: ":0",
		Orchestrator: generator.New(generator.Options{
			Store:    storage.NewMemoryStore(),
			Variants: func() int { return 1 },
			Logger:   zap.NewNop(),
		}),
		Validator: v,
		Logger:    zap.NewNop(),
	})

	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/landing/generate", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
