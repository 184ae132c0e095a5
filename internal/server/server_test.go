package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"chat-relay/internal/handler"
	"chat-relay/internal/model"
)

type stubGenerator struct {
	text string
	err  error
}

func (s *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	return s.text, s.err
}

func newTestRouter(gen handler.Generator) http.Handler {
	return NewRouter(handler.NewHandler(gen))
}

func TestRouter_ChatRoundTrip(t *testing.T) {
	router := newTestRouter(&stubGenerator{text: "Hi there!"})

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message": "Hello"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Hi there!", resp.Response)
}

func TestRouter_ChatRejectsGet(t *testing.T) {
	router := newTestRouter(&stubGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/chat", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_CORSAllowsAnyOrigin(t *testing.T) {
	router := newTestRouter(&stubGenerator{})

	req := httptest.NewRequest(http.MethodOptions, "/chat", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_CORSHeaderOnActualRequest(t *testing.T) {
	router := newTestRouter(&stubGenerator{text: "Hi there!"})

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message": "Hello"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(&stubGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "OK", rec.Body.String())
}

func TestRouter_Metrics(t *testing.T) {
	router := newTestRouter(&stubGenerator{text: "Hi there!"})

	// Drive one chat request so the counters have something to report.
	chatReq := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message": "Hello"}`))
	chatReq.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(httptest.NewRecorder(), chatReq)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "chatrelay_http_requests_total")
	require.Contains(t, rec.Body.String(), "chatrelay_generations_total")
}
