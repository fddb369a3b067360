package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/vigcrack/analysis"
	"github.com/katalvlaran/vigcrack/dictionary"
	"github.com/katalvlaran/vigcrack/internal/cache"
	"github.com/katalvlaran/vigcrack/internal/httpapi"
	"github.com/katalvlaran/vigcrack/internal/metrics"
	"github.com/katalvlaran/vigcrack/language"
)

// HandlerSuite exercises the HTTP surface against a real engine and an
// in-memory cache.
type HandlerSuite struct {
	suite.Suite
	router http.Handler
	store  *cache.Memory
}

func (s *HandlerSuite) SetupTest() {
	engine, err := analysis.New(language.Swedish())
	require.NoError(s.T(), err)

	reg := prometheus.NewRegistry()
	s.store = cache.NewMemory()
	h := httpapi.New(engine,
		httpapi.WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))),
		httpapi.WithMetrics(metrics.New(reg), reg),
		httpapi.WithCache(s.store, time.Minute),
		httpapi.WithKeyRange(2, 6),
		httpapi.WithVocabulary(dictionary.New([]string{"hej", "och", "att"})),
	)
	s.router = h.Router()
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) post(path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		require.NoError(s.T(), json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	return rec
}

func (s *HandlerSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var resp httpapi.ErrorResponse
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

// =============================================================================
// /v1/analyze
// =============================================================================

func (s *HandlerSuite) TestAnalyze_OKAndCached() {
	body := httpapi.AnalyzeRequest{Ciphertexts: []string{"abcdefghijklmnopq"}}

	rec := s.post("/v1/analyze", body)
	require.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(s.T(), "miss", rec.Header().Get("X-Cache"))
	assert.NotEmpty(s.T(), rec.Header().Get(httpapi.HeaderRequestID))

	var rep analysis.Report
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &rep))
	assert.True(s.T(), rep.Fallback)
	assert.GreaterOrEqual(s.T(), rep.KeyLength, 2)
	assert.LessOrEqual(s.T(), rep.KeyLength, 6)
	require.Len(s.T(), rep.Results, 1)
	assert.Equal(s.T(), 1, s.store.Len())

	again := s.post("/v1/analyze", body)
	require.Equal(s.T(), http.StatusOK, again.Code)
	assert.Equal(s.T(), "hit", again.Header().Get("X-Cache"))
	assert.JSONEq(s.T(), rec.Body.String(), again.Body.String())
}

func (s *HandlerSuite) TestAnalyze_Errors() {
	cases := []struct {
		name   string
		body   any
		status int
		code   string
	}{
		{"invalid json", "not valid json", http.StatusBadRequest, httpapi.CodeBadRequest},
		{"unknown field", `{"texts":["abc"]}`, http.StatusBadRequest, httpapi.CodeBadRequest},
		{"empty", httpapi.AnalyzeRequest{}, http.StatusBadRequest, httpapi.CodeEmptyInput},
		{"symbol", httpapi.AnalyzeRequest{Ciphertexts: []string{"abc1"}}, http.StatusBadRequest, httpapi.CodeInvalidSymbol},
		{"range", httpapi.AnalyzeRequest{Ciphertexts: []string{"abc"}, MinKey: 9, MaxKey: 3}, http.StatusBadRequest, httpapi.CodeInvalidRange},
		{"max above limit", httpapi.AnalyzeRequest{Ciphertexts: []string{"abc"}, MinKey: 2, MaxKey: 1 << 50}, http.StatusBadRequest, httpapi.CodeInvalidRange},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := s.post("/v1/analyze", tc.body)
			assert.Equal(s.T(), tc.status, rec.Code)
			assert.Equal(s.T(), tc.code, s.errorCode(rec))
		})
	}
	assert.Equal(s.T(), 0, s.store.Len(), "failures are never cached")
}

// =============================================================================
// /v1/dictionary
// =============================================================================

func (s *HandlerSuite) TestDictionary_OK() {
	rec := s.post("/v1/dictionary", httpapi.AnalyzeRequest{Ciphertexts: []string{"hejochatt"}, MinKey: 2, MaxKey: 3})
	require.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())

	var rep analysis.DictionaryReport
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &rep))
	assert.Len(s.T(), rep.Scores, 2)
}

func (s *HandlerSuite) TestDictionary_MaxAboveLimit() {
	rec := s.post("/v1/dictionary", httpapi.AnalyzeRequest{Ciphertexts: []string{"hejochatt"}, MinKey: 2, MaxKey: analysis.MaxKeyLength + 1})
	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
	assert.Equal(s.T(), httpapi.CodeInvalidRange, s.errorCode(rec))
	assert.Equal(s.T(), 0, s.store.Len())
}

func (s *HandlerSuite) TestAnalyze_MaxClampedToText() {
	rec := s.post("/v1/analyze", httpapi.AnalyzeRequest{Ciphertexts: []string{"hejochatt"}, MinKey: 2, MaxKey: analysis.MaxKeyLength})
	require.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())

	var rep analysis.Report
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &rep))
	assert.Equal(s.T(), 9, rep.MaxKey)
	assert.LessOrEqual(s.T(), rep.KeyLength, 9)
}

func (s *HandlerSuite) TestDictionary_NoVocabulary() {
	engine, err := analysis.New(language.Swedish())
	require.NoError(s.T(), err)
	router := httpapi.New(engine).Router()

	req := httptest.NewRequest(http.MethodPost, "/v1/dictionary", strings.NewReader(`{"ciphertexts":["abc"]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(s.T(), http.StatusServiceUnavailable, rec.Code)
	assert.Equal(s.T(), httpapi.CodeVocabularyUnavailable, s.errorCode(rec))
}

// =============================================================================
// /v1/encrypt, /v1/decrypt
// =============================================================================

func (s *HandlerSuite) TestEncryptDecrypt() {
	rec := s.post("/v1/encrypt", httpapi.EncryptRequest{Plaintext: "hejdå", Key: "nyckel"})
	require.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())
	var enc httpapi.TextResponse
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &enc))

	rec = s.post("/v1/decrypt", httpapi.DecryptRequest{Ciphertext: enc.Ciphertext, Key: "nyckel"})
	require.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())
	var dec httpapi.TextResponse
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &dec))
	assert.Equal(s.T(), "hejdå", dec.Plaintext)

	rec = s.post("/v1/decrypt", httpapi.DecryptRequest{Ciphertext: "abc", Key: ""})
	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
	assert.Equal(s.T(), httpapi.CodeBadRequest, s.errorCode(rec))

	rec = s.post("/v1/encrypt", httpapi.EncryptRequest{Plaintext: "ABC", Key: "a"})
	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
	assert.Equal(s.T(), httpapi.CodeInvalidSymbol, s.errorCode(rec))
}

// =============================================================================
// /healthz, /metrics, request IDs
// =============================================================================

func (s *HandlerSuite) TestHealthAndMetrics() {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(s.T(), http.StatusOK, rec.Code)

	s.post("/v1/analyze", httpapi.AnalyzeRequest{Ciphertexts: []string{"abcabc"}})

	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(s.T(), http.StatusOK, rec.Code)
	assert.Contains(s.T(), rec.Body.String(), "vigcrack_cache_lookups_total")
}

func (s *HandlerSuite) TestRequestIDIsEchoed() {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(httpapi.HeaderRequestID, "req-123")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	assert.Equal(s.T(), "req-123", rec.Header().Get(httpapi.HeaderRequestID))
}

type downStore struct{ cache.Store }

func (downStore) Ping(context.Context) error { return errors.New("connection refused") }

func TestHealth_CacheDown(t *testing.T) {
	engine, err := analysis.New(language.Swedish())
	require.NoError(t, err)
	router := httpapi.New(engine, httpapi.WithCache(downStore{cache.NewMemory()}, time.Minute)).Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGetRequestID_Empty(t *testing.T) {
	assert.Equal(t, "", httpapi.GetRequestID(context.Background()))
}
