// Package httpapi serves the analysis engine over HTTP.
package httpapi

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/vigcrack/analysis"
	"github.com/katalvlaran/vigcrack/dictionary"
	"github.com/katalvlaran/vigcrack/internal/cache"
	"github.com/katalvlaran/vigcrack/internal/logger"
	"github.com/katalvlaran/vigcrack/internal/metrics"
	"github.com/katalvlaran/vigcrack/vigenere"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 8 << 20

// Cache modes, used as cache key prefixes.
const (
	modeAnalyze    = "analyze"
	modeDictionary = "dictionary"
)

// AnalyzeRequest is the body of POST /v1/analyze and /v1/dictionary.
// Zero key bounds select the server defaults.
type AnalyzeRequest struct {
	Ciphertexts []string `json:"ciphertexts"`
	MinKey      int      `json:"min_key"`
	MaxKey      int      `json:"max_key"`
}

// DecryptRequest is the body of POST /v1/decrypt.
type DecryptRequest struct {
	Ciphertext string `json:"ciphertext"`
	Key        string `json:"key"`
}

// EncryptRequest is the body of POST /v1/encrypt.
type EncryptRequest struct {
	Plaintext string `json:"plaintext"`
	Key       string `json:"key"`
}

// TextResponse carries the result of /v1/encrypt and /v1/decrypt.
type TextResponse struct {
	Ciphertext string `json:"ciphertext,omitempty"`
	Plaintext  string `json:"plaintext,omitempty"`
}

// Handler wires the engine to HTTP endpoints.
type Handler struct {
	engine   *analysis.Engine
	vocab    *dictionary.Vocabulary
	store    cache.Store
	ttl      time.Duration
	minKey   int
	maxKey   int
	logger   *slog.Logger
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
}

// Option configures a Handler.
type Option func(*Handler)

// WithVocabulary enables the dictionary endpoint.
func WithVocabulary(v *dictionary.Vocabulary) Option {
	return func(h *Handler) { h.vocab = v }
}

// WithCache sets the report cache and entry lifetime.
func WithCache(s cache.Store, ttl time.Duration) Option {
	return func(h *Handler) {
		if s != nil {
			h.store = s
		}
		h.ttl = ttl
	}
}

// WithKeyRange sets the range used when a request leaves it out.
func WithKeyRange(min, max int) Option {
	return func(h *Handler) { h.minKey, h.maxKey = min, max }
}

// WithLogger sets the handler logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithMetrics attaches instruments and the gatherer served on /metrics.
func WithMetrics(m *metrics.Metrics, g prometheus.Gatherer) Option {
	return func(h *Handler) {
		h.metrics = m
		if g != nil {
			h.gatherer = g
		}
	}
}

// New constructs a handler around engine.
func New(engine *analysis.Engine, opts ...Option) *Handler {
	h := &Handler{
		engine:   engine,
		store:    cache.NewMemory(),
		ttl:      10 * time.Minute,
		minKey:   25,
		maxKey:   250,
		logger:   logger.Discard(),
		gatherer: prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}

	return h
}

// Register mounts the /v1 endpoints on r.
func (h *Handler) Register(r chi.Router) {
	r.Post("/analyze", h.HandleAnalyze)
	r.Post("/dictionary", h.HandleDictionary)
	r.Post("/decrypt", h.HandleDecrypt)
	r.Post("/encrypt", h.HandleEncrypt)
}

// Router returns the full route tree: /v1/*, /healthz and /metrics.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(chimw.Recoverer)
	r.Get("/healthz", h.HandleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	r.Route("/v1", h.Register)

	return r
}

// NewServer builds an HTTP server with sane defaults for this project.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func decode[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var req T
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeBadRequest(w, fmt.Sprintf("invalid request body: %v", err))
		return req, false
	}

	return req, true
}

// keyRange fills in the default bounds and rejects a max above
// analysis.MaxKeyLength.
func (h *Handler) keyRange(req AnalyzeRequest) (int, int, error) {
	min, max := req.MinKey, req.MaxKey
	if min == 0 {
		min = h.minKey
	}
	if max == 0 {
		max = h.maxKey
	}
	if max > analysis.MaxKeyLength {
		return 0, 0, fmt.Errorf("httpapi: max_key %d above limit %d: %w", max, analysis.MaxKeyLength, analysis.ErrInvalidRange)
	}

	return min, max, nil
}

// cached serves a stored report for key, or computes, stores and serves one.
func (h *Handler) cached(w http.ResponseWriter, r *http.Request, key string, compute func() (any, error)) {
	ctx := r.Context()
	requestID := GetRequestID(ctx)

	body, hit, err := h.store.Get(ctx, key)
	switch {
	case err != nil:
		h.metrics.IncrementCache("error")
		h.logger.WarnContext(ctx, "cache lookup failed", "request_id", requestID, "error", err)
	case hit:
		h.metrics.IncrementCache("hit")
		w.Header().Set("X-Cache", "hit")
		writeRaw(w, http.StatusOK, body)
		return
	default:
		h.metrics.IncrementCache("miss")
	}

	rep, err := compute()
	if err != nil {
		status, code := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.ErrorContext(ctx, "analysis failed", "request_id", requestID, "error", err)
		} else {
			h.logger.InfoContext(ctx, "analysis rejected", "request_id", requestID, "code", code, "error", err)
		}
		writeError(w, err)
		return
	}
	body, err = json.Marshal(rep)
	if err != nil {
		h.logger.ErrorContext(ctx, "encode report", "request_id", requestID, "error", err)
		writeError(w, err)
		return
	}
	if err := h.store.Set(ctx, key, body, h.ttl); err != nil {
		h.logger.WarnContext(ctx, "cache store failed", "request_id", requestID, "error", err)
	}
	w.Header().Set("X-Cache", "miss")
	writeRaw(w, http.StatusOK, body)
}

// HandleAnalyze handles POST /v1/analyze requests.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[AnalyzeRequest](w, r)
	if !ok {
		return
	}
	min, max, err := h.keyRange(req)
	if err != nil {
		writeError(w, err)
		return
	}
	key := cache.Key(modeAnalyze, min, max, req.Ciphertexts)
	h.cached(w, r, key, func() (any, error) {
		return h.engine.Analyze(r.Context(), req.Ciphertexts, min, max)
	})
}

// HandleDictionary handles POST /v1/dictionary requests.
func (h *Handler) HandleDictionary(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[AnalyzeRequest](w, r)
	if !ok {
		return
	}
	if err := h.vocab.Available(); err != nil {
		writeError(w, err)
		return
	}
	min, max, err := h.keyRange(req)
	if err != nil {
		writeError(w, err)
		return
	}
	key := cache.Key(modeDictionary, min, max, req.Ciphertexts)
	h.cached(w, r, key, func() (any, error) {
		return h.engine.AnalyzeDictionary(r.Context(), req.Ciphertexts, min, max, h.vocab)
	})
}

// HandleDecrypt handles POST /v1/decrypt requests.
func (h *Handler) HandleDecrypt(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[DecryptRequest](w, r)
	if !ok {
		return
	}
	plain, err := vigenere.Decrypt(h.engine.Model().Alphabet(), req.Ciphertext, req.Key)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, TextResponse{Plaintext: plain})
}

// HandleEncrypt handles POST /v1/encrypt requests.
func (h *Handler) HandleEncrypt(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[EncryptRequest](w, r)
	if !ok {
		return
	}
	cipher, err := vigenere.Encrypt(h.engine.Model().Alphabet(), req.Plaintext, req.Key)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, TextResponse{Ciphertext: cipher})
}

// HandleHealth handles GET /healthz; it fails when the cache is unreachable.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		h.logger.WarnContext(r.Context(), "health check failed", "request_id", GetRequestID(r.Context()), "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
