package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/enotkrutoy/CyberSearch/internal/domain"
	"github.com/enotkrutoy/CyberSearch/internal/domain/vector"
	logpkg "github.com/enotkrutoy/CyberSearch/internal/logger"
	"github.com/enotkrutoy/CyberSearch/internal/usecase/generate"
	"github.com/enotkrutoy/CyberSearch/internal/version"
)

// ErrorCode classifies API errors.
type ErrorCode string

// API error codes.
const (
	ErrorCodeBadRequest    ErrorCode = "bad_request"
	ErrorCodeEmptyTerm     ErrorCode = "empty_term"
	ErrorCodeInternalError ErrorCode = "internal_error"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// GenerateVectorsRequest is the POST /api/v1/vectors body. Zero-valued
// parameters fall back to the server's configured profile.
type GenerateVectorsRequest struct {
	Term    string `json:"term"`
	Vectors int    `json:"vectors,omitempty"`
	Density int    `json:"density,omitempty"`
	Page    int    `json:"page,omitempty"`
}

// VectorItem is one generated vector.
type VectorItem struct {
	Index      int    `json:"index"`
	URL        string `json:"url"`
	Iterations int    `json:"iterations"`
}

// DiagnosticItem is one advisory notice.
type DiagnosticItem struct {
	Kind string    `json:"kind"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// ParamsItem echoes the effective generation parameters after clamping.
type ParamsItem struct {
	Vectors int `json:"vectors"`
	Density int `json:"density"`
	Page    int `json:"page"`
}

// GenerateVectorsResponse is the POST /api/v1/vectors response.
type GenerateVectorsResponse struct {
	ID          string           `json:"id"`
	Term        string           `json:"term"`
	Params      ParamsItem       `json:"params"`
	Vectors     []VectorItem     `json:"vectors"`
	Diagnostics []DiagnosticItem `json:"diagnostics,omitempty"`
}

// HealthResponse is the GET /health response.
type HealthResponse struct {
	Status string `json:"status"`
}

// VersionResponse is the GET /version response.
type VersionResponse struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes vector generation over HTTP.
type Server struct {
	generator     generate.Generator
	defaults      vector.Params
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. defaults supplies the generation
// parameters used when a request leaves them zero.
func NewServer(generator generate.Generator, defaults vector.Params, logger *zap.Logger) *Server {
	s := &Server{
		generator: generator,
		defaults:  defaults,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrEmptyTerm, http.StatusBadRequest, ErrorCodeEmptyTerm),
	}
	return s
}

// Routes mounts all API routes on the router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/api/v1/vectors", s.GenerateVectors)
	r.Get("/health", s.HealthCheck)
	r.Get("/version", s.Version)
	r.Get("/metrics", s.Metrics)
}

// GenerateVectors handles POST /api/v1/vectors.
func (s *Server) GenerateVectors(w http.ResponseWriter, r *http.Request) {
	var req GenerateVectorsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Request-scoped logger carries request_id when the wide-event
		// middleware is installed.
		logpkg.FromContext(r.Context()).Warn("malformed request body", zap.Error(err))
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	vectors := req.Vectors
	if vectors == 0 {
		vectors = s.defaults.Vectors()
	}
	density := req.Density
	if density == 0 {
		density = s.defaults.Density()
	}
	page := req.Page
	if page == 0 {
		page = s.defaults.Page()
	}

	res, err := s.generator.Generate(r.Context(), req.Term, vector.NewParams(vectors, density, page))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resultToResponse(res))
}

// HealthCheck handles GET /health. The core performs no I/O, so there
// are no component checks to aggregate.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Version handles GET /version.
func (s *Server) Version(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, VersionResponse{
		Version: version.Version,
		Commit:  version.Commit,
		Date:    version.Date,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func resultToResponse(res generate.Result) GenerateVectorsResponse {
	items := make([]VectorItem, len(res.Vectors))
	for i, v := range res.Vectors {
		items[i] = VectorItem{
			Index:      v.Index(),
			URL:        v.URL(),
			Iterations: v.Iterations(),
		}
	}

	var diags []DiagnosticItem
	for _, d := range res.Diagnostics {
		diags = append(diags, DiagnosticItem{
			Kind: string(d.Kind()),
			Text: d.Text(),
			At:   d.At().UTC(),
		})
	}

	return GenerateVectorsResponse{
		ID:   res.ID,
		Term: res.Term,
		Params: ParamsItem{
			Vectors: res.Params.Vectors(),
			Density: res.Params.Density(),
			Page:    res.Params.Page(),
		},
		Vectors:     items,
		Diagnostics: diags,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrEmptyTerm,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
