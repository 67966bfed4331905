package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/aretw0/scalarguard/internal/document"
	"github.com/aretw0/scalarguard/pkg/scalar"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxBodyBytes bounds a /validate request body.
const maxBodyBytes = 1 << 20

// Server exposes a Validator over HTTP.
type Server struct {
	Validator *scalar.Validator
	Logger    *slog.Logger
}

// FailureResponse is one failed key in a ValidateResponse.
type FailureResponse struct {
	Key      string `json:"key"`
	Expected string `json:"expected"`
	Given    string `json:"given"`
	Message  string `json:"message"`
}

// ValidateResponse is the body of a successful POST /validate.
type ValidateResponse struct {
	Valid    bool              `json:"valid"`
	Failures []FailureResponse `json:"failures"`
}

// KindResponse describes one recognized kind in GET /kinds.
type KindResponse struct {
	Kind    string   `json:"kind"`
	Aliases []string `json:"aliases"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewHandler creates the HTTP handler. A nil gatherer disables /metrics.
func NewHandler(v *scalar.Validator, gatherer prometheus.Gatherer, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{Validator: v, Logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.Health)
	r.Get("/kinds", s.Kinds)
	r.Post("/validate", s.Validate)
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Kinds handles GET /kinds.
func (s *Server) Kinds(w http.ResponseWriter, r *http.Request) {
	kinds := scalar.Kinds()
	resp := make([]KindResponse, len(kinds))
	for i, k := range kinds {
		resp[i] = KindResponse{Kind: k.String(), Aliases: k.Aliases()}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Validate handles POST /validate. The body is a check document in JSON (or
// YAML). The call always runs in report-only mode, so data failures come back
// in a 200 body; only malformed documents and specs yield 400.
func (s *Server) Validate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "failed to read request body"})
		return
	}

	doc, err := document.Parse(body)
	if err != nil {
		s.Logger.Warn("Validate: invalid request body", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	opts := scalar.MergeDefaults(doc.Options, s.Validator.Defaults())
	opts.ReportOnly = true
	if opts.Site == "" {
		opts.Site = r.URL.Path
	}

	res, err := s.Validator.Inspect(doc.Values, doc.Types, opts.Overrides())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	resp := ValidateResponse{Valid: res.OK(), Failures: make([]FailureResponse, 0, len(res.Failures))}
	for _, f := range res.Failures {
		resp.Failures = append(resp.Failures, FailureResponse{
			Key:      f.Key.Label(),
			Expected: f.Tag,
			Given:    f.Given,
			Message:  (&scalar.ValidationError{Failure: f}).Error(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
