package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"gridbayes/app"
	"gridbayes/domain/core"
	"gridbayes/domain/inference"
	"gridbayes/internal"
	"gridbayes/ports"
)

// Server exposes run execution over a JSON API
type Server struct {
	router   *chi.Mux
	service  *app.InferenceService
	exporter ports.WorkbookExporterPort
	logger   *internal.Logger
}

// NewServer creates the API server and wires its routes
func NewServer(service *app.InferenceService, exporter ports.WorkbookExporterPort) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		service:  service,
		exporter: exporter,
		logger:   internal.DefaultLogger,
	}

	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures HTTP middleware
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.Get("/api/health", s.handleHealth)
	s.router.Post("/api/runs", s.handleCreateRun)
}

// Router returns the http.Handler for mounting or serving
func (s *Server) Router() http.Handler {
	return s.router
}

// Start runs the HTTP server on the given port
func (s *Server) Start(port string) error {
	addr := fmt.Sprintf(":%s", port)
	s.logger.Info("API server listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// runRequest is the JSON body of POST /api/runs: the run configuration plus
// an optional workbook export destination.
type runRequest struct {
	inference.RunConfig
	ExportPath string `json:"export_path,omitempty"`
}

func (s *Server) handleCreateRun(w http.ResponseWriter, r *http.Request) {
	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "MALFORMED_REQUEST", err)
		return
	}

	result, err := s.service.Run(r.Context(), req.RunConfig)
	if err != nil {
		status, kind := classifyRunError(err)
		s.logger.Warn("run rejected: %v", err)
		writeError(w, status, kind, err)
		return
	}

	if req.ExportPath != "" {
		if err := s.exporter.Export(r.Context(), result, req.ExportPath); err != nil {
			s.logger.Error("workbook export failed: %v", err)
			writeError(w, http.StatusInternalServerError, "EXPORT_FAILED", err)
			return
		}
	}

	writeJSON(w, http.StatusOK, result)
}

// classifyRunError maps domain error kinds onto HTTP statuses: bad
// configuration and caller-assembly mistakes are 400s, a degenerate
// normalization is a well-formed request the math cannot satisfy (422).
func classifyRunError(err error) (int, string) {
	switch {
	case core.IsInvalidParameter(err):
		return http.StatusBadRequest, "INVALID_PARAMETER"
	case core.IsDimensionMismatch(err):
		return http.StatusBadRequest, "DIMENSION_MISMATCH"
	case core.IsDegenerateNormalization(err):
		return http.StatusUnprocessableEntity, "DEGENERATE_NORMALIZATION"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, kind string, err error) {
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	writeJSON(w, status, map[string]string{"error": kind, "detail": detail})
}
