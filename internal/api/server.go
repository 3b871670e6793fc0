// Package api provides the HTTP API for generating staircase layouts.
//
// The API exposes the same pipeline the CLI uses:
//
//	POST /api/v1/layouts                   generate a layout and render artifacts
//	GET  /api/v1/layouts/{hash}/artifact   fetch a cached artifact by layout hash
//	GET  /api/v1/presets                   list stored presets
//	GET  /api/v1/presets/{name}            fetch a preset
//	PUT  /api/v1/presets/{name}            store a preset
//	DELETE /api/v1/presets/{name}          delete a preset
//	GET  /healthz                          liveness probe
//
// Validation failures map to 400 with a machine-readable error code,
// missing resources to 404, everything else to 500.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/stairforge/pkg/buildinfo"
	"github.com/matzehuels/stairforge/pkg/errors"
	"github.com/matzehuels/stairforge/pkg/pipeline"
	"github.com/matzehuels/stairforge/pkg/preset"
	"github.com/matzehuels/stairforge/pkg/scene"
	"github.com/matzehuels/stairforge/pkg/stair"
)

// maxRequestBody bounds request payloads. Parameter sets are tiny; anything
// near this limit is abuse.
const maxRequestBody = 1 << 20

// Server hosts the HTTP API on top of a pipeline runner and a preset store.
type Server struct {
	runner  *pipeline.Runner
	presets preset.Store
	logger  *log.Logger
}

// NewServer creates a server. A nil preset store disables the preset routes.
func NewServer(runner *pipeline.Runner, presets preset.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, presets: presets, logger: logger}
}

// Router builds the chi router with all routes and middleware attached.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoverMiddleware)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/layouts", s.handleGenerate)
		r.Get("/layouts/{hash}/artifact", s.handleArtifact)

		if s.presets != nil {
			r.Get("/presets", s.handlePresetList)
			r.Get("/presets/{name}", s.handlePresetGet)
			r.Put("/presets/{name}", s.handlePresetPut)
			r.Delete("/presets/{name}", s.handlePresetDelete)
		}
	})

	return r
}

// =============================================================================
// Layout Handlers
// =============================================================================

// generateResponse is the POST /layouts payload. Artifacts are base64 in
// JSON per encoding/json []byte rules.
type generateResponse struct {
	LayoutHash string             `json:"layout_hash"`
	Layout     scene.Layout       `json:"layout"`
	Artifacts  map[string][]byte  `json:"artifacts"`
	Stats      pipeline.Stats     `json:"stats"`
	Cache      pipeline.CacheInfo `json:"cache"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	body := http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(body).Decode(&opts); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidParameter, err, "decode request body"))
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, generateResponse{
		LayoutHash: result.LayoutHash,
		Layout:     result.Layout,
		Artifacts:  result.Artifacts,
		Stats:      result.Stats,
		Cache:      result.CacheInfo,
	})
}

// artifactContentTypes maps formats to response content types.
var artifactContentTypes = map[string]string{
	pipeline.FormatSVG:     "image/svg+xml",
	pipeline.FormatOutline: "image/svg+xml",
	pipeline.FormatOBJ:     "text/plain; charset=utf-8",
	pipeline.FormatJSON:    "application/json",
	pipeline.FormatPDF:     "application/pdf",
	pipeline.FormatPNG:     "image/png",
}

func (s *Server) handleArtifact(w http.ResponseWriter, r *http.Request) {
	hash := chi.URLParam(r, "hash")

	opts := pipeline.Options{
		View:   r.URL.Query().Get("view"),
		Labels: r.URL.Query().Get("labels") == "true",
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	opts.Formats = []string{format}
	if err := opts.ValidateForRender(); err != nil {
		s.writeError(w, r, err)
		return
	}

	key := s.runner.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
	data, hit, err := s.runner.Cache.Get(r.Context(), key)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !hit {
		s.writeError(w, r, errors.New(errors.ErrCodeLayoutNotFound,
			"no cached %s artifact for layout %s", format, hash))
		return
	}

	w.Header().Set("Content-Type", artifactContentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// =============================================================================
// Preset Handlers
// =============================================================================

func (s *Server) handlePresetList(w http.ResponseWriter, r *http.Request) {
	presets, err := s.presets.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, presets)
}

func (s *Server) handlePresetGet(w http.ResponseWriter, r *http.Request) {
	p, err := s.presets.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

func (s *Server) handlePresetPut(w http.ResponseWriter, r *http.Request) {
	var params stair.Parameters
	body := http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(body).Decode(&params); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidParameter, err, "decode request body"))
		return
	}

	saved, err := s.presets.Put(r.Context(), preset.Preset{
		Name:   chi.URLParam(r, "name"),
		Params: params,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handlePresetDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.presets.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Health
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// =============================================================================
// Response Helpers
// =============================================================================

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	code := errors.GetCode(err)
	switch {
	case errors.IsValidation(err):
		status = http.StatusBadRequest
	case code == errors.ErrCodeNotFound,
		code == errors.ErrCodePresetNotFound,
		code == errors.ErrCodeLayoutNotFound,
		code == errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", requestIDFrom(r.Context()),
			"error", err)
	}

	var resp errorResponse
	resp.Error.Code = string(code)
	resp.Error.Message = errors.UserMessage(err)
	s.writeJSON(w, status, resp)
}
