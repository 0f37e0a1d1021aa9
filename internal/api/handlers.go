package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/JustBeyond/packedbubble/pkg/buildinfo"
	"github.com/JustBeyond/packedbubble/pkg/cache"
	"github.com/JustBeyond/packedbubble/pkg/chart"
	"github.com/JustBeyond/packedbubble/pkg/errors"
	"github.com/JustBeyond/packedbubble/pkg/pipeline"
	"github.com/JustBeyond/packedbubble/pkg/store"
)

// chartRequest is the body for POST /v1/charts and POST /v1/layout.
// Options carries the layout knobs (width, height, min_size, ...); input
// references inside it are ignored, the inline dataset always wins.
type chartRequest struct {
	Title   string           `json:"title,omitempty"`
	Dataset chart.Dataset    `json:"dataset"`
	Options pipeline.Options `json:"options"`
}

// listResponse is the body for GET /v1/charts.
type listResponse struct {
	Charts []*store.Chart `json:"charts"`
	Count  int            `json:"count"`
}

// errorResponse is the body for every error status.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleCreateChart(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeChartRequest(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	opts := s.layoutOptions(req)
	d, err := pipeline.Load(ctx, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	l, err := s.runner.GenerateLayout(ctx, d, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	title := req.Title
	if title == "" {
		title = d.Title
	}
	c := store.NewChart(title, d, l)
	if err := s.store.SaveChart(ctx, c); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/v1/charts/"+c.ID)
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeChartRequest(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	opts := s.layoutOptions(req)
	d, err := pipeline.Load(ctx, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	l, err := s.runner.GenerateLayout(ctx, d, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) handleGetChart(w http.ResponseWriter, r *http.Request) {
	c, err := s.store.GetChart(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleListCharts(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid limit %q", v))
			return
		}
		limit = n
	}

	charts, err := s.store.ListCharts(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Charts: charts, Count: len(charts)})
}

func (s *Server) handleDeleteChart(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteChart(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleChartSVG(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c, err := s.store.GetChart(ctx, chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	q := r.URL.Query()
	opts := pipeline.Options{
		Format:     chart.FormatSVG,
		Style:      q.Get("style"),
		NoLabels:   q.Has("no_labels"),
		Background: q.Get("background"),
	}
	artifact, err := s.runner.Render(ctx, c.Layout, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	etag := `"` + cache.Hash(artifact)[:16] + `"`
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact)
}

// decodeChartRequest parses the shared create/layout body. A false return
// means the error response was already written.
func (s *Server) decodeChartRequest(w http.ResponseWriter, r *http.Request) (chartRequest, bool) {
	var req chartRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return chartRequest{}, false
	}
	return req, true
}

// layoutOptions binds the request's dataset into its options. Input
// references and render settings from the body are dropped: the API only
// computes layouts here, rendering happens on the svg endpoint.
func (s *Server) layoutOptions(req chartRequest) pipeline.Options {
	opts := req.Options
	opts.Input = ""
	opts.Dataset = &req.Dataset
	opts.Logger = s.logger
	return opts
}

// statusFor maps error codes to HTTP status codes.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidDataset,
		errors.ErrCodeInvalidSize, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidStyle, errors.ErrCodeInvalidFrame,
		errors.ErrCodeInvalidPath, errors.ErrCodeUnsupported:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeChartNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case errors.ErrCodeNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := statusFor(code)
	if status >= 500 {
		s.logger.Error("request failed",
			"error", err,
			"path", r.URL.Path,
			"request_id", RequestID(r.Context()))
	}
	writeJSONError(w, status, string(code), errors.UserMessage(err))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: message}})
}
