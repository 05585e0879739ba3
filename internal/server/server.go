// Package server exposes the conversion over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	json "github.com/goccy/go-json"

	"github.com/ukaji3/gsjson-go/internal/logger"
	"github.com/ukaji3/gsjson-go/pkg/gsjson"
	"github.com/ukaji3/gsjson-go/pkg/gsjson/models"
	"github.com/ukaji3/gsjson-go/pkg/gsjson/transform"
)

// SourceFunc opens the sheet source of a spreadsheet id.
type SourceFunc func(ctx context.Context, spreadsheetID string) (gsjson.SheetSource, error)

// Server serves the conversion endpoints.
type Server struct {
	router    chi.Router
	newSource SourceFunc
}

// New creates a Server. newSource may be nil, which disables the
// spreadsheet endpoint.
func New(newSource SourceFunc) *Server {
	s := &Server{router: chi.NewRouter(), newSource: newSource}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	s.router.Use(requestLogger)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Route("/v1", func(r chi.Router) {
		r.Post("/transform", s.handleTransform)
		r.Get("/spreadsheets/{id}", s.handleSpreadsheet)
	})
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// optionsBody is the JSON form of gsjson.Options.
type optionsBody struct {
	Vertical      bool     `json:"vertical"`
	ListOnly      bool     `json:"listOnly"`
	IncludeHeader bool     `json:"includeHeader"`
	Hash          string   `json:"hash"`
	PropertyMode  string   `json:"propertyMode"`
	HeaderStart   string   `json:"headerStart"`
	HeaderSize    int      `json:"headerSize"`
	IgnoreRow     []int    `json:"ignoreRow"`
	IgnoreCol     []string `json:"ignoreCol"`
}

func (b optionsBody) options() gsjson.Options {
	opts := gsjson.DefaultOptions()
	opts.Vertical = b.Vertical
	opts.ListOnly = b.ListOnly
	opts.IncludeHeader = b.IncludeHeader
	opts.Hash = b.Hash
	opts.PropertyMode = transform.PropertyMode(b.PropertyMode)
	opts.HeaderStart = b.HeaderStart
	if b.HeaderSize > 0 {
		opts.HeaderSize = b.HeaderSize
	}
	opts.IgnoreRow = b.IgnoreRow
	opts.IgnoreCol = b.IgnoreCol
	return opts
}

type transformRequest struct {
	Cells   []models.Cell `json:"cells"`
	Options optionsBody   `json:"options"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleTransform(w http.ResponseWriter, r *http.Request) {
	var req transformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	result, err := gsjson.CellsToJSON(req.Cells, req.Options.options())
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleSpreadsheet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if s.newSource == nil {
		writeError(w, r, http.StatusNotImplemented, errors.New("spreadsheet source not configured"))
		return
	}

	opts, err := queryOptions(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	src, err := s.newSource(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err)
		return
	}

	out, err := gsjson.SpreadsheetToJSON(ctx, src, opts)
	if err != nil {
		writeError(w, r, statusFor(err), err)
		return
	}
	writeJSON(w, r, http.StatusOK, out)
}

// queryOptions reads conversion options from URL query parameters.
// List parameters may repeat or hold comma-separated values.
func queryOptions(r *http.Request) (gsjson.Options, error) {
	q := r.URL.Query()
	opts := gsjson.DefaultOptions()

	opts.Vertical = queryBool(q.Get("vertical"))
	opts.ListOnly = queryBool(q.Get("listOnly"))
	opts.IncludeHeader = queryBool(q.Get("includeHeader"))
	opts.AllWorksheets = queryBool(q.Get("allWorksheets"))
	opts.Hash = q.Get("hash")
	opts.PropertyMode = transform.PropertyMode(q.Get("propertyMode"))
	opts.HeaderStart = q.Get("headerStart")
	opts.IgnoreCol = queryList(q["ignoreCol"])

	if v := q.Get("headerSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.New("headerSize must be an integer")
		}
		opts.HeaderSize = n
	}
	for _, v := range queryList(q["ignoreRow"]) {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.New("ignoreRow must hold integers")
		}
		opts.IgnoreRow = append(opts.IgnoreRow, n)
	}
	if ws := queryList(q["worksheet"]); len(ws) > 0 {
		opts.Worksheet = ws
	}
	return opts, nil
}

func queryBool(v string) bool {
	b, _ := strconv.ParseBool(v)
	return b
}

func queryList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, gsjson.ErrNoWorksheetFound):
		return http.StatusNotFound
	case errors.Is(err, gsjson.ErrInvalidColumnIdentifier):
		return http.StatusBadRequest
	}
	var wsErr *gsjson.WorksheetError
	if errors.As(err, &wsErr) {
		return http.StatusBadGateway
	}
	return http.StatusBadRequest
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.FromContext(r.Context()).Error().Err(err).Int("status", status).Msg("failed to encode response")
		status = http.StatusInternalServerError
		body = []byte(`{"error":"failed to encode response"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		logger.FromContext(r.Context()).Warn().Err(err).Msg("failed to write response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	writeJSON(w, r, status, map[string]string{"error": err.Error()})
}

// requestLogger attaches a request-scoped logger and logs each request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := logger.WithLogger(r.Context(), map[string]interface{}{
			"request_id": middleware.GetReqID(r.Context()),
		})
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r.WithContext(ctx))

		logger.FromContext(ctx).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request served")
	})
}
