package server

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/Sumatoshi-tech/activityviz/pkg/activity"
	"github.com/Sumatoshi-tech/activityviz/pkg/plotpage"
	"github.com/Sumatoshi-tech/activityviz/pkg/report"
	"github.com/Sumatoshi-tech/activityviz/pkg/snapshot"
)

// Content types.
const (
	contentTypeJSON   = "application/json"
	contentTypeYAML   = "application/yaml"
	contentTypeTOML   = "application/toml"
	contentTypeHTML   = "text/html; charset=utf-8"
	contentTypeSchema = "application/schema+json"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error      string               `json:"error"`
	Code       int                  `json:"code"`
	RequestID  string               `json:"request_id,omitempty"`
	Violations []snapshot.Violation `json:"violations,omitempty"`
}

func (s *Server) writeJSONError(rw http.ResponseWriter, hr *http.Request, err error, code int) {
	resp := ErrorResponse{
		Error:     err.Error(),
		Code:      code,
		RequestID: RequestIDFromContext(hr.Context()),
	}

	var schemaErr *snapshot.SchemaError
	if errors.As(err, &schemaErr) {
		resp.Violations = schemaErr.Violations
	}

	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(hr.Context(), "request failed", "error", err, "request_id", resp.RequestID)
	}

	rw.Header().Set("Content-Type", contentTypeJSON)
	rw.WriteHeader(code)

	encodeErr := json.NewEncoder(rw).Encode(resp)
	if encodeErr != nil {
		s.logger.ErrorContext(hr.Context(), "failed to encode error response", "error", encodeErr)
	}
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, snapshot.ErrSchemaViolation),
		errors.Is(err, activity.ErrInvalidSeriesLength),
		errors.Is(err, activity.ErrInvalidYear),
		errors.Is(err, activity.ErrNegativeCount):
		return http.StatusUnprocessableEntity
	case errors.Is(err, activity.ErrUnknownTransform),
		errors.Is(err, activity.ErrUnknownHourLabelStyle),
		errors.Is(err, plotpage.ErrUnknownTheme),
		errors.Is(err, snapshot.ErrUnknownFormat),
		errors.Is(err, errDecode):
		return http.StatusBadRequest
	case errors.Is(err, ErrNoSource):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

var errDecode = errors.New("decode request body")

func (s *Server) handleIndex(rw http.ResponseWriter, hr *http.Request) {
	snap, err := s.sourceSnapshot(hr)
	if err != nil {
		s.writeJSONError(rw, hr, err, statusFor(err))

		return
	}

	s.renderPage(rw, hr, snap)
}

func (s *Server) handlePostRender(rw http.ResponseWriter, hr *http.Request) {
	snap, err := s.decodeBody(rw, hr)
	if err != nil {
		s.writeJSONError(rw, hr, err, statusFor(err))

		return
	}

	s.renderPage(rw, hr, snap)
}

func (s *Server) renderPage(rw http.ResponseWriter, hr *http.Request, snap *snapshot.Snapshot) {
	vis, err := s.visualize(hr, snap)
	if err != nil {
		s.writeJSONError(rw, hr, err, statusFor(err))

		return
	}

	theme := s.deps.Theme

	if name := hr.URL.Query().Get("theme"); name != "" {
		theme, err = plotpage.ParseTheme(name)
		if err != nil {
			s.writeJSONError(rw, hr, err, statusFor(err))

			return
		}
	}

	var buf bytes.Buffer

	err = report.WriteHTML(&buf, vis, report.PageOptions{Title: s.deps.Title, Name: snap.Name, Theme: theme})
	if err != nil {
		s.writeJSONError(rw, hr, err, http.StatusInternalServerError)

		return
	}

	rw.Header().Set("Content-Type", contentTypeHTML)
	_, _ = rw.Write(buf.Bytes())
}

func (s *Server) handleGetVisualization(rw http.ResponseWriter, hr *http.Request) {
	snap, err := s.sourceSnapshot(hr)
	if err != nil {
		s.writeJSONError(rw, hr, err, statusFor(err))

		return
	}

	s.writeVisualization(rw, hr, snap)
}

func (s *Server) handlePostVisualization(rw http.ResponseWriter, hr *http.Request) {
	snap, err := s.decodeBody(rw, hr)
	if err != nil {
		s.writeJSONError(rw, hr, err, statusFor(err))

		return
	}

	s.writeVisualization(rw, hr, snap)
}

func (s *Server) writeVisualization(rw http.ResponseWriter, hr *http.Request, snap *snapshot.Snapshot) {
	vis, err := s.visualize(hr, snap)
	if err != nil {
		s.writeJSONError(rw, hr, err, statusFor(err))

		return
	}

	format := snapshot.Format{Encoding: snapshot.EncodingJSON}

	if name := hr.URL.Query().Get("format"); name != "" {
		format, err = snapshot.ParseFormat(name)
		if err != nil {
			s.writeJSONError(rw, hr, err, statusFor(err))

			return
		}
	}

	var buf bytes.Buffer

	err = snapshot.Encode(&buf, vis, format)
	if err != nil {
		s.writeJSONError(rw, hr, err, http.StatusInternalServerError)

		return
	}

	if s.deps.Metrics != nil {
		s.deps.Metrics.RecordDays(hr.Context(), "api.visualization", vis.Grid.DaysInYear)
	}

	rw.Header().Set("Content-Type", contentTypeFor(format))
	_, _ = rw.Write(buf.Bytes())
}

func (s *Server) handleSchema(rw http.ResponseWriter, _ *http.Request) {
	rw.Header().Set("Content-Type", contentTypeSchema)
	_, _ = rw.Write(snapshot.Schema())
}

func (s *Server) sourceSnapshot(hr *http.Request) (*snapshot.Snapshot, error) {
	if s.deps.Source == nil {
		return nil, ErrNoSource
	}

	snap, err := s.deps.Source(hr.Context())
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	return snap, nil
}

// decodeBody reads a size-limited snapshot body. The encoding follows the
// Content-Type header and defaults to JSON.
func (s *Server) decodeBody(rw http.ResponseWriter, hr *http.Request) (*snapshot.Snapshot, error) {
	body := http.MaxBytesReader(rw, hr.Body, s.deps.MaxBodyBytes)
	defer body.Close()

	format := formatForContentType(hr.Header.Get("Content-Type"))

	snap, err := snapshot.Read(body, format)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) || errors.Is(err, snapshot.ErrSchemaViolation) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %w", errDecode, err)
	}

	return snap, nil
}

func (s *Server) visualize(hr *http.Request, snap *snapshot.Snapshot) (*activity.Visualization, error) {
	opts := s.deps.Visualizer
	query := hr.URL.Query()

	if name := query.Get("transform"); name != "" {
		t, err := activity.ParseTransform(name)
		if err != nil {
			return nil, err
		}

		opts.Transform = t
	}

	if name := query.Get("hour_labels"); name != "" {
		style, err := activity.ParseHourLabelStyle(name)
		if err != nil {
			return nil, err
		}

		opts.HourLabels = style
	}

	key, err := newCacheKey(snap, opts)
	if err != nil {
		return nil, err
	}

	if vis, ok := s.cache.Get(key); ok {
		return vis, nil
	}

	vis, err := activity.New(opts).Visualize(snap.Input())
	if err != nil {
		return nil, err
	}

	s.cache.Put(key, vis)

	return vis, nil
}

// cacheKey identifies a visualization by snapshot content and options.
// Cached visualizations are shared between requests and never mutated.
type cacheKey struct {
	digest [sha256.Size]byte
	opts   activity.Options
}

func newCacheKey(snap *snapshot.Snapshot, opts activity.Options) (cacheKey, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return cacheKey{}, fmt.Errorf("digest snapshot: %w", err)
	}

	return cacheKey{digest: sha256.Sum256(data), opts: opts}, nil
}

func formatForContentType(header string) snapshot.Format {
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return snapshot.Format{Encoding: snapshot.EncodingJSON}
	}

	switch {
	case strings.HasSuffix(mediaType, "yaml"):
		return snapshot.Format{Encoding: snapshot.EncodingYAML}
	case strings.HasSuffix(mediaType, "toml"):
		return snapshot.Format{Encoding: snapshot.EncodingTOML}
	default:
		return snapshot.Format{Encoding: snapshot.EncodingJSON}
	}
}

func contentTypeFor(format snapshot.Format) string {
	if format.LZ4 {
		return "application/x-lz4"
	}

	switch format.Encoding {
	case snapshot.EncodingYAML:
		return contentTypeYAML
	case snapshot.EncodingTOML:
		return contentTypeTOML
	default:
		return contentTypeJSON
	}
}
