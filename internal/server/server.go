// =============================================================================
// OCF Ledger Converter - HTTP Adapter
// =============================================================================
//
// Routes:
//   GET  /healthz       liveness
//   POST /v1/encode     portable document  -> {"commands": [...]}
//   POST /v1/decode     ledger record(s)   -> {"objects": [...]}
//   POST /v1/manifest   ledger record(s)   -> {"manifest": ..., "report": ..., "digest": ...}
//
// Conversion failures, malformed JSON included, are answered with 422 and
// {code, field, message}. Bodies over the size limit get 413.
//
// =============================================================================

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ginjaninja78/ocf-ledger-converter/internal/converter"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ledger"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/manifest"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/ocf"
	"github.com/ginjaninja78/ocf-ledger-converter/internal/validation"
)

// DefaultMaxBodyBytes bounds request bodies.
const DefaultMaxBodyBytes = 16 << 20

// Server serves the converter over HTTP.
type Server struct {
	codec        *converter.Codec
	assembler    *manifest.Assembler
	gate         *ocf.VersionGate
	log          *slog.Logger
	MaxBodyBytes int64
}

// New creates a Server. gate may be nil to accept every ocf_version.
func New(codec *converter.Codec, gate *ocf.VersionGate, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		codec:        codec,
		assembler:    manifest.NewAssembler(codec, log),
		gate:         gate,
		log:          log,
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
}

// Routes returns a chi.Router with every handler mounted.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.healthz)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/encode", s.encode)
		r.Post("/decode", s.decode)
		r.Post("/manifest", s.assemble)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then drains in-flight
// requests for up to ten seconds.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("server: listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	}
}

// =============================================================================
// HANDLERS
// =============================================================================

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) encode(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}
	objs, err := ocf.ParseDocument(body, s.gate)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	commands := make([]*ledger.CreateCommand, 0, len(objs))
	for i, obj := range objs {
		cmd, err := s.codec.Encode(obj)
		if err != nil {
			s.writeError(w, r, fmt.Errorf("item %d: %w", i, err))
			return
		}
		commands = append(commands, cmd)
	}
	writeJSON(w, http.StatusOK, map[string]any{"commands": commands})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}
	records, err := ledger.ParseRecords(body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	objects := make([]ocf.Object, 0, len(records))
	for i, rec := range records {
		obj, err := s.codec.DecodeRecord(rec)
		if err != nil {
			s.writeError(w, r, fmt.Errorf("record %d: %w", i, err))
			return
		}
		objects = append(objects, obj)
	}
	writeJSON(w, http.StatusOK, map[string]any{"objects": objects})
}

func (s *Server) assemble(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}
	records, err := ledger.ParseRecords(body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	m, report := s.assembler.Assemble(records)
	digest, err := manifest.Digest(m)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"manifest": m, "report": report, "digest": digest})
}

// =============================================================================
// HELPERS
// =============================================================================

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, ErrorBody{Code: "BODY_TOO_LARGE", Message: err.Error()})
			return nil, false
		}
		writeJSON(w, http.StatusBadRequest, ErrorBody{Code: "BAD_REQUEST", Message: err.Error()})
		return nil, false
	}
	return body, true
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := validation.CodeOf(err)
	if code == "" {
		s.log.Error("server: request failed", "path", r.URL.Path, "request_id", middleware.GetReqID(r.Context()), "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorBody{Code: "INTERNAL", Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusUnprocessableEntity, ErrorBody{
		Code:    string(code),
		Field:   validation.FieldOf(err),
		Message: err.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug("server: request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
