// Package web serves and exports the landing page as HTML.
package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"coursepage/internal/content"
	"coursepage/internal/domain"
)

// Server is the local preview server
type Server struct {
	page   atomic.Pointer[domain.Page]
	md     *content.Markdown
	log    *zap.Logger
	router chi.Router
}

// NewServer creates a server for page
func NewServer(page *domain.Page, md *content.Markdown, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		md:  md,
		log: log.Named("web"),
	}
	s.page.Store(page)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(s.log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/", s.handlePage)

	s.router = r
	return s
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// SetPage swaps the page served to the next requests
func (s *Server) SetPage(page *domain.Page) {
	s.page.Store(page)
}

// Page returns the page currently served
func (s *Server) Page() *domain.Page {
	return s.page.Load()
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	page := s.page.Load()
	st, err := NewViewState(page)
	if err != nil {
		s.log.Error("build view state", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()
	if err := st.Apply(page, q); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// render to a buffer so a failure can still become a 500
	var buf bytes.Buffer
	if err := Render(&buf, page, st, s.md, q); err != nil {
		s.log.Error("render page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("web listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Export writes the page, with the state selected by q, as a standalone HTML document
func Export(w io.Writer, page *domain.Page, md *content.Markdown, q url.Values) error {
	st, err := NewViewState(page)
	if err != nil {
		return err
	}
	if err := st.Apply(page, q); err != nil {
		return err
	}
	return Render(w, page, st, md, q)
}

// RequestLogger logs one line per request with its status and latency
func RequestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				log.Info("request",
					zap.String("request_id", middleware.GetReqID(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("query", r.URL.RawQuery),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("latency", time.Since(start)),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
