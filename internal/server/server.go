package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/radio-t/speech-budget/speech"
)

//go:generate moq -out mocks/validator.go -pkg mocks -skip-ensure -fmt goimports . Validator

const shutdownTimeout = 10 * time.Second

// Validator fits text into the configured spoken-duration limit
type Validator interface {
	Validate(ctx context.Context, text string) speech.ValidationResult
}

// Server represents an HTTP server.
type Server struct {
	ln   net.Listener
	srv  *http.Server
	errc chan error

	Validator Validator

	// Server options.
	Addr           string        // bind address
	RequestTimeout time.Duration // per-request deadline, zero disables
	MaxBodyBytes   int64         // request body limit
	Recoverable    bool          // panic recovery

	Logger zerolog.Logger
}

// NewServer returns a new instance of Server.
func NewServer() *Server {
	return &Server{
		MaxBodyBytes: 1 << 20,
		Recoverable:  true,
		Logger:       zerolog.Nop(),
	}
}

// Open opens the listener and starts serving in the background.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln
	s.srv = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.errc = make(chan error, 1)

	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Logger.Error().Err(err).Msg("http server stopped")
			s.errc <- err
		}
	}()
	s.Logger.Info().Str("addr", ln.Addr().String()).Msg("http server started")

	return nil
}

// Close gracefully shuts the server down, waiting for in-flight requests.
func (s *Server) Close() error {
	if s.srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(ctx)
}

// Err returns a channel receiving the error that stopped serving early.
// It is nil before Open and never receives after a clean Close.
func (s *Server) Err() <-chan error {
	return s.errc
}

// URL returns a base URL string with the scheme and host.
// This is available after the server has been opened.
func (s *Server) URL() url.URL {
	if s.ln == nil {
		return url.URL{}
	}
	return url.URL{Scheme: "http", Host: s.ln.Addr().String()}
}

// Handler returns the HTTP handler with all routes and middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Attach router middleware.
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(hlog.NewHandler(s.Logger))
	r.Use(requestIDLogger)
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))
	if s.Recoverable {
		r.Use(middleware.Recoverer)
	}

	r.Get("/ping", s.handlePing)
	r.Post("/validate_audio_length", s.handleValidate)

	return r
}

// requestIDLogger adds the chi request id to the request logger.
func requestIDLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := hlog.FromRequest(r).With().Str("req_id", middleware.GetReqID(r.Context())).Logger()
		next.ServeHTTP(w, r.WithContext(log.WithContext(r.Context())))
	})
}

// handlePing reports that the server is up.
func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
