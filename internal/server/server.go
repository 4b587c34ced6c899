// Package server exposes a cube engine over a JSON HTTP API for renderers
// and other remote collaborators.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/solver"
)

// Solver produces a solution for a scrambled cube.
type Solver interface {
	SolveOrFallback(ctx context.Context, req solver.Request) solver.Response
}

// Recorder persists sessions. A session starts on every scramble and holds
// the moves applied until the cube is solved, scrambled again or reset.
type Recorder interface {
	StartSession(size int, scramble string) (string, error)
	RecordMoves(sessionID string, moves []nxcube.Move) error
	EndSession(sessionID string, solved bool) error
}

// Server owns one engine and serves it over HTTP. All engine access goes
// through mu.
type Server struct {
	mu        sync.Mutex
	engine    *nxcube.Engine
	scramble  string
	sessionID string

	solver         Solver
	recorder       Recorder
	logger         *zap.Logger
	rand           nxcube.Rand
	maxSize        int
	scrambleLength int
	timeout        time.Duration
	startTime      time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithSolver sets the solver used by POST /api/v1/solve.
func WithSolver(s Solver) Option {
	return func(srv *Server) { srv.solver = s }
}

// WithRecorder enables session recording.
func WithRecorder(r Recorder) Option {
	return func(srv *Server) { srv.recorder = r }
}

// WithLogger sets the request and engine logger.
func WithLogger(l *zap.Logger) Option {
	return func(srv *Server) {
		if l != nil {
			srv.logger = l
		}
	}
}

// WithRand sets the randomness source for scrambles.
func WithRand(r nxcube.Rand) Option {
	return func(srv *Server) { srv.rand = r }
}

// WithMaxSize caps the size accepted by the reset endpoint.
func WithMaxSize(n int) Option {
	return func(srv *Server) { srv.maxSize = n }
}

// WithScrambleLength sets the default scramble length.
func WithScrambleLength(n int) Option {
	return func(srv *Server) { srv.scrambleLength = n }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(srv *Server) { srv.timeout = d }
}

// New creates a server holding a solved cube of the given size.
func New(size int, opts ...Option) (*Server, error) {
	s := &Server{
		solver:         solver.New("http://localhost:5000"),
		logger:         zap.NewNop(),
		maxSize:        10,
		scrambleLength: nxcube.DefaultScrambleLength,
		timeout:        30 * time.Second,
		startTime:      time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.checkSize(size); err != nil {
		return nil, err
	}
	engine, err := s.newEngine(size)
	if err != nil {
		return nil, err
	}
	s.engine = engine
	return s, nil
}

func (s *Server) newEngine(size int) (*nxcube.Engine, error) {
	opts := []nxcube.Option{nxcube.WithLogger(s.logger), nxcube.WithMoveHistory(false)}
	if s.rand != nil {
		opts = append(opts, nxcube.WithRand(s.rand))
	}
	return nxcube.New(size, opts...)
}

func (s *Server) checkSize(size int) error {
	if size > s.maxSize {
		return &nxcube.ConfigurationError{Field: "size", Value: size, Reason: fmt.Sprintf("must be at most %d", s.maxSize)}
	}
	return nil
}

// Routes sets up the HTTP routes with middleware.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.timeout))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/cube", s.handleGetCube)
		r.Post("/cube/moves", s.handleMoves)
		r.Post("/cube/scramble", s.handleScramble)
		r.Post("/cube/reset", s.handleReset)
		r.Post("/solve", s.handleSolve)
	})

	return r
}

// ListenAndServe serves the API on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// endSession closes the open session, if any. Must be called with mu held.
func (s *Server) endSession(solved bool) {
	if s.recorder == nil || s.sessionID == "" {
		return
	}
	if err := s.recorder.EndSession(s.sessionID, solved); err != nil {
		s.logger.Warn("failed to end session", zap.String("session_id", s.sessionID), zap.Error(err))
	}
	s.sessionID = ""
}

// snapshot must be called with mu held.
func (s *Server) snapshot() CubeView {
	return NewCubeView(s.engine.Size(), s.engine.IsSolved(), s.engine.Cubelets())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, errType, message string) {
	s.writeJSON(w, status, APIError{Type: errType, Message: message})
}

// decodeBody decodes an optional JSON body. An empty body leaves v untouched.
func decodeBody(r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
