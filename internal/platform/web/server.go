// Package web serves the snake game to browsers. The page is embedded in
// the binary; each websocket connection plays its own game on the server.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/engine"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/sessions"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

//go:embed static
var staticFiles embed.FS

// Config holds configuration for the web server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// Snake is the game configuration shared by every connection.
	Snake config.SnakeConfig

	// Seed fixes food placement for every connection when non-zero.
	Seed int64

	// AllowedOrigins lists extra Origin values accepted for websocket
	// upgrades. Same-host requests are always accepted.
	AllowedOrigins []string

	// Sessions tracks connected players. A private registry is created
	// when nil; pass a shared one to count players across front ends.
	Sessions *sessions.Registry
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address: ":8080",
		Snake:   config.DefaultSnakeConfig(),
	}
}

// Server is the HTTP and websocket front end.
type Server struct {
	config   Config
	logger   *log.Logger
	upgrader websocket.Upgrader
	mux      *http.ServeMux

	// base is cancelled on shutdown; hijacked websocket connections are
	// not tracked by http.Server and watch it instead.
	base   context.Context
	cancel context.CancelFunc
	conns    sync.WaitGroup
	sessions *sessions.Registry
}

// NewServer creates a server. Call Close or ListenAndServe's shutdown to
// release connections.
func NewServer(cfg Config, logger *log.Logger) (*Server, error) {
	if err := cfg.Snake.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Sessions == nil {
		cfg.Sessions = sessions.NewRegistry()
	}

	s := &Server{
		config:   cfg,
		logger:   logger,
		mux:      http.NewServeMux(),
		sessions: cfg.Sessions,
	}
	s.base, s.cancel = context.WithCancel(context.Background())
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, fmt.Errorf("web: cannot load page: %w", err)
	}
	s.mux.Handle("GET /", http.FileServer(http.FS(static)))
	s.mux.HandleFunc("GET /ws", s.handleWS)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)

	return s, nil
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Sessions returns the number of players connected over the web.
func (s *Server) Sessions() int {
	return s.sessions.CountBy(sessions.TransportWeb)
}

func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || origin == "http://"+r.Host || origin == "https://"+r.Host {
		return true
	}
	for _, allowed := range s.config.AllowedOrigins {
		if origin == allowed {
			return true
		}
	}
	s.logger.Warn("rejected websocket origin", "origin", origin)
	return false
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":   "ok",
		"sessions": s.Sessions(),
		"players":  s.sessions.List(),
	})
}

// handleWS upgrades the request and plays one game until the client
// disconnects or the server shuts down.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	s.conns.Add(1)
	defer s.conns.Done()

	conn := NewConn(ws, s.logger)
	_, unregister := s.sessions.Register(sessions.Info{
		ID:        conn.ID,
		Transport: sessions.TransportWeb,
		Remote:    r.RemoteAddr,
	})
	defer unregister()
	conn.logger.Info("session started", "remote", r.RemoteAddr)
	defer conn.logger.Info("session ended", "remote", r.RemoteAddr)

	seed := s.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session, err := snake.NewSession(s.config.Snake, seed)
	if err != nil {
		conn.logger.Error("cannot create session", "error", err)
		ws.Close()
		return
	}

	opts := []engine.Option{engine.WithLogger(conn.logger)}
	if store, err := storage.OpenMemory(); err != nil {
		conn.logger.Warn("could not open run ledger", "error", err)
	} else {
		defer store.Close()
		opts = append(opts, engine.WithRecorder(ledger{store: store, conn: conn}))
	}

	ctx, cancel := context.WithCancel(s.base)
	defer cancel()

	// The hello must be queued before the runner's first frame
	conn.Enqueue(ServerMessage{Type: "hello", Session: conn.ID, GridSize: s.config.Snake.Grid.Size})

	runner := engine.NewRunner(session, conn, opts...)
	runnerDone := make(chan struct{})
	go func() {
		defer close(runnerDone)
		runner.Run(ctx)
	}()
	go conn.writePump(ctx)

	conn.readPump(runner)
	cancel()
	<-runnerDone
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Address,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting web server", "address", s.config.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			s.Close()
			return fmt.Errorf("web: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	s.Close()
	return err
}

// Close ends every websocket session and waits for them to finish.
func (s *Server) Close() {
	s.cancel()
	s.conns.Wait()
}
