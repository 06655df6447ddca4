package gameserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/jssohel603-bot/football-game/internal/config"
	"github.com/jssohel603-bot/football-game/internal/metrics"
	"github.com/jssohel603-bot/football-game/internal/protocol"
	"github.com/jssohel603-bot/football-game/internal/session"
	"github.com/jssohel603-bot/football-game/internal/shared/logger"
)

// Server hosts one match per websocket connection.
type Server struct {
	cfg         config.ServerConfig
	metricsPath string
	log         *logger.Logger
	sessions    *session.Manager
	upgrader    websocket.Upgrader
	handler     http.Handler
}

func New(cfg *config.Config, sessions *session.Manager, log *logger.Logger) *Server {
	s := &Server{
		cfg:         cfg.Server,
		metricsPath: cfg.Metrics.Path,
		log:         log,
		sessions:    sessions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
	s.routes(cfg.Metrics.Enabled && metrics.IsEnabled())
	return s
}

func (s *Server) routes(withMetrics bool) {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/v1/sessions", s.handleSessions).Methods(http.MethodGet)
	r.HandleFunc("/v1/sessions/{id}", s.handleSession).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.handleWS).Methods(http.MethodGet)
	if withMetrics {
		r.Handle(s.metricsPath, metrics.Handler()).Methods(http.MethodGet)
	}
	s.handler = withCORS(r)
}

// Handler exposes the routes, used directly by tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// withCORS lets browser clients served from another origin list sessions.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ListenAndServe runs the session loop and the HTTP server until ctx is
// cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	loopCtx, stopLoop := context.WithCancel(ctx)
	defer stopLoop()
	go s.sessions.Run(loopCtx, time.Second/time.Duration(s.cfg.TickHz))

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("authoritative game server listening",
			"addr", s.cfg.Address, "tick_hz", s.cfg.TickHz, "broadcast_hz", s.cfg.BroadcastHz)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("game server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	s.log.Info("shutting down", "timeout", s.cfg.ShutdownTimeout)
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "sessions": s.sessions.Len()})
}

func (s *Server) handleSessions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.sessions.List())
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	sess, ok := s.sessions.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}
	writeJSON(w, http.StatusOK, sess.Summary())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("codec")
	if name == "" {
		name = s.cfg.Codec
	}
	codec, err := protocol.CodecByName(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess, err := s.sessions.Create()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, session.ErrFull) {
			status = http.StatusServiceUnavailable
		}
		s.log.Warn("session not created", "err", err)
		http.Error(w, err.Error(), status)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("websocket upgrade error", "err", err)
		s.sessions.Remove(sess.ID)
		return
	}

	c := newClient(conn, codec, sess, s.cfg)
	s.log.Info("client connected", "session", sess.ID, "codec", codec.Name(), "remote", r.RemoteAddr)
	c.welcome()

	go c.writePump()
	c.readPump(s.log)

	s.sessions.Remove(sess.ID)
}
