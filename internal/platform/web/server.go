package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/candlelight/internal/levels"
	"github.com/vovakirdan/candlelight/internal/session"
)

// defaultMaxMessageSize fits a free play save with a long undo history.
const defaultMaxMessageSize = 512 << 10

// Config holds configuration for the HTTP server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// IdleTimeout closes connections that send nothing for this long.
	IdleTimeout time.Duration

	// MaxMessageSize caps a single client message in bytes. A larger
	// message closes the connection.
	MaxMessageSize int64

	// VisibleSize overrides the queue preview length when positive.
	VisibleSize int

	// Catalog is the puzzle campaign; nil uses the built-in one.
	Catalog *levels.Catalog
}

// Server serves the WebSocket endpoint at /ws.
type Server struct {
	config   Config
	upgrader websocket.Upgrader
	logger   *log.Logger
	srv      *http.Server
}

// NewServer creates a server. Nothing listens until ListenAndServe.
func NewServer(cfg Config) *Server {
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = 30 * time.Minute
	}
	if cfg.MaxMessageSize <= 0 {
		cfg.MaxMessageSize = defaultMaxMessageSize
	}

	s := &Server{
		config: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "candlelight-web",
		}),
	}

	s.srv = &http.Server{
		Addr:              cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(s.config.MaxMessageSize)

	s.logger.Info("session started", "remote", r.RemoteAddr)
	defer s.logger.Info("session ended", "remote", r.RemoteAddr)

	sess := session.New(
		session.WithLogger(s.logger),
		session.WithVisibleSize(s.config.VisibleSize),
	)
	h := NewHandler(sess, s.config.Catalog)

	for {
		if err := conn.SetReadDeadline(time.Now().Add(s.config.IdleTimeout)); err != nil {
			s.logger.Debug("set read deadline", "remote", r.RemoteAddr, "error", err)
			return
		}

		_, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("read error", "remote", r.RemoteAddr, "error", err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			if err := conn.WriteJSON(errorMessage(err)); err != nil {
				return
			}
			continue
		}

		if err := conn.WriteJSON(h.Handle(msg)); err != nil {
			s.logger.Debug("write error", "remote", r.RemoteAddr, "error", err)
			return
		}
	}
}

// ListenAndServe starts the server and blocks until it is shut down.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting HTTP server", "address", s.config.Address)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}
