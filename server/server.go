// Package server exposes games over websockets. Every connection gets its
// own engine.Game, driven only from that connection's read loop.
package server

import (
	"math/rand"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"github.com/brensch/trapcat/engine"
)

const (
	URIPlay   = "/play"
	URIHealth = "/healthz"
	URIStats  = "/api/stats"

	writeTimeout = 5 * time.Second
	// client messages are single small JSON objects
	readLimit = 512
)

type Server struct {
	router   *way.Router
	upgrader *websocket.Upgrader
	cfg      engine.Config
	sessions atomic.Int64

	// outcomeDir holds self-play batches served by the stats route
	outcomeDir string
	// origins allowed to open a game; empty allows any
	origins []string
}

type Option func(*Server)

// WithAllowedOrigins limits websocket upgrades to the listed Origin
// headers. Without it any origin may connect, so renderers can be served
// from elsewhere.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) { s.origins = origins }
}

// WithOutcomeDir enables the stats route over the parquet batches in dir.
func WithOutcomeDir(dir string) Option {
	return func(s *Server) { s.outcomeDir = dir }
}

func New(cfg engine.Config, opts ...Option) *Server {
	s := &Server{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	s.upgrader = &websocket.Upgrader{CheckOrigin: s.checkOrigin}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URIPlay, s.HandlePlay())
	s.router.HandleFunc("GET", URIHealth, s.HandleHealth())
	if s.outcomeDir != "" {
		s.router.HandleFunc("GET", URIStats, s.HandleStats())
	}
}

func (s *Server) checkOrigin(r *http.Request) bool {
	if len(s.origins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	for _, o := range s.origins {
		if o == origin {
			return true
		}
	}
	return false
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Sessions reports how many websocket games are currently open.
func (s *Server) Sessions() int64 {
	return s.sessions.Load()
}

func (s *Server) HandleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":   "ok",
			"sessions": s.Sessions(),
		})
	}
}

func (s *Server) HandlePlay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already replied to the client
			log.WithError(err).Warn("websocket upgrade failed")
			return
		}
		defer conn.Close()
		conn.SetReadLimit(readLimit)

		s.sessions.Add(1)
		defer s.sessions.Add(-1)

		id := uuid.NewString()
		entry := log.WithField("session", id)
		g, err := engine.New(s.cfg,
			engine.WithRand(rand.New(rand.NewSource(time.Now().UnixNano()))),
			engine.WithLogger(entry),
		)
		if err != nil {
			entry.WithError(err).Error("create game")
			return
		}

		entry.Info("session started")
		sess := &session{id: id, conn: conn, game: g, log: entry}
		sess.loop()
		entry.Info("session ended")
	}
}

type session struct {
	id   string
	conn *websocket.Conn
	game *engine.Game
	log  *log.Entry
}

func (ss *session) loop() {
	snap := ss.game.Snapshot()
	if err := ss.send(ServerMessage{Type: TypeState, Session: ss.id, State: &snap}); err != nil {
		ss.log.WithError(err).Warn("write initial state")
		return
	}

	for {
		_, data, err := ss.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				ss.log.WithError(err).Warn("read")
			}
			return
		}

		reply := ss.handle(data)
		if err := ss.send(reply); err != nil {
			ss.log.WithError(err).Warn("write")
			return
		}
	}
}

func (ss *session) handle(data []byte) ServerMessage {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return ServerMessage{Type: TypeError, Session: ss.id, Error: "malformed message: " + err.Error()}
	}
	ev, err := msg.Event()
	if err != nil {
		ss.log.WithError(err).Debug("rejected message")
		return ServerMessage{Type: TypeError, Session: ss.id, Error: err.Error()}
	}
	snap := ss.game.Handle(ev)
	return ServerMessage{Type: TypeState, Session: ss.id, State: &snap}
}

func (ss *session) send(msg ServerMessage) error {
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	_ = ss.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return ss.conn.WriteMessage(websocket.TextMessage, b)
}
