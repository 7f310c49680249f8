package server

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/gulbrand/rusty-the-snake/pkg/config"
	"github.com/gulbrand/rusty-the-snake/pkg/driver"
	"github.com/gulbrand/rusty-the-snake/pkg/game"
	"github.com/gulbrand/rusty-the-snake/pkg/input"
)

// Config describes the games the server hands out
type Config struct {
	Width     int
	Height    int
	Rules     config.Rules
	StaticDir string // served at / when set
}

// ServerMessage is sent to the browser
type ServerMessage struct {
	Type    string           `json:"type"`
	Session string           `json:"session,omitempty"`
	Config  *game.GameConfig `json:"config,omitempty"`
	State   *game.GameState  `json:"state,omitempty"`
}

// ClientMessage is received from the browser
type ClientMessage struct {
	Action string `json:"action"`
}

// Server runs one game per websocket connection
type Server struct {
	cfg      Config
	logger   *log.Logger
	upgrader websocket.Upgrader
	mux      *http.ServeMux
}

func New(cfg Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		cfg:    cfg,
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins for development
			},
		},
		mux: http.NewServeMux(),
	}

	s.mux.HandleFunc("/ws", s.handleWebSocket)
	if cfg.StaticDir != "" {
		s.mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))
	}
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) gameConfig() game.GameConfig {
	return game.GameConfig{
		Width:       s.cfg.Width,
		Height:      s.cfg.Height,
		MaxFruits:   s.cfg.Rules.MaxFruits,
		SpawnChance: s.cfg.Rules.SpawnChance,
	}
}

func (s *Server) newGame() (*game.Game, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return game.NewGameWithRules(s.cfg.Width, s.cfg.Height, s.cfg.Rules, rng)
}

// session is the write side of one connection; the driver renders through it
type session struct {
	id      string
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (ss *session) writeJSON(v interface{}) error {
	ss.writeMu.Lock()
	defer ss.writeMu.Unlock()
	ss.conn.SetWriteDeadline(time.Now().Add(config.WriteTimeout))
	return ss.conn.WriteJSON(v)
}

// Render sends a state message
func (ss *session) Render(state game.GameState) error {
	return ss.writeJSON(ServerMessage{Type: "state", State: &state})
}

func (ss *session) close(reason string) {
	ss.writeMu.Lock()
	defer ss.writeMu.Unlock()
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason)
	ss.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(config.WriteTimeout))
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Println("Upgrade error:", err)
		return
	}
	defer conn.Close()

	ss := &session{id: uuid.NewString(), conn: conn}
	s.logger.Printf("Session %s: new connection from %s", ss.id, r.RemoteAddr)

	gameConfig := s.gameConfig()
	if err := ss.writeJSON(ServerMessage{Type: "config", Session: ss.id, Config: &gameConfig}); err != nil {
		s.logger.Printf("Session %s: write error: %v", ss.id, err)
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	commands := make(chan input.Command, config.CommandBacklog)
	go s.readLoop(ctx, ss, commands)

	loop := driver.New(s.newGame, ss, s.logger)
	err = loop.Run(ctx, commands)
	switch {
	case err == nil:
		ss.close("bye")
		s.logger.Printf("Session %s: closed", ss.id)
	case ctx.Err() != nil:
		s.logger.Printf("Session %s: disconnected", ss.id)
	default:
		s.logger.Printf("Session %s: %v", ss.id, err)
	}
}

// readLoop turns client messages into driver commands. It closes commands when
// the connection fails so the driver stops.
func (s *Server) readLoop(ctx context.Context, ss *session, commands chan<- input.Command) {
	defer close(commands)
	for {
		var msg ClientMessage
		if err := ss.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Printf("Session %s: read error: %v", ss.id, err)
			}
			return
		}

		cmd, ok := input.ParseAction(msg.Action)
		if !ok {
			s.logger.Printf("Session %s: unknown action %q", ss.id, msg.Action)
			continue
		}

		select {
		case commands <- cmd:
		case <-ctx.Done():
			return
		}
	}
}
