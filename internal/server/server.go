// Package server exposes game sessions over websockets. Every connection
// gets its own World; the connection's read loop is the only goroutine that
// touches it.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-logr/logr"
	"github.com/gorilla/websocket"

	"github.com/samdwyer/dungeonle/internal/entity"
	"github.com/samdwyer/dungeonle/internal/game"
	"github.com/samdwyer/dungeonle/internal/gamedata"
	"github.com/samdwyer/dungeonle/internal/world"
)

// Server hands out sessions.
type Server struct {
	cfg      game.Config
	registry *gamedata.SpriteRegistry
	upgrader websocket.Upgrader
	log      logr.Logger
}

// New creates a server that builds every session's world from cfg.
func New(cfg game.Config, registry *gamedata.SpriteRegistry, log logr.Logger) *Server {
	return &Server{
		cfg:      cfg,
		registry: registry,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: log,
	}
}

// Handler returns the HTTP routes: /ws for sessions, /healthz for probes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

// ListenAndServe serves on cfg.Addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{Addr: s.cfg.Addr, Handler: s.Handler()}
	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	s.log.Info("listening", "addr", s.cfg.Addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// serveWS upgrades the request and runs one session until the client leaves.
// A "seed" query parameter overrides the configured seed.
func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error(err, "upgrade failed")
		return
	}

	cfg := s.cfg
	if seed := r.URL.Query().Get("seed"); seed != "" {
		cfg.Seed = seed
	}
	log := s.log.WithValues("remote", ws.RemoteAddr().String(), "seed", cfg.Seed)
	ctx := context.WithoutCancel(r.Context())

	conn := NewConnection(ws, log)
	go conn.WritePump()

	sim, err := game.NewWorld(ctx, cfg, s.registry)
	if err != nil {
		log.Error(err, "world generation failed")
		conn.SendMessage(errorMessage(CodeNoWorld, err))
		conn.CloseSend()
		return
	}

	sess := &session{ctx: ctx, conn: conn, world: sim, log: log}
	sim.SetNotifier(game.NotifierFunc(sess.notify))
	log.V(1).Info("session started", "player", string(sim.PlayerID()), "sprites", len(sim.Sprites()))

	sess.sendSnapshot()
	conn.ReadPump(sess)

	log.V(1).Info("session closed", "turns", sim.Turn())
}

// session is one player's game on one connection.
type session struct {
	ctx   context.Context
	conn  *Connection
	world *game.World
	log   logr.Logger
}

// HandleMessage applies an intent, resolves a pass and replies with the
// events it produced followed by a fresh snapshot.
func (s *session) HandleMessage(c *Connection, message []byte) {
	var msg inbound
	if err := json.Unmarshal(message, &msg); err != nil {
		c.SendMessage(errorMessage(CodeBadMessage, err))
		return
	}

	switch msg.Type {
	case MessageTypeIntent:
		var intent IntentMessage
		if err := json.Unmarshal(msg.Payload, &intent); err != nil {
			c.SendMessage(errorMessage(CodeBadMessage, err))
			return
		}
		action, err := entity.ParseAction(intent.Action)
		if err != nil {
			c.SendMessage(errorMessage(CodeBadAction, err))
			return
		}
		if err := s.world.Intend(s.world.PlayerID(), action); err != nil {
			c.SendMessage(errorMessage(CodeBadAction, err))
			return
		}
		s.world.Step(s.ctx)
		s.sendSnapshot()

	default:
		s.log.V(1).Info("unknown message type", "type", string(msg.Type))
		c.SendMessage(BaseMessage{
			Type:    MessageTypeError,
			Payload: ErrorMessage{Code: CodeUnknownType, Message: "Unknown message type received"},
		})
	}
}

func (s *session) notify(e game.Event) {
	if err := s.conn.SendMessage(BaseMessage{Type: MessageTypeEvent, Payload: e}); err != nil {
		s.log.Error(err, "encode event")
	}
}

func (s *session) sendSnapshot() {
	msg := BaseMessage{
		Type: MessageTypeSnapshot,
		Payload: SnapshotMessage{
			Rows:    world.Draw(s.world.Grid()),
			Sprites: s.world.Sprites(),
			Player:  s.world.PlayerID(),
			Turn:    s.world.Turn(),
		},
	}
	if err := s.conn.SendMessage(msg); err != nil {
		s.log.Error(err, "encode snapshot")
	}
}

func errorMessage(code string, err error) BaseMessage {
	return BaseMessage{
		Type:    MessageTypeError,
		Payload: ErrorMessage{Code: code, Message: err.Error()},
	}
}
