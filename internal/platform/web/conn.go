package web

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/engine"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

// Connection timing.
const (
	writeWait    = 5 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = pongWait * 9 / 10
	maxMessage   = 512
	sendQueueLen = 16
)

// ClientMessage is sent by the browser. Only "key" messages are handled;
// Key is a KeyboardEvent key or code value such as "ArrowUp" or "Space".
type ClientMessage struct {
	Type string `json:"type"`
	Key  string `json:"key"`
}

// ServerMessage is sent to the browser.
type ServerMessage struct {
	Type     string         `json:"type"`
	Session  string         `json:"session,omitempty"`
	GridSize int            `json:"gridSize,omitempty"`
	Frame    *snake.Frame   `json:"frame,omitempty"`
	Stats    *storage.Stats `json:"stats,omitempty"`
}

// Conn is one browser tab: a websocket plus its own game.
type Conn struct {
	ID     string
	ws     *websocket.Conn
	send   chan []byte
	logger *log.Logger
}

// NewConn wraps ws with a fresh session ID.
func NewConn(ws *websocket.Conn, logger *log.Logger) *Conn {
	id := uuid.NewString()
	return &Conn{
		ID:     id,
		ws:     ws,
		send:   make(chan []byte, sendQueueLen),
		logger: logger.With("conn", id[:8]),
	}
}

// Enqueue queues a message without blocking. When the client is too slow
// the message is dropped; the next frame supersedes it anyway.
func (c *Conn) Enqueue(msg ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		c.logger.Error("cannot encode message", "type", msg.Type, "error", err)
		return
	}
	select {
	case c.send <- data:
	default:
		c.logger.Debug("send queue full, dropping", "type", msg.Type)
	}
}

// Render implements engine.Renderer.
func (c *Conn) Render(f snake.Frame) {
	c.Enqueue(ServerMessage{Type: "frame", Frame: &f})
}

// writePump writes queued messages and keepalive pings until ctx is done
// or a write fails. It closes the socket on exit, which ends readPump.
func (c *Conn) writePump(ctx context.Context) {
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ping.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ping.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-ctx.Done():
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			c.ws.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
			return
		}
	}
}

// readPump turns key messages into runner actions until the socket fails.
func (c *Conn) readPump(runner *engine.Runner) {
	c.ws.SetReadLimit(maxMessage)
	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		c.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("read error", "error", err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.logger.Debug("bad message", "error", err)
			continue
		}
		if strings.ToLower(msg.Type) != "key" {
			continue
		}

		action, ok := core.ParseKey(msg.Key)
		if !ok {
			continue
		}
		if !runner.Send(action) {
			c.logger.Debug("input dropped", "action", action)
		}
	}
}

// ledger stores finished runs and pushes the updated totals to the client.
type ledger struct {
	store *storage.Store
	conn  *Conn
}

func (l ledger) RecordRun(r engine.RunResult) error {
	if err := l.store.RecordRun(r); err != nil {
		return err
	}
	st, err := l.store.Stats()
	if err != nil {
		return err
	}
	l.conn.Enqueue(ServerMessage{Type: "stats", Stats: &st})
	return nil
}
