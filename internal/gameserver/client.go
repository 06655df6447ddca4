package gameserver

import (
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/jssohel603-bot/football-game/internal/config"
	"github.com/jssohel603-bot/football-game/internal/input"
	"github.com/jssohel603-bot/football-game/internal/protocol"
	"github.com/jssohel603-bot/football-game/internal/session"
	"github.com/jssohel603-bot/football-game/internal/shared/logger"
	"github.com/jssohel603-bot/football-game/internal/shared/types"
)

const (
	readTimeout  = 90 * time.Second
	writeTimeout = 10 * time.Second
	pingInterval = 20 * time.Second
)

type client struct {
	conn    *websocket.Conn
	codec   protocol.Codec
	session *session.Session
	limiter *rate.Limiter
	// replies written by the read side; the write pump is the only writer
	// to conn
	send chan []byte
}

func newClient(conn *websocket.Conn, codec protocol.Codec, sess *session.Session, cfg config.ServerConfig) *client {
	return &client{
		conn:    conn,
		codec:   codec,
		session: sess,
		limiter: rate.NewLimiter(rate.Limit(cfg.InputRate), cfg.InputBurst),
		send:    make(chan []byte, 64),
	}
}

func (c *client) welcome() {
	state := c.session.Snapshot()
	c.enqueue(types.ServerEnvelope{
		Type:      protocol.MsgWelcome,
		SessionID: c.session.ID,
		Tick:      state.Tick,
		State:     &state,
		ServerMS:  time.Now().UTC().UnixMilli(),
		Message:   "connected",
	})
}

func (c *client) readPump(log *logger.Logger) {
	defer func() {
		c.session.ReleaseKeys()
		close(c.send)
		_ = c.conn.Close()
	}()

	_ = c.conn.SetReadDeadline(time.Now().Add(readTimeout))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Info("client disconnected", "session", c.session.ID)
				return
			}
			log.Warn("read error", "session", c.session.ID, "err", err)
			return
		}

		var in types.ClientEnvelope
		if err := c.codec.Decode(msg, &in); err != nil {
			c.sendError(protocol.ErrBadPayload)
			continue
		}

		switch in.Type {
		case protocol.MsgKey:
			if !c.limiter.Allow() {
				c.sendError(protocol.ErrRateLimited)
				continue
			}
			key, ok := input.ParseKey(in.Key)
			if !ok {
				c.sendError(protocol.ErrUnknownKey)
				continue
			}
			c.session.ApplyKey(key, in.Down)
		case protocol.MsgPing:
			c.enqueue(types.ServerEnvelope{Type: protocol.MsgPong, ServerMS: time.Now().UTC().UnixMilli()})
		default:
			c.sendError(protocol.ErrUnsupportedType)
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	updates := c.session.Updates()
	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				c.closeConn()
				return
			}
			if !c.write(msg) {
				return
			}
		case state, ok := <-updates:
			if !ok {
				c.closeConn()
				return
			}
			payload, err := c.codec.Encode(types.ServerEnvelope{
				Type:     protocol.MsgState,
				Tick:     state.Tick,
				State:    &state,
				ServerMS: time.Now().UTC().UnixMilli(),
			})
			if err != nil {
				continue
			}
			if !c.write(payload) {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, []byte("keepalive")); err != nil {
				return
			}
		}
	}
}

func (c *client) write(payload []byte) bool {
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteMessage(c.codec.FrameType(), payload) == nil
}

func (c *client) closeConn() {
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (c *client) sendError(code string) {
	c.enqueue(types.ServerEnvelope{Type: protocol.MsgError, Message: code})
}

// enqueue drops the message when the client is not keeping up.
func (c *client) enqueue(env types.ServerEnvelope) {
	payload, err := c.codec.Encode(env)
	if err != nil {
		return
	}
	select {
	case c.send <- payload:
	default:
	}
}
