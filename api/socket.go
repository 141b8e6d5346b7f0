package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/battlesnakeio/lightcycles/config"
	"github.com/battlesnakeio/lightcycles/render"
	"github.com/battlesnakeio/lightcycles/session"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Inbound message types.
const (
	MessageClick   = "click"
	MessageKeyDown = "keydown"
	MessageKeyUp   = "keyup"
	MessageStart   = "start"
	MessageStop    = "stop"
	MessageReset   = "reset"
)

// Outbound message types.
const (
	MessageHello = "hello"
	MessageFrame = "frame"
	MessageAlert = "alert"
)

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Inbound is a message from the browser. Click coordinates are relative to
// the canvas origin, keys are KeyboardEvent.key values.
type Inbound struct {
	Type string  `json:"type"`
	X    float64 `json:"x,omitempty"`
	Y    float64 `json:"y,omitempty"`
	Key  string  `json:"key,omitempty"`
}

// Outbound is a message to the browser.
type Outbound struct {
	Type    string      `json:"type"`
	Session string      `json:"session,omitempty"`
	Width   float64     `json:"width,omitempty"`
	Height  float64     `json:"height,omitempty"`
	Ops     []render.Op `json:"ops,omitempty"`
	Message string      `json:"message,omitempty"`
}

// client is one websocket connection. It is the render sink and the game over
// notifier of its session.
type client struct {
	conn    *websocket.Conn
	limiter *rate.Limiter

	mu sync.Mutex
}

func newClient(conn *websocket.Conn, cfg config.Config) *client {
	return &client{
		conn:    conn,
		limiter: rate.NewLimiter(cfg.InputRate, cfg.InputBurst),
	}
}

func (c *client) send(msg Outbound) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return errors.Wrapf(c.conn.WriteJSON(msg), "unable to send %s", msg.Type)
}

func (c *client) frame(ops []render.Op) error {
	return c.send(Outbound{Type: MessageFrame, Ops: ops})
}

// GameOver implements session.Notifier.
func (c *client) GameOver(message string) error {
	return c.send(Outbound{Type: MessageAlert, Message: message})
}

func (c *client) close() error {
	return c.conn.Close()
}

// allow reports whether one more inbound message fits the rate limit.
// Releases and stops always pass so a dropped message never leaves a key
// held or a game running.
func (c *client) allow(msgType string) bool {
	switch msgType {
	case MessageKeyUp, MessageStop:
		return true
	}
	if c.limiter.Allow() {
		return true
	}
	socketDropped.Inc()
	return false
}

func (s *Server) socket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("unable to upgrade websocket")
		return
	}

	c := newClient(conn, s.cfg)
	sess := session.New(s.cfg, render.NewRecorder(c.frame), c)
	s.add(sess, c)
	socketsOpen.Inc()

	logger := log.WithFields(log.Fields{
		"SessionID": sess.ID,
		"Remote":    r.RemoteAddr,
	})
	logger.Info("socket connected")

	defer func() {
		s.remove(sess.ID)
		sess.Close()
		conn.Close()
		socketsOpen.Dec()
		logger.Info("socket disconnected")
	}()

	hello := Outbound{
		Type:    MessageHello,
		Session: sess.ID,
		Width:   s.cfg.Width,
		Height:  s.cfg.Height,
	}
	if err := c.send(hello); err != nil {
		logger.WithError(err).Warn("unable to greet socket")
		return
	}
	if err := sess.Open(); err != nil {
		logger.WithError(err).Warn("unable to open session")
		return
	}

	for {
		var msg Inbound
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.WithError(err).Warn("socket read failed")
			}
			return
		}
		if !c.allow(msg.Type) {
			logger.WithField("Type", msg.Type).Debug("dropping rate limited message")
			continue
		}
		if err := dispatch(sess, msg); err != nil {
			logger.WithError(err).Warn("unable to handle message")
			if err == session.ErrClosed {
				return
			}
		}
	}
}

// dispatch hands one inbound message to the session. Unknown types are
// ignored.
func dispatch(sess *session.Session, msg Inbound) error {
	var err error
	switch msg.Type {
	case MessageClick:
		err = sess.Click(msg.X, msg.Y)
	case MessageKeyDown:
		err = sess.KeyDown(msg.Key)
	case MessageKeyUp:
		err = sess.KeyUp(msg.Key)
	case MessageStart:
		err = sess.Start()
	case MessageStop:
		err = sess.Stop()
	case MessageReset:
		err = sess.Reset()
	default:
		socketMessages.WithLabelValues("unknown").Inc()
		log.WithField("Type", msg.Type).Debug("ignoring unknown message")
		return nil
	}
	socketMessages.WithLabelValues(msg.Type).Inc()
	return err
}
