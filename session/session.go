// Package session ties the setup screen, the held keys and the running game
// together for one display. Every input handler and every tick goes through
// the session lock, so handlers, ticks and rendering never interleave.
package session

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/battlesnakeio/lightcycles/config"
	"github.com/battlesnakeio/lightcycles/input"
	"github.com/battlesnakeio/lightcycles/model"
	"github.com/battlesnakeio/lightcycles/render"
	"github.com/battlesnakeio/lightcycles/rules"
	"github.com/battlesnakeio/lightcycles/setup"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

// GameOverMessage is shown to the players when a game ends.
const GameOverMessage = "Game Over"

// ErrClosed is returned by every operation on a closed session.
var ErrClosed = errors.New("session: closed")

// Stage is the phase a session is in.
type Stage string

const (
	// StageSetup is the key selection screen
	StageSetup Stage = "setup"
	// StageGame is a running game
	StageGame Stage = "game"
)

// Notifier tells the players that the game is over.
type Notifier interface {
	GameOver(message string) error
}

// Option configures a session.
type Option func(*Session)

// WithRand makes spawn positions and headings come from rng.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithID sets the session id instead of generating one.
func WithID(id string) Option {
	return func(s *Session) { s.ID = id }
}

// Session is one setup screen plus the games started from it.
type Session struct {
	ID string

	cfg      config.Config
	surface  render.Surface
	notifier Notifier

	mu     sync.Mutex
	stage  Stage
	setup  *setup.Controller
	keys   *input.KeyState
	rng    *rand.Rand
	game   *model.Game
	frame  *model.GameFrame
	last   *model.End
	games  int
	loop   loop
	closed bool
}

// New creates a session in the setup stage. Nothing is drawn until Open.
func New(cfg config.Config, surface render.Surface, notifier Notifier, opts ...Option) *Session {
	s := &Session{
		ID:       uuid.NewV4().String(),
		cfg:      cfg,
		surface:  surface,
		notifier: notifier,
		stage:    StageSetup,
		setup:    setup.New(cfg.Players, cfg.Width, cfg.Height),
		keys:     input.NewKeyState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	sessionsActive.Inc()
	return s
}

// Open draws the setup screen.
func (s *Session) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	log.WithField("SessionID", s.ID).Info("session opened")
	return s.setup.Render(s.surface)
}

// Click handles a pointer click at x, y on the canvas. During setup it selects
// a slot or starts the game, while a game runs it is ignored.
func (s *Session) Click(x, y float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.stage != StageSetup {
		return nil
	}
	if s.setup.Click(x, y) {
		return s.start()
	}
	return s.setup.Render(s.surface)
}

// KeyDown handles a key press. During setup the key is bound to the selected
// slot, during a game it is held until KeyUp.
func (s *Session) KeyDown(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.stage == StageGame {
		s.keys.Press(key)
		return nil
	}
	return s.assignKey(key)
}

// KeyTap is KeyDown for inputs without key up events. During a game the key is
// held for the configured key hold duration.
func (s *Session) KeyTap(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.stage == StageGame {
		s.keys.PressFor(key, s.cfg.KeyHold)
		return nil
	}
	return s.assignKey(key)
}

// KeyUp handles a key release.
func (s *Session) KeyUp(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	s.keys.Release(key)
	return nil
}

func (s *Session) assignKey(key string) error {
	if _, ok := s.setup.Selected(); !ok {
		return nil
	}
	s.setup.AssignKey(key)
	return s.setup.Render(s.surface)
}

// Start begins a new game with every slot that has both keys. A game already
// running is abandoned.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	return s.start()
}

func (s *Session) start() error {
	s.loop.disarm()

	s.game = &model.Game{
		ID:           uuid.NewV4().String(),
		Width:        s.cfg.Width,
		Height:       s.cfg.Height,
		Margin:       s.cfg.Margin,
		Speed:        s.cfg.Speed,
		TurnRate:     s.cfg.TurnRate,
		HitThreshold: s.cfg.HitThreshold,
		GrowthTicks:  s.cfg.GrowthTicks,
		TickInterval: s.cfg.TickInterval,
		Status:       string(rules.GameStatusStopped),
	}
	s.frame = rules.StartGame(s.game, s.setup.Slots(), s.rng)
	s.keys.Reset()
	s.stage = StageGame
	s.games++

	gamesStarted.Inc()
	gameAgents.Observe(float64(len(s.frame.Agents)))
	log.WithFields(log.Fields{
		"SessionID": s.ID,
		"GameID":    s.game.ID,
		"Agents":    len(s.frame.Agents),
		"Tick":      s.cfg.TickInterval,
	}).Info("game started")

	s.loop.arm(s.cfg.TickInterval, s.tick)
	return render.Game(s.surface, s.game.Width, s.game.Height, s.frame.Agents)
}

// tick runs one game step. Ticks from a loop that has since been disarmed are
// dropped.
func (s *Session) tick(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ctx.Err() != nil || s.closed || s.frame == nil {
		return
	}
	defer instrumentTick()()

	if err := render.Game(s.surface, s.game.Width, s.game.Height, s.frame.Agents); err != nil {
		log.WithError(err).WithField("SessionID", s.ID).Warn("unable to render game")
	}

	next, err := rules.GameTick(s.game, s.frame, s.keys)
	if err != nil {
		log.WithError(err).
			WithField("SessionID", s.ID).
			Error("ending game due to fatal error")
		s.endGame(&model.End{Turn: s.frame.Turn})
		return
	}
	s.frame = next

	if rules.CheckForGameOver(next) {
		s.endGame(next.End)
	}
}

// endGame stops the loop, shows the final state and the game over message,
// then returns to the setup screen. Key bindings are kept for the next game.
func (s *Session) endGame(end *model.End) {
	s.loop.disarm()

	if err := render.Game(s.surface, s.game.Width, s.game.Height, s.frame.Agents); err != nil {
		log.WithError(err).WithField("SessionID", s.ID).Warn("unable to render final frame")
	}

	fields := log.Fields{
		"SessionID": s.ID,
		"GameID":    s.game.ID,
		"Turn":      end.Turn,
		"AgentID":   end.AgentID,
		"Cause":     end.Cause,
	}
	if agent := s.frame.Agent(end.AgentID); agent != nil {
		fields["Slot"] = agent.Slot
		fields["Length"] = len(agent.Trail)
	}

	s.game.Status = string(rules.GameStatusComplete)
	s.last = end
	s.frame = nil
	s.stage = StageSetup
	s.keys.Reset()
	gamesEnded.WithLabelValues(end.Cause).Inc()

	log.WithFields(fields).Info("ending game")

	if s.notifier != nil {
		if err := s.notifier.GameOver(GameOverMessage); err != nil {
			log.WithError(err).WithField("SessionID", s.ID).Warn("unable to notify game over")
		}
	}
	if err := s.setup.Render(s.surface); err != nil {
		log.WithError(err).WithField("SessionID", s.ID).Warn("unable to render setup")
	}
}

// Stop abandons the running game, if any, and shows the setup screen.
func (s *Session) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	s.stop()
	return s.setup.Render(s.surface)
}

// Reset abandons the running game, if any, clears every key binding and
// shows the setup screen.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	s.stop()
	s.setup.Reset()
	log.WithField("SessionID", s.ID).Info("key bindings reset")
	return s.setup.Render(s.surface)
}

func (s *Session) stop() {
	s.loop.disarm()
	if s.game != nil && s.frame != nil {
		s.game.Status = string(rules.GameStatusStopped)
		log.WithFields(log.Fields{
			"SessionID": s.ID,
			"GameID":    s.game.ID,
			"Turn":      s.frame.Turn,
		}).Info("game stopped")
	}
	s.frame = nil
	s.stage = StageSetup
	s.keys.Reset()
}

// Close stops the loop for good. Closing twice is fine.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.loop.disarm()
	s.closed = true
	s.frame = nil
	sessionsActive.Dec()
	log.WithField("SessionID", s.ID).Info("session closed")
	return nil
}

// Status is a snapshot of a session.
type Status struct {
	ID     string       `json:"id"`
	Stage  Stage        `json:"stage"`
	Slots  []model.Slot `json:"slots"`
	Game   *model.Game  `json:"game,omitempty"`
	Turn   int64        `json:"turn"`
	Agents int          `json:"agents"`
	Games  int          `json:"games"`
	Last   *model.End   `json:"last,omitempty"`
	// Held lists the keys held down right now.
	Held []string `json:"held,omitempty"`
}

// Status returns a snapshot of the session.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{
		ID:    s.ID,
		Stage: s.stage,
		Slots: s.setup.Slots(),
		Games: s.games,
		Held:  s.keys.Keys(),
	}
	if s.game != nil {
		g := *s.game
		st.Game = &g
	}
	if s.frame != nil {
		st.Turn = s.frame.Turn
		st.Agents = len(s.frame.Agents)
	}
	if s.last != nil {
		e := *s.last
		st.Last = &e
	}
	return st
}
