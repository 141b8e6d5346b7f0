package session

import (
	"context"
	"time"
)

// loop drives the game ticks. Arming cancels any previous loop so a session
// never has two loops running. Ticks receive the context of the loop that
// fired them and must drop the tick once it is cancelled, a tick may already
// be waiting on the session lock when the loop is disarmed.
type loop struct {
	ctx    context.Context
	cancel context.CancelFunc
}

func (l *loop) arm(interval time.Duration, tick func(context.Context)) {
	l.disarm()

	ctx, cancel := context.WithCancel(context.Background())
	l.ctx = ctx
	l.cancel = cancel

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				tick(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (l *loop) disarm() {
	if l.cancel == nil {
		return
	}
	l.cancel()
	l.cancel = nil
}

func (l *loop) armed() bool {
	return l.cancel != nil
}

// context returns the context of the armed loop, or a cancelled one.
func (l *loop) context() context.Context {
	if l.ctx == nil {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		return ctx
	}
	return l.ctx
}
