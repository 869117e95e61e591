// Package autosave owns the unsaved-edit state machine for an open editor
// session: it coalesces rapid edits behind a quiescence window, keeps at
// most one save in flight, and guarantees a teardown flush so navigating
// away never loses an edit.
package autosave

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"fnotes/internal/note"
)

// DefaultInterval is the debounce quiescence window. The original client
// waited one second after the last keystroke.
const DefaultInterval = time.Second

// Snapshot is the material a save carries. It is read from the session's
// current state at fire time, never captured when the timer is armed, so a
// save always persists the latest title and rows.
type Snapshot struct {
	Title string
	Rows  []note.Row
}

// SourceFunc returns the session's current snapshot. It is invoked with the
// coordinator's lock held and must not call back into the coordinator.
type SourceFunc func() Snapshot

// SaveFunc commits a snapshot to the remote store.
type SaveFunc func(ctx context.Context, snap Snapshot) error

// Coordinator tracks isDirty/isSaving for one editor session and schedules
// debounced commits. All methods are safe for concurrent use.
type Coordinator struct {
	interval time.Duration
	source   SourceFunc
	save     SaveFunc
	onError  func(error)
	log      zerolog.Logger

	mu      sync.Mutex
	timer   *time.Timer
	dirty   bool
	saving  bool
	rearm   bool
	closed  bool
	seq     uint64
	waiters chan struct{}
}

// New builds a coordinator. onError receives every failed commit so the
// caller can raise a user-visible notice; it may be nil. A non-positive
// interval falls back to DefaultInterval.
func New(interval time.Duration, source SourceFunc, save SaveFunc, onError func(error), log zerolog.Logger) *Coordinator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Coordinator{
		interval: interval,
		source:   source,
		save:     save,
		onError:  onError,
		log:      log,
	}
}

// Edited records a local mutation: the session becomes dirty and the
// debounce timer is (re)armed. If a save is already in flight the dirty
// flag simply stays set; the edit is never dropped.
func (c *Coordinator) Edited() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.dirty = true
	c.seq++
	c.armLocked()
}

// Status reports (isDirty, isSaving). A note is durable only when the first
// value is false.
func (c *Coordinator) Status() (bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirty, c.saving
}

// Flush bypasses the debounce wait and immediately commits any pending
// edits. It waits for an in-flight save to resolve first, so at most one
// request is ever outstanding. Calling Flush while clean is a no-op.
func (c *Coordinator) Flush(ctx context.Context) error {
	for {
		c.mu.Lock()
		c.stopTimerLocked()

		if c.saving {
			ch := c.waitChLocked()
			c.mu.Unlock()
			select {
			case <-ch:
				continue
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if !c.dirty {
			c.mu.Unlock()
			return nil
		}

		c.saving = true
		seq := c.seq
		snap := c.source()
		c.mu.Unlock()

		return c.finish(seq, c.save(ctx, snap))
	}
}

// Close ends the session: the pending debounce timer is cancelled and, if
// unsaved edits remain, a final flush runs before Close returns. Closing
// twice is a no-op the second time.
func (c *Coordinator) Close(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.stopTimerLocked()
	c.mu.Unlock()

	return c.Flush(ctx)
}

// armLocked resets the quiescence timer. Stopping a nil or already-fired
// timer is harmless, which keeps cancellation idempotent.
func (c *Coordinator) armLocked() {
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.interval, c.fire)
}

func (c *Coordinator) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// fire runs when the window elapses with no further edits. A fire that
// lands while a save is in flight records a single pending intent instead
// of issuing a second request.
func (c *Coordinator) fire() {
	c.mu.Lock()
	if c.closed || !c.dirty {
		c.mu.Unlock()
		return
	}
	if c.saving {
		c.rearm = true
		c.mu.Unlock()
		return
	}

	c.saving = true
	seq := c.seq
	snap := c.source()
	c.mu.Unlock()

	c.log.Debug().Str("title", snap.Title).Int("rows", len(snap.Rows)).Msg("autosave firing")
	_ = c.finish(seq, c.save(context.Background(), snap))
}

// finish reconciles a completed save. Success marks the session clean only
// if no edits arrived during the request; failure re-arms the dirty flag
// and reports, with no automatic retry.
func (c *Coordinator) finish(seq uint64, err error) error {
	c.mu.Lock()
	c.saving = false
	if c.waiters != nil {
		close(c.waiters)
		c.waiters = nil
	}

	if err != nil {
		c.dirty = true
		c.rearm = false
		c.mu.Unlock()
		c.log.Warn().Err(err).Msg("autosave failed")
		if c.onError != nil {
			c.onError(err)
		}
		return err
	}

	if c.seq == seq {
		c.dirty = false
	}
	again := c.rearm && !c.closed
	c.rearm = false
	c.mu.Unlock()

	if again {
		// A debounce fired while we were saving; that intent runs now.
		go c.fire()
	}
	return nil
}

func (c *Coordinator) waitChLocked() chan struct{} {
	if c.waiters == nil {
		c.waiters = make(chan struct{})
	}
	return c.waiters
}
