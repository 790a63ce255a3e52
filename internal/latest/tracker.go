// Package latest makes only the newest request per key count. Beginning a
// request cancels the one it supersedes, so a stale response can never be
// delivered after a newer one.
package latest

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrSuperseded is the cancellation cause of a request replaced by a newer
// one for the same key.
var ErrSuperseded = errors.New("latest: superseded by a newer request")

type slot struct {
	gen    uint64
	cancel context.CancelCauseFunc
}

// Tracker tracks the newest request per key. Generations come from one
// counter shared by all keys, so a released key never reuses one. The zero
// value is ready to use.
type Tracker struct {
	mu    sync.Mutex
	next  uint64
	slots map[string]*slot
}

// Ticket is held by one in-flight request.
type Ticket struct {
	t   *Tracker
	key string
	gen uint64
}

// Begin starts a request for key, cancelling any older request for the same
// key with ErrSuperseded. The returned context is cancelled when the request
// is superseded or ctx ends. Call Done when the request finishes.
func (t *Tracker) Begin(ctx context.Context, key string) (context.Context, *Ticket) {
	derived, cancel := context.WithCancelCause(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.slots == nil {
		t.slots = make(map[string]*slot)
	}
	s, ok := t.slots[key]
	if !ok {
		s = &slot{}
		t.slots[key] = s
	}
	if s.cancel != nil {
		s.cancel(ErrSuperseded)
	}
	t.next++
	s.gen = t.next
	s.cancel = cancel
	return derived, &Ticket{t: t, key: key, gen: s.gen}
}

// Current reports whether the ticket still belongs to the newest request for
// its key.
func (k *Ticket) Current() bool {
	k.t.mu.Lock()
	defer k.t.mu.Unlock()
	s, ok := k.t.slots[k.key]
	return ok && s.gen == k.gen
}

// Done releases the ticket. If it is still the newest one, the key is
// forgotten.
func (k *Ticket) Done() {
	k.t.mu.Lock()
	defer k.t.mu.Unlock()
	s, ok := k.t.slots[k.key]
	if !ok || s.gen != k.gen {
		return
	}
	s.cancel(context.Canceled)
	delete(k.t.slots, k.key)
}

// Len reports how many keys have a request in flight.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.slots)
}

// Sleep waits d or until ctx ends, whichever is first. It returns the
// context's cause when cut short, so a superseded request gets ErrSuperseded.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return context.Cause(ctx)
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return context.Cause(ctx)
	case <-timer.C:
		return nil
	}
}
