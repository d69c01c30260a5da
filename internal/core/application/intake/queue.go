// Package intake holds client order placements between submission and
// execution. A placement runs once its delay has elapsed unless it was
// cancelled first, individually or because its session ended.
package intake

import (
	"errors"
	"slices"
	"sync"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

// DefaultDelay is the pause between a visitor confirming and the order
// being registered.
const DefaultDelay = 3500 * time.Millisecond

// Placement is a pending client order.
type Placement struct {
	ID      kernel.UUID
	Session kernel.UUID
	Command commands.PlaceClientOrderCommand
	DueAt   time.Time
}

// Queue is safe for concurrent use.
type Queue struct {
	now func() time.Time

	mu      sync.Mutex
	pending map[kernel.UUID]Placement
}

func NewQueue() *Queue {
	return NewQueueWithClock(time.Now)
}

func NewQueueWithClock(now func() time.Time) *Queue {
	return &Queue{
		now:     now,
		pending: make(map[kernel.UUID]Placement),
	}
}

// Schedule registers cmd to run after delay on behalf of session.
func (q *Queue) Schedule(session kernel.UUID, cmd commands.PlaceClientOrderCommand, delay time.Duration) (Placement, error) {
	var delayErr error
	if delay < 0 {
		delayErr = errs.NewValueIsOutOfRangeError("delay", delay, 0, "unbounded")
	}
	if err := errors.Join(session.Validate(), cmd.Validate(), delayErr); err != nil {
		return Placement{}, err
	}

	p := Placement{
		ID:      kernel.NewUUID(),
		Session: session,
		Command: cmd,
		DueAt:   q.now().Add(delay),
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending[p.ID] = p
	return p, nil
}

// Cancel drops a pending placement. It reports false when nothing is
// pending under id.
func (q *Queue) Cancel(id kernel.UUID) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, ok := q.pending[id]; !ok {
		return false
	}
	delete(q.pending, id)
	return true
}

// CancelSession drops every pending placement of session and returns how
// many were dropped.
func (q *Queue) CancelSession(session kernel.UUID) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := 0
	for id, p := range q.pending {
		if p.Session.IsEqual(session) {
			delete(q.pending, id)
			n++
		}
	}
	return n
}

// Due removes and returns the placements whose time has come, oldest first.
// A placement is returned at most once.
func (q *Queue) Due(now time.Time) []Placement {
	q.mu.Lock()
	defer q.mu.Unlock()

	var due []Placement
	for id, p := range q.pending {
		if !p.DueAt.After(now) {
			due = append(due, p)
			delete(q.pending, id)
		}
	}

	slices.SortFunc(due, func(a, b Placement) int {
		if c := a.DueAt.Compare(b.DueAt); c != 0 {
			return c
		}
		return compareIDs(a.ID, b.ID)
	})
	return due
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

func compareIDs(a, b kernel.UUID) int {
	as, bs := a.String(), b.String()
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}
