package memory

import (
	"context"
	"sync"
	"time"

	"bank-ledger/pkg/apperror"

	"github.com/google/uuid"
)

// AccountLocker implements ports.AccountLocker for a single process.
// Each account gets a one-slot semaphore; waiting honours ctx and, when
// positive, the wait bound. A slot lives only while someone holds or
// waits for it.
type AccountLocker struct {
	mu    sync.Mutex
	slots map[uuid.UUID]*lockSlot
	wait  time.Duration
}

type lockSlot struct {
	ch   chan struct{}
	refs int
}

func NewAccountLocker(wait time.Duration) *AccountLocker {
	return &AccountLocker{
		slots: make(map[uuid.UUID]*lockSlot),
		wait:  wait,
	}
}

func (l *AccountLocker) Lock(ctx context.Context, accountID uuid.UUID) (func(context.Context) error, error) {
	slot := l.acquireSlot(accountID)

	if l.wait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.wait)
		defer cancel()
	}

	select {
	case slot.ch <- struct{}{}:
	case <-ctx.Done():
		l.releaseSlot(accountID)
		return nil, apperror.ErrLockTimeout(ctx.Err())
	}

	var once sync.Once
	return func(context.Context) error {
		once.Do(func() {
			<-slot.ch
			l.releaseSlot(accountID)
		})
		return nil
	}, nil
}

func (l *AccountLocker) acquireSlot(accountID uuid.UUID) *lockSlot {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.slots[accountID]
	if !ok {
		s = &lockSlot{ch: make(chan struct{}, 1)}
		l.slots[accountID] = s
	}
	s.refs++
	return s
}

func (l *AccountLocker) releaseSlot(accountID uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := l.slots[accountID]
	s.refs--
	if s.refs == 0 {
		delete(l.slots, accountID)
	}
}
