// Package capacity implements the registration-count ledger: a process-wide
// read-through cache over the registrations table, keyed by course date.
//
// The ledger is a rendering optimization only. The write path never trusts
// it; create_registration re-reads the live count inside its transaction.
package capacity

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/mariankubacka/latte-art-bookings-praha/pkg/types"
)

type entry struct {
	count     int
	fetchedAt time.Time
}

// Ledger caches per-date registration counts with a bounded staleness
// window. Concurrent refreshes of the same range are coalesced into one
// store read. Constructed per process; no package-level state, so tests can
// run independent instances with their own clock and TTL.
type Ledger struct {
	store RegistrationStore
	ttl   time.Duration
	clock Clock
	log   Logger

	sfg singleflight.Group

	mu      sync.RWMutex
	entries map[types.DateString]entry
}

// NewLedger creates a Ledger with the given staleness bound.
func NewLedger(store RegistrationStore, ttl time.Duration, clock Clock, log Logger) *Ledger {
	return &Ledger{
		store:   store,
		ttl:     ttl,
		clock:   clock,
		log:     log,
		entries: make(map[types.DateString]entry),
	}
}

// GetCount returns the cached registration count for date, refreshing the
// surrounding range when the entry is missing or older than the TTL.
//
// Failure policy: when the store read fails but a stale entry exists, the
// stale count is returned (read paths may show slightly old data). When
// nothing is cached, ErrCountUnavailable is returned — an I/O failure must
// never be presented as "zero registrations".
func (l *Ledger) GetCount(ctx context.Context, date types.DateString) (int, error) {
	if ent, ok := l.lookup(date); ok && l.fresh(ent) {
		return ent.count, nil
	}

	if err := l.Refresh(ctx, date, date); err != nil {
		if ent, ok := l.lookup(date); ok {
			l.log.Warn("GetCount: serving stale count for %s after refresh failure: %v", date, err)
			return ent.count, nil
		}
		return 0, fmt.Errorf("%w: %v", ErrCountUnavailable, err)
	}

	ent, ok := l.lookup(date)
	if !ok {
		// Covered by the refresh but no rows: zero registrations.
		return 0, nil
	}
	return ent.count, nil
}

// GetCounts returns per-date counts for the inclusive range, refreshing it
// once when any date inside is missing or stale. Dates with no registrations
// are omitted from the result; callers treat absence as zero.
func (l *Ledger) GetCounts(ctx context.Context, from, to types.DateString) (map[types.DateString]int, error) {
	if !l.rangeFresh(from, to) {
		if err := l.Refresh(ctx, from, to); err != nil {
			if l.rangeCached(from, to) {
				l.log.Warn("GetCounts: serving stale counts for %s..%s after refresh failure: %v", from, to, err)
			} else {
				return nil, fmt.Errorf("%w: %v", ErrCountUnavailable, err)
			}
		}
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	counts := make(map[types.DateString]int)
	for date, ent := range l.entries {
		if !date.Before(from) && !date.After(to) && ent.count > 0 {
			counts[date] = ent.count
		}
	}
	return counts, nil
}

// Refresh reads the inclusive range from the store and replaces the cached
// entries for every date inside it. Concurrent callers refreshing the same
// range share one store read. On failure the previous entries are kept and
// the error is surfaced.
func (l *Ledger) Refresh(ctx context.Context, from, to types.DateString) error {
	key := fmt.Sprintf("%s|%s", from, to)

	_, err, _ := l.sfg.Do(key, func() (interface{}, error) {
		counts, err := l.store.CountByDateRange(ctx, from, to)
		if err != nil {
			return nil, err
		}
		l.replaceRange(from, to, counts)
		return nil, nil
	})

	if err != nil {
		return fmt.Errorf("%w: range %s..%s: %v", ErrRefreshFailed, from, to, err)
	}
	return nil
}

// Invalidate clears one date's entry so the next read re-fetches. Called
// after a committed registration for that date.
func (l *Ledger) Invalidate(date types.DateString) {
	l.mu.Lock()
	delete(l.entries, date)
	l.mu.Unlock()
}

func (l *Ledger) lookup(date types.DateString) (entry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	ent, ok := l.entries[date]
	return ent, ok
}

func (l *Ledger) fresh(ent entry) bool {
	return l.clock.Now().Sub(ent.fetchedAt) < l.ttl
}

// rangeFresh reports whether every date in the range has a fresh entry.
// Zero-count dates get sentinel entries during replaceRange, so a fully
// covered range means fresh entries exist for all of it.
func (l *Ledger) rangeFresh(from, to types.DateString) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for date := from; !date.After(to); {
		ent, ok := l.entries[date]
		if !ok || !l.fresh(ent) {
			return false
		}
		next, err := date.AddDays(1)
		if err != nil {
			return false
		}
		date = next
	}
	return true
}

// rangeCached reports whether the range has entries at all, fresh or stale.
func (l *Ledger) rangeCached(from, to types.DateString) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for date := from; !date.After(to); {
		if _, ok := l.entries[date]; !ok {
			return false
		}
		next, err := date.AddDays(1)
		if err != nil {
			return false
		}
		date = next
	}
	return true
}

func (l *Ledger) replaceRange(from, to types.DateString, counts map[types.DateString]int) {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for date := from; !date.After(to); {
		l.entries[date] = entry{count: counts[date], fetchedAt: now}
		next, err := date.AddDays(1)
		if err != nil {
			break
		}
		date = next
	}
}
