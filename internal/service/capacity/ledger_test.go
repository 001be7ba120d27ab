package capacity

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariankubacka/latte-art-bookings-praha/pkg/types"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type fakeStore struct {
	mu     sync.Mutex
	calls  int32
	counts map[types.DateString]int
	err    error
	delay  time.Duration
}

func (s *fakeStore) CountByDateRange(ctx context.Context, from, to types.DateString) (map[types.DateString]int, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make(map[types.DateString]int, len(s.counts))
	for k, v := range s.counts {
		out[k] = v
	}
	return out, nil
}

func (s *fakeStore) setError(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestLedger(store *fakeStore) (*Ledger, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)}
	return NewLedger(store, time.Minute, clock, nopLogger{}), clock
}

func TestGetCount_CachesWithinTTL(t *testing.T) {
	store := &fakeStore{counts: map[types.DateString]int{"2025-07-16": 3}}
	ledger, _ := newTestLedger(store)

	count, err := ledger.GetCount(context.Background(), "2025-07-16")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = ledger.GetCount(context.Background(), "2025-07-16")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	assert.Equal(t, int32(1), atomic.LoadInt32(&store.calls),
		"second read inside the TTL must not hit the store")
}

func TestGetCount_ZeroForCoveredDateWithoutRows(t *testing.T) {
	store := &fakeStore{counts: map[types.DateString]int{}}
	ledger, _ := newTestLedger(store)

	count, err := ledger.GetCount(context.Background(), "2025-07-16")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestGetCount_TTLExpiryRefetches(t *testing.T) {
	store := &fakeStore{counts: map[types.DateString]int{"2025-07-16": 2}}
	ledger, clock := newTestLedger(store)

	_, err := ledger.GetCount(context.Background(), "2025-07-16")
	require.NoError(t, err)

	store.mu.Lock()
	store.counts["2025-07-16"] = 4
	store.mu.Unlock()
	clock.Advance(2 * time.Minute)

	count, err := ledger.GetCount(context.Background(), "2025-07-16")
	require.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.Equal(t, int32(2), atomic.LoadInt32(&store.calls))
}

func TestInvalidate_ForcesRefetch(t *testing.T) {
	store := &fakeStore{counts: map[types.DateString]int{"2025-07-16": 4}}
	ledger, _ := newTestLedger(store)

	_, err := ledger.GetCount(context.Background(), "2025-07-16")
	require.NoError(t, err)

	store.mu.Lock()
	store.counts["2025-07-16"] = 5
	store.mu.Unlock()
	ledger.Invalidate("2025-07-16")

	count, err := ledger.GetCount(context.Background(), "2025-07-16")
	require.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.Equal(t, int32(2), atomic.LoadInt32(&store.calls))
}

func TestGetCount_ServesStaleOnRefreshFailure(t *testing.T) {
	store := &fakeStore{counts: map[types.DateString]int{"2025-07-16": 3}}
	ledger, clock := newTestLedger(store)

	_, err := ledger.GetCount(context.Background(), "2025-07-16")
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)
	store.setError(errors.New("connection refused"))

	count, err := ledger.GetCount(context.Background(), "2025-07-16")
	require.NoError(t, err, "stale data is acceptable on the read path")
	assert.Equal(t, 3, count)
}

func TestGetCount_FailsClosedWithoutCache(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	ledger, _ := newTestLedger(store)

	_, err := ledger.GetCount(context.Background(), "2025-07-16")
	assert.ErrorIs(t, err, ErrCountUnavailable,
		"a failed fetch must never be reported as an empty date")
}

func TestGetCounts_RangeAndOmittedZeroes(t *testing.T) {
	store := &fakeStore{counts: map[types.DateString]int{
		"2025-07-16": 5,
		"2025-07-17": 1,
	}}
	ledger, _ := newTestLedger(store)

	counts, err := ledger.GetCounts(context.Background(), "2025-07-16", "2025-07-18")
	require.NoError(t, err)
	assert.Equal(t, map[types.DateString]int{
		"2025-07-16": 5,
		"2025-07-17": 1,
	}, counts)
	assert.Equal(t, int32(1), atomic.LoadInt32(&store.calls))

	// A second range read inside the TTL is served from cache.
	_, err = ledger.GetCounts(context.Background(), "2025-07-16", "2025-07-18")
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&store.calls))
}

func TestRefresh_ConcurrentCallersCoalesce(t *testing.T) {
	store := &fakeStore{
		counts: map[types.DateString]int{"2025-07-16": 2},
		delay:  50 * time.Millisecond,
	}
	ledger, _ := newTestLedger(store)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := ledger.Refresh(context.Background(), "2025-07-16", "2025-07-18")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&store.calls),
		"concurrent refreshes of one range must share a single store read")
}
