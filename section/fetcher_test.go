package section

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
)

// pagedSource serves deterministic pages and records every call. Individual
// calls can be parked on a gate to simulate slow replies.
type pagedSource struct {
	mu         sync.Mutex
	totalPages int
	failOn     map[string]error
	gates      map[string]chan struct{}
	calls      []string
}

func newPagedSource(totalPages int) *pagedSource {
	return &pagedSource{
		totalPages: totalPages,
		failOn:     map[string]error{},
		gates:      map[string]chan struct{}{},
	}
}

func key(query string, page int) string { return fmt.Sprintf("%s/%d", query, page) }

// gate makes the call for query/page block until the returned channel is
// closed.
func (s *pagedSource) gate(query string, page int) chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan struct{})
	s.gates[key(query, page)] = ch
	return ch
}

func (s *pagedSource) fail(query string, page int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failOn[key(query, page)] = err
}

func (s *pagedSource) FetchPage(ctx context.Context, query string, page int) ([]models.Item, int, error) {
	s.mu.Lock()
	s.calls = append(s.calls, key(query, page))
	gate := s.gates[key(query, page)]
	err := s.failOn[key(query, page)]
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		}
	}
	if err != nil {
		return nil, 0, err
	}
	return []models.Item{{ID: key(query, page), Name: query}}, s.totalPages, nil
}

func (s *pagedSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func waitForState(t *testing.T, f *Fetcher, want State) Snapshot {
	t.Helper()
	var snap Snapshot
	require.Eventually(t, func() bool {
		snap = f.Snapshot()
		return snap.State == want
	}, 2*time.Second, 5*time.Millisecond, "fetcher never reached %s, last state %s", want, snap.State)
	return snap
}

func TestSubmitSearchLoadsFirstPage(t *testing.T) {
	src := newPagedSource(3)
	f := NewFetcher(src, Options{Debounce: 10 * time.Millisecond})
	defer f.Close()

	f.SubmitSearch("shoes")
	snap := waitForState(t, f, StateReady)

	require.Len(t, snap.Items, 1)
	assert.Equal(t, "shoes/1", snap.Items[0].ID)
	assert.Equal(t, 1, snap.Page)
	assert.Equal(t, 3, snap.TotalPages)
	assert.True(t, snap.HasMore)
}

func TestLoadMoreAppendsAndStopsAtLastPage(t *testing.T) {
	src := newPagedSource(2)
	f := NewFetcher(src, Options{Debounce: 10 * time.Millisecond})
	defer f.Close()

	f.SubmitSearch("shoes")
	waitForState(t, f, StateReady)

	f.LoadMore()
	snap := waitForState(t, f, StateReady)
	require.Eventually(t, func() bool { return len(f.Snapshot().Items) == 2 }, 2*time.Second, 5*time.Millisecond)

	snap = f.Snapshot()
	assert.Equal(t, []string{"shoes/1", "shoes/2"}, []string{snap.Items[0].ID, snap.Items[1].ID})
	assert.Equal(t, 2, snap.Page)
	assert.False(t, snap.HasMore)

	// Past the last page LoadMore is a no-op.
	before := src.callCount()
	f.LoadMore()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, before, src.callCount())
}

func TestDebounceCoalescesTyping(t *testing.T) {
	src := newPagedSource(1)
	f := NewFetcher(src, Options{Debounce: 40 * time.Millisecond})
	defer f.Close()

	f.SetSearch("s")
	f.SetSearch("sh")
	f.SetSearch("sho")
	f.SetSearch("shoe")

	snap := waitForState(t, f, StateReady)
	assert.Equal(t, "shoe", snap.Query)
	assert.Equal(t, 1, src.callCount(), "only the settled query should fetch")
}

func TestSubmitBypassesPendingDebounce(t *testing.T) {
	src := newPagedSource(1)
	f := NewFetcher(src, Options{Debounce: time.Minute})
	defer f.Close()

	f.SetSearch("slow")
	f.SubmitSearch("fast")

	snap := waitForState(t, f, StateReady)
	assert.Equal(t, "fast", snap.Query)

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 1, src.callCount(), "the debounced fetch must not fire after submit")
}

func TestStaleFirstPageIsDropped(t *testing.T) {
	src := newPagedSource(1)
	slow := src.gate("old", 1)

	f := NewFetcher(src, Options{Debounce: 10 * time.Millisecond})
	defer f.Close()

	f.SubmitSearch("old")
	require.Eventually(t, func() bool { return src.callCount() == 1 }, time.Second, time.Millisecond)

	f.SubmitSearch("new")
	waitForState(t, f, StateReady)

	// Releasing the superseded fetch must not overwrite the newer result.
	close(slow)
	time.Sleep(30 * time.Millisecond)

	snap := f.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "new/1", snap.Items[0].ID)
	assert.Equal(t, "new", snap.Query)
}

func TestNewSearchClearsPreviousListing(t *testing.T) {
	src := newPagedSource(3)
	f := NewFetcher(src, Options{Debounce: 10 * time.Millisecond})
	defer f.Close()

	f.SubmitSearch("old")
	waitForState(t, f, StateReady)

	slow := src.gate("new", 1)
	f.SubmitSearch("new")

	// While the new first page is in flight the old listing must be gone.
	snap := waitForState(t, f, StateLoadingInitial)
	assert.Empty(t, snap.Items, "previous query's items must not survive the reset")
	assert.Equal(t, 0, snap.Page)
	assert.Equal(t, 0, snap.TotalPages)
	assert.False(t, snap.HasMore)

	close(slow)
	snap = waitForState(t, f, StateReady)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "new/1", snap.Items[0].ID)
}

func TestFailedFirstPageIsRetryable(t *testing.T) {
	src := newPagedSource(2)
	src.fail("shoes", 1, errors.New("upstream down"))

	f := NewFetcher(src, Options{Debounce: 10 * time.Millisecond})
	defer f.Close()

	f.SubmitSearch("shoes")
	snap := waitForState(t, f, StateFailed)
	assert.Empty(t, snap.Items)
	assert.Contains(t, snap.Error, "upstream down")

	src.fail("shoes", 1, nil)
	f.Retry()
	snap = waitForState(t, f, StateReady)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 1, snap.Page)
}

func TestFailedLoadMoreKeepsItems(t *testing.T) {
	src := newPagedSource(3)
	src.fail("shoes", 2, errors.New("timeout"))

	f := NewFetcher(src, Options{Debounce: 10 * time.Millisecond})
	defer f.Close()

	f.SubmitSearch("shoes")
	waitForState(t, f, StateReady)

	f.LoadMore()
	require.Eventually(t, func() bool {
		snap := f.Snapshot()
		return snap.State == StateReady && snap.Error != ""
	}, 2*time.Second, 5*time.Millisecond)

	snap := f.Snapshot()
	require.Len(t, snap.Items, 1, "already loaded pages survive a failed append")
	assert.Equal(t, 1, snap.Page)
	assert.True(t, snap.HasMore, "the failed page can be requested again")
}

func TestOnChangeObservesTransitions(t *testing.T) {
	src := newPagedSource(1)
	var mu sync.Mutex
	var states []State

	f := NewFetcher(src, Options{
		Debounce: 10 * time.Millisecond,
		OnChange: func(s Snapshot) {
			mu.Lock()
			states = append(states, s.State)
			mu.Unlock()
		},
	})
	defer f.Close()

	f.SubmitSearch("shoes")
	waitForState(t, f, StateReady)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		for _, s := range states {
			if s == StateReady {
				return true
			}
		}
		return false
	}, time.Second, 5*time.Millisecond)
}

func TestLoadingNotificationPrecedesCompletion(t *testing.T) {
	src := newPagedSource(1)
	gate := src.gate("shoes", 1)

	var mu sync.Mutex
	var states []State

	f := NewFetcher(src, Options{
		Debounce: 10 * time.Millisecond,
		OnChange: func(s Snapshot) {
			mu.Lock()
			states = append(states, s.State)
			mu.Unlock()
		},
	})
	defer f.Close()

	// The loading notification is delivered before SubmitSearch returns, so
	// a subscriber can never see the completion first.
	f.SubmitSearch("shoes")
	mu.Lock()
	require.Equal(t, []State{StateLoadingInitial}, states)
	mu.Unlock()

	close(gate)
	waitForState(t, f, StateReady)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(states) == 2
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	assert.Equal(t, []State{StateLoadingInitial, StateReady}, states)
	mu.Unlock()
}

func TestCloseStopsWork(t *testing.T) {
	src := newPagedSource(1)
	gate := src.gate("shoes", 1)
	defer close(gate)

	f := NewFetcher(src, Options{Debounce: 10 * time.Millisecond})
	f.SubmitSearch("shoes")
	require.Eventually(t, func() bool { return src.callCount() == 1 }, time.Second, time.Millisecond)

	f.Close()

	// The cancelled fetch sees ctx.Err and its result is discarded.
	time.Sleep(30 * time.Millisecond)
	snap := f.Snapshot()
	assert.Equal(t, StateLoadingInitial, snap.State)

	f.SubmitSearch("later")
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 1, src.callCount(), "no fetches after Close")
}
