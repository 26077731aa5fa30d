// Package section drives paginated browsing of one catalog section: typed
// search with debounce, incremental page loads and recovery from failed
// fetches. One Fetcher serves one listing surface.
package section

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
)

// DefaultDebounce is how long typed search input settles before a fetch
// fires. Submitting explicitly bypasses it.
const DefaultDebounce = 500 * time.Millisecond

// Source fetches one page of items for a query. Page numbering starts at 1
// and totalPages is the total the query spans.
type Source interface {
	FetchPage(ctx context.Context, query string, page int) (items []models.Item, totalPages int, err error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context, query string, page int) ([]models.Item, int, error)

func (f SourceFunc) FetchPage(ctx context.Context, query string, page int) ([]models.Item, int, error) {
	return f(ctx, query, page)
}

type State string

const (
	StateIdle           State = "idle"
	StateLoadingInitial State = "loading"
	StateLoadingMore    State = "loading_more"
	StateReady          State = "ready"
	StateFailed         State = "failed"
)

// Snapshot is a point-in-time copy of the fetcher. Items is never shared
// with the fetcher's own slice.
type Snapshot struct {
	State      State         `json:"state"`
	Query      string        `json:"query"`
	Items      []models.Item `json:"items"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	HasMore    bool          `json:"has_more"`
	Error      string        `json:"error,omitempty"`
}

// Options tune a Fetcher. The zero value gives the default debounce and no
// change notifications.
type Options struct {
	Debounce time.Duration
	// OnChange is invoked after every state transition, outside the
	// fetcher's lock. Used by the live search feed.
	OnChange func(Snapshot)
}

// Fetcher owns the listing state for one section. All methods are safe for
// concurrent use.
type Fetcher struct {
	src      Source
	debounce time.Duration
	onChange func(Snapshot)

	mu         sync.Mutex
	state      State
	query      string
	items      []models.Item
	page       int
	totalPages int
	lastErr    error
	gen        uint64
	timer      *time.Timer
	closed     bool
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewFetcher(src Source, opts Options) *Fetcher {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Fetcher{
		src:      src,
		debounce: opts.Debounce,
		onChange: opts.OnChange,
		state:    StateIdle,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Snapshot returns a copy of the current listing state.
func (f *Fetcher) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *Fetcher) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:      f.state,
		Query:      f.query,
		Items:      append([]models.Item(nil), f.items...),
		Page:       f.page,
		TotalPages: f.totalPages,
		HasMore:    f.page > 0 && f.page < f.totalPages,
	}
	if f.lastErr != nil {
		snap.Error = f.lastErr.Error()
	}
	return snap
}

// SetSearch records typed input and schedules a first-page fetch once the
// input settles. Each keystroke restarts the debounce window.
func (f *Fetcher) SetSearch(query string) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.query = query
	if f.timer != nil {
		f.timer.Stop()
	}
	f.timer = time.AfterFunc(f.debounce, func() {
		f.mu.Lock()
		if f.closed || f.query != query {
			f.mu.Unlock()
			return
		}
		snap := f.startInitialLocked()
		f.mu.Unlock()
		f.notify(snap)
	})
	f.mu.Unlock()
}

// SubmitSearch runs a first-page fetch for the query immediately,
// cancelling any pending debounce.
func (f *Fetcher) SubmitSearch(query string) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.query = query
	snap := f.startInitialLocked()
	f.mu.Unlock()
	f.notify(snap)
}

// Retry re-runs the failed first-page fetch. It does nothing unless the
// fetcher is in the failed state.
func (f *Fetcher) Retry() {
	f.mu.Lock()
	if f.closed || f.state != StateFailed {
		f.mu.Unlock()
		return
	}
	snap := f.startInitialLocked()
	f.mu.Unlock()
	f.notify(snap)
}

// LoadMore fetches the next page and appends it. A failed append keeps the
// pages already shown.
func (f *Fetcher) LoadMore() {
	f.mu.Lock()
	if f.closed || f.state != StateReady || f.page >= f.totalPages {
		f.mu.Unlock()
		return
	}
	f.state = StateLoadingMore
	f.lastErr = nil
	f.gen++
	gen := f.gen
	query, next := f.query, f.page+1
	snap := f.snapshotLocked()
	f.mu.Unlock()
	f.notify(snap)

	go func() {
		items, totalPages, err := f.src.FetchPage(f.ctx, query, next)

		f.mu.Lock()
		if f.closed || gen != f.gen {
			f.mu.Unlock()
			return
		}
		if err != nil {
			log.Printf("[section.fetcher] ❌ page %d for %q failed: %v", next, query, err)
			f.state = StateReady
			f.lastErr = err
		} else {
			f.items = append(f.items, items...)
			f.page = next
			f.totalPages = totalPages
			f.state = StateReady
		}
		snap := f.snapshotLocked()
		f.mu.Unlock()
		f.notify(snap)
	}()
}

// startInitialLocked begins a fresh first-page fetch for the current query.
// The previous listing is cleared immediately so snapshots taken while
// loading never show another query's items. Bumping the generation makes
// any in-flight result stale. The caller delivers the returned snapshot
// after unlocking, keeping notifications in transition order.
func (f *Fetcher) startInitialLocked() Snapshot {
	f.state = StateLoadingInitial
	f.lastErr = nil
	f.items = nil
	f.page = 0
	f.totalPages = 0
	f.gen++
	gen := f.gen
	query := f.query
	snap := f.snapshotLocked()

	go func() {
		items, totalPages, err := f.src.FetchPage(f.ctx, query, 1)

		f.mu.Lock()
		if f.closed || gen != f.gen {
			f.mu.Unlock()
			return
		}
		if err != nil {
			log.Printf("[section.fetcher] ❌ search %q failed: %v", query, err)
			f.state = StateFailed
			f.lastErr = err
			f.items = nil
			f.page = 0
			f.totalPages = 0
		} else {
			f.state = StateReady
			f.items = items
			f.page = 1
			f.totalPages = totalPages
		}
		snap := f.snapshotLocked()
		f.mu.Unlock()
		f.notify(snap)
	}()
	return snap
}

// Close cancels in-flight fetches and the pending debounce. The fetcher
// accepts no further work afterwards.
func (f *Fetcher) Close() {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.closed = true
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.mu.Unlock()
	f.cancel()
}

func (f *Fetcher) notify(snap Snapshot) {
	if f.onChange != nil {
		f.onChange(snap)
	}
}
