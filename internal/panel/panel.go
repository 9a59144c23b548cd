// Package panel implements the client side of the notification panel:
// a cached snapshot of the user's notifications kept fresh by a 30-second
// poll loop, mutations that invalidate and refetch, and client-side
// category filtering over the held set.
package panel

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// State is the panel's fetch lifecycle. Loading is visible only before
// the first snapshot arrives; once loaded, a refetch keeps the prior
// snapshot and the Loaded state on screen until the new set is installed,
// so the panel never flickers back through Loading.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	}
	return "unknown"
}

// EventKind distinguishes confirmation toasts from error toasts.
type EventKind int

const (
	EventToast EventKind = iota
	EventError
)

// Event is surfaced to whatever renders the toast layer.
type Event struct {
	Kind    EventKind
	Message string
}

// API is the server surface the panel consumes.
type API interface {
	ListNotifications(ctx context.Context) ([]Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	ExecuteAction(ctx context.Context, id, actionID string) (string, error)
}

const (
	// DefaultRefreshInterval matches the panel's automatic refetch cadence.
	DefaultRefreshInterval = 30 * time.Second

	// maxAttempts bounds retries before an operation surfaces its failure.
	maxAttempts = 3

	pendingReadAll = "read-all"
)

// ErrOperationInFlight is returned when the same command is invoked again
// before the previous invocation finished. Callers use the Pending
// accessors to disable the corresponding button instead.
var ErrOperationInFlight = errors.New("operation already in flight")

type Panel struct {
	api           API
	log           *zap.Logger
	interval      time.Duration
	retryInterval time.Duration

	seq atomic.Uint64

	mu      sync.Mutex
	state   State
	items   []Notification
	lastErr error
	applied uint64
	loaded  bool
	pending map[string]bool
	started bool

	evMu     sync.Mutex
	evClosed bool
	events   chan Event

	refresh chan struct{}
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

type Option func(*Panel)

// WithInterval overrides the automatic refresh cadence.
func WithInterval(d time.Duration) Option {
	return func(p *Panel) { p.interval = d }
}

// WithRetryInterval overrides the initial backoff delay.
func WithRetryInterval(d time.Duration) Option {
	return func(p *Panel) { p.retryInterval = d }
}

func WithLogger(log *zap.Logger) Option {
	return func(p *Panel) { p.log = log }
}

func New(api API, opts ...Option) *Panel {
	ctx, cancel := context.WithCancel(context.Background())
	p := &Panel{
		api:           api,
		log:           zap.NewNop(),
		interval:      DefaultRefreshInterval,
		retryInterval: 500 * time.Millisecond,
		state:         StateIdle,
		pending:       make(map[string]bool),
		events:        make(chan Event, 16),
		refresh:       make(chan struct{}, 1),
		ctx:           ctx,
		cancel:        cancel,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start launches the poll loop: an immediate fetch, then one fetch per
// interval regardless of focus, plus manual Refresh triggers.
func (p *Panel) Start() {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return
	}
	p.started = true
	p.mu.Unlock()

	p.wg.Add(1)
	go p.loop()
}

func (p *Panel) loop() {
	defer p.wg.Done()

	p.fetch()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.fetch()
		case <-p.refresh:
			p.fetch()
		}
	}
}

// Refresh requests a manual refetch. Coalesced if one is already queued.
func (p *Panel) Refresh() {
	select {
	case p.refresh <- struct{}{}:
	default:
	}
}

// Close stops the poll loop, cancels in-flight work and closes the event
// channel. Mutations still running on caller goroutines finish normally;
// any events they would emit after this point are dropped. The panel
// cannot be restarted. Safe to call more than once.
func (p *Panel) Close() {
	p.cancel()
	p.wg.Wait()

	p.evMu.Lock()
	defer p.evMu.Unlock()
	if p.evClosed {
		return
	}
	p.evClosed = true
	close(p.events)
}

// Events delivers toast and error notifications for the UI layer.
func (p *Panel) Events() <-chan Event {
	return p.events
}

// fetch retrieves the full set and installs it unless a newer response
// already did. Sequence numbers make last-issued-wins explicit, so a slow
// stale response can never clobber fresher data.
func (p *Panel) fetch() {
	seq := p.seq.Add(1)

	p.mu.Lock()
	if !p.loaded {
		p.state = StateLoading
	}
	p.mu.Unlock()

	var items []Notification
	err := p.retry(func(ctx context.Context) error {
		res, err := p.api.ListNotifications(ctx)
		if err != nil {
			return err
		}
		items = res
		return nil
	})

	p.mu.Lock()
	defer p.mu.Unlock()

	// A response older than the one already installed is stale either way:
	// a late success must not clobber fresher data, and a late failure must
	// not push an error state over data a newer fetch just delivered.
	if seq < p.applied {
		p.log.Debug("discarding stale fetch response", zap.Uint64("seq", seq))
		return
	}

	if err != nil {
		p.state = StateError
		p.lastErr = err
		p.emit(Event{Kind: EventError, Message: "Could not load notifications"})
		p.log.Warn("notification fetch failed", zap.Error(err))
		return
	}

	p.applied = seq
	p.items = items
	p.loaded = true
	p.state = StateLoaded
	p.lastErr = nil
}

// MarkAsRead marks one notification read on the server and refetches.
// No optimistic update: the snapshot changes only after the round-trip.
func (p *Panel) MarkAsRead(id string) error {
	key := "read:" + id
	if !p.beginPending(key) {
		return ErrOperationInFlight
	}
	defer p.endPending(key)

	err := p.retry(func(ctx context.Context) error {
		return p.api.MarkRead(ctx, id)
	})
	if err != nil {
		p.emit(Event{Kind: EventError, Message: "Could not mark notification as read"})
		return err
	}

	p.fetch()
	return nil
}

// MarkAllRead marks every notification read and refetches.
func (p *Panel) MarkAllRead() error {
	if !p.beginPending(pendingReadAll) {
		return ErrOperationInFlight
	}
	defer p.endPending(pendingReadAll)

	err := p.retry(func(ctx context.Context) error {
		return p.api.MarkAllRead(ctx)
	})
	if err != nil {
		p.emit(Event{Kind: EventError, Message: "Could not mark notifications as read"})
		return err
	}

	p.fetch()
	return nil
}

// ExecuteAction runs an attached action, surfaces the server's
// confirmation as a toast and refetches the list.
func (p *Panel) ExecuteAction(id, actionID string) (string, error) {
	key := "action:" + id + ":" + actionID
	if !p.beginPending(key) {
		return "", ErrOperationInFlight
	}
	defer p.endPending(key)

	var result string
	err := p.retry(func(ctx context.Context) error {
		res, err := p.api.ExecuteAction(ctx, id, actionID)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		p.emit(Event{Kind: EventError, Message: "Could not execute action"})
		return "", err
	}

	p.emit(Event{Kind: EventToast, Message: result})
	p.fetch()
	return result, nil
}

// ReadPending reports whether a mark-as-read for id is in flight.
func (p *Panel) ReadPending(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pending["read:"+id]
}

// ActionPending reports whether the given action button should be disabled.
func (p *Panel) ActionPending(id, actionID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pending["action:"+id+":"+actionID]
}

// ReadAllPending reports whether a mark-all-read is in flight.
func (p *Panel) ReadAllPending() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pending[pendingReadAll]
}

// Snapshot returns a copy of the currently held set in fetch order.
func (p *Panel) Snapshot() []Notification {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Notification, len(p.items))
	copy(out, p.items)
	return out
}

// UnreadCount is recomputed from the current snapshot on every call.
func (p *Panel) UnreadCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	count := 0
	for _, n := range p.items {
		if !n.IsRead {
			count++
		}
	}
	return count
}

// BadgeText renders the unread badge ("2 new"); empty when nothing is unread.
func (p *Panel) BadgeText() string {
	count := p.UnreadCount()
	if count == 0 {
		return ""
	}
	return fmt.Sprintf("%d new", count)
}

func (p *Panel) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Panel) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

func (p *Panel) beginPending(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pending[key] {
		return false
	}
	p.pending[key] = true
	return true
}

func (p *Panel) endPending(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.pending, key)
}

// retry runs op with a per-attempt timeout and bounded exponential
// backoff. Structured API errors are permanent: the server answered, so
// repeating the request cannot help.
func (p *Panel) retry(op func(ctx context.Context) error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.retryInterval

	attempt := func() error {
		ctx, cancel := context.WithTimeout(p.ctx, requestTimeout)
		defer cancel()

		err := op(ctx)
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return backoff.Permanent(err)
		}
		return err
	}

	return backoff.Retry(attempt, backoff.WithContext(backoff.WithMaxRetries(bo, maxAttempts-1), p.ctx))
}

// emit drops the event if the consumer is not keeping up or the panel is
// already closed. The send happens under evMu so it can never race the
// close in Close.
func (p *Panel) emit(e Event) {
	p.evMu.Lock()
	defer p.evMu.Unlock()
	if p.evClosed {
		return
	}
	select {
	case p.events <- e:
	default:
	}
}
