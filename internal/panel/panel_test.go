package panel

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeAPI struct {
	mu           sync.Mutex
	items        []Notification
	listErr      error
	listCalls    int
	markReadIDs  []string
	markErr      error
	markAllCalls int
	execResult   string
	execErr      error

	// listGateCall blocks that numbered List call on listGate and makes it
	// return gatedListErr (nil means the normal item set) once released.
	listGateCall  int
	listGate      chan struct{}
	listGateEnter chan struct{}
	gatedListErr  error

	markGate      chan struct{}
	markGateEnter chan struct{}

	execGate      chan struct{}
	execGateEnter chan struct{}
}

func (f *fakeAPI) ListNotifications(ctx context.Context) ([]Notification, error) {
	f.mu.Lock()
	f.listCalls++
	call := f.listCalls
	err := f.listErr
	out := make([]Notification, len(f.items))
	copy(out, f.items)
	f.mu.Unlock()

	if call == f.listGateCall {
		f.listGateEnter <- struct{}{}
		<-f.listGate
		if f.gatedListErr != nil {
			return nil, f.gatedListErr
		}
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (f *fakeAPI) MarkRead(ctx context.Context, id string) error {
	if f.markGateEnter != nil {
		f.markGateEnter <- struct{}{}
		<-f.markGate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markErr != nil {
		return f.markErr
	}
	f.markReadIDs = append(f.markReadIDs, id)
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].IsRead = true
		}
	}
	return nil
}

func (f *fakeAPI) MarkAllRead(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markAllCalls++
	for i := range f.items {
		f.items[i].IsRead = true
	}
	return nil
}

func (f *fakeAPI) ExecuteAction(ctx context.Context, id, actionID string) (string, error) {
	if f.execGateEnter != nil {
		f.execGateEnter <- struct{}{}
		<-f.execGate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.execErr != nil {
		return "", f.execErr
	}
	return f.execResult, nil
}

func (f *fakeAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

func newTestPanel(t *testing.T, api API) *Panel {
	t.Helper()
	p := New(api,
		WithInterval(time.Hour),
		WithRetryInterval(time.Millisecond),
	)
	t.Cleanup(p.Close)
	return p
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestStartFetchesImmediately(t *testing.T) {
	api := &fakeAPI{items: []Notification{
		{ID: "n1", IsRead: false},
		{ID: "n2", IsRead: false},
		{ID: "n3", IsRead: true},
	}}
	p := newTestPanel(t, api)
	p.Start()

	waitFor(t, func() bool { return p.State() == StateLoaded })

	if got := len(p.Snapshot()); got != 3 {
		t.Fatalf("snapshot size = %d, want 3", got)
	}
	if got := p.UnreadCount(); got != 2 {
		t.Fatalf("UnreadCount = %d, want 2", got)
	}
	if got := p.BadgeText(); got != "2 new" {
		t.Fatalf("BadgeText = %q, want %q", got, "2 new")
	}
}

func TestBadgeHiddenWhenNothingUnread(t *testing.T) {
	api := &fakeAPI{items: []Notification{{ID: "n1", IsRead: true}}}
	p := newTestPanel(t, api)
	p.Start()

	waitFor(t, func() bool { return p.State() == StateLoaded })

	if got := p.BadgeText(); got != "" {
		t.Fatalf("BadgeText = %q, want empty", got)
	}
}

func TestMarkAsReadRefetches(t *testing.T) {
	api := &fakeAPI{items: []Notification{
		{ID: "n1", IsRead: false},
		{ID: "n2", IsRead: false},
	}}
	p := newTestPanel(t, api)
	p.Start()
	waitFor(t, func() bool { return p.State() == StateLoaded })
	before := api.calls()

	if err := p.MarkAsRead("n1"); err != nil {
		t.Fatalf("MarkAsRead returned error: %v", err)
	}

	api.mu.Lock()
	marked := len(api.markReadIDs) == 1 && api.markReadIDs[0] == "n1"
	api.mu.Unlock()
	if !marked {
		t.Fatal("server MarkRead was not called with n1")
	}
	if api.calls() <= before {
		t.Fatal("expected a refetch after mark-as-read")
	}
	if got := p.UnreadCount(); got != 1 {
		t.Fatalf("UnreadCount after mark = %d, want 1", got)
	}
}

func TestMarkAllReadClearsBadge(t *testing.T) {
	api := &fakeAPI{items: []Notification{
		{ID: "n1", IsRead: false},
		{ID: "n2", IsRead: false},
	}}
	p := newTestPanel(t, api)
	p.Start()
	waitFor(t, func() bool { return p.State() == StateLoaded })

	if err := p.MarkAllRead(); err != nil {
		t.Fatalf("MarkAllRead returned error: %v", err)
	}
	if got := p.UnreadCount(); got != 0 {
		t.Fatalf("UnreadCount = %d, want 0", got)
	}
	if got := p.BadgeText(); got != "" {
		t.Fatalf("BadgeText = %q, want empty", got)
	}
}

func TestExecuteActionEmitsToastAndRefetches(t *testing.T) {
	api := &fakeAPI{
		items:      []Notification{{ID: "n1", IsRead: false}},
		execResult: "Action executed: view complaint",
	}
	p := newTestPanel(t, api)
	p.Start()
	waitFor(t, func() bool { return p.State() == StateLoaded })
	before := api.calls()

	result, err := p.ExecuteAction("n1", "view_complaint")
	if err != nil {
		t.Fatalf("ExecuteAction returned error: %v", err)
	}
	if result != "Action executed: view complaint" {
		t.Fatalf("unexpected result %q", result)
	}
	if api.calls() <= before {
		t.Fatal("expected a refetch after action")
	}

	select {
	case e := <-p.Events():
		if e.Kind != EventToast {
			t.Fatalf("event kind = %v, want toast", e.Kind)
		}
		if e.Message != result {
			t.Fatalf("toast message = %q, want %q", e.Message, result)
		}
	case <-time.After(time.Second):
		t.Fatal("no toast event received")
	}
}

func TestActionPendingBlocksDuplicate(t *testing.T) {
	api := &fakeAPI{
		execResult:    "Action executed: contact team",
		execGate:      make(chan struct{}),
		execGateEnter: make(chan struct{}, 1),
	}
	p := newTestPanel(t, api)

	done := make(chan error, 1)
	go func() {
		_, err := p.ExecuteAction("n1", "contact_team")
		done <- err
	}()

	<-api.execGateEnter
	if !p.ActionPending("n1", "contact_team") {
		t.Fatal("ActionPending should report true while in flight")
	}
	if _, err := p.ExecuteAction("n1", "contact_team"); !errors.Is(err, ErrOperationInFlight) {
		t.Fatalf("duplicate invocation error = %v, want ErrOperationInFlight", err)
	}

	close(api.execGate)
	if err := <-done; err != nil {
		t.Fatalf("first invocation failed: %v", err)
	}
	if p.ActionPending("n1", "contact_team") {
		t.Fatal("ActionPending should clear after completion")
	}
}

func TestFetchFailureEntersErrorState(t *testing.T) {
	api := &fakeAPI{listErr: errors.New("connection refused")}
	p := newTestPanel(t, api)
	p.Start()

	waitFor(t, func() bool { return p.State() == StateError })

	if api.calls() < 3 {
		t.Fatalf("expected 3 attempts before giving up, got %d", api.calls())
	}
	if p.Err() == nil {
		t.Fatal("Err should expose the failure")
	}

	select {
	case e := <-p.Events():
		if e.Kind != EventError {
			t.Fatalf("event kind = %v, want error", e.Kind)
		}
	case <-time.After(time.Second):
		t.Fatal("no error event received")
	}
}

func TestStructuredAPIErrorIsNotRetried(t *testing.T) {
	api := &fakeAPI{listErr: &APIError{Status: 401, Code: "UNAUTHORIZED", Message: "Invalid token"}}
	p := newTestPanel(t, api)
	p.Start()

	waitFor(t, func() bool { return p.State() == StateError })

	if got := api.calls(); got != 1 {
		t.Fatalf("expected a single attempt for a structured error, got %d", got)
	}
}

func TestCloseDuringMutationDoesNotPanic(t *testing.T) {
	api := &fakeAPI{
		markErr:       &APIError{Status: 500, Code: "INTERNAL", Message: "boom"},
		markGate:      make(chan struct{}),
		markGateEnter: make(chan struct{}, 1),
	}
	p := newTestPanel(t, api)

	done := make(chan error, 1)
	go func() {
		done <- p.MarkAsRead("n1")
	}()

	<-api.markGateEnter
	p.Close()
	close(api.markGate)

	if err := <-done; err == nil {
		t.Fatal("MarkAsRead should report the server failure")
	}
	if e, ok := <-p.Events(); ok {
		t.Fatalf("unexpected event %v after close", e)
	}
}

func TestStaleFailedFetchKeepsFresherData(t *testing.T) {
	api := &fakeAPI{
		items:         []Notification{{ID: "n1", IsRead: false}},
		listGateCall:  1,
		listGate:      make(chan struct{}),
		listGateEnter: make(chan struct{}, 1),
		gatedListErr:  &APIError{Status: 500, Code: "INTERNAL", Message: "boom"},
	}
	p := newTestPanel(t, api)
	p.Start()
	<-api.listGateEnter

	// A newer fetch installs data while the first one is still stuck.
	if err := p.MarkAsRead("n1"); err != nil {
		t.Fatalf("MarkAsRead returned error: %v", err)
	}
	waitFor(t, func() bool { return p.State() == StateLoaded })

	close(api.listGate)

	select {
	case e := <-p.Events():
		t.Fatalf("stale failure surfaced event %v", e)
	case <-time.After(200 * time.Millisecond):
	}
	if got := p.State(); got != StateLoaded {
		t.Fatalf("state = %v, want loaded", got)
	}
	if got := len(p.Snapshot()); got != 1 {
		t.Fatalf("snapshot size = %d, want 1", got)
	}
}

func TestRefetchKeepsPriorSnapshotVisible(t *testing.T) {
	api := &fakeAPI{
		items: []Notification{
			{ID: "n1", IsRead: false},
			{ID: "n2", IsRead: true},
		},
		listGateCall:  2,
		listGate:      make(chan struct{}),
		listGateEnter: make(chan struct{}, 1),
	}
	p := newTestPanel(t, api)
	p.Start()
	waitFor(t, func() bool { return p.State() == StateLoaded })

	p.Refresh()
	<-api.listGateEnter

	if got := p.State(); got != StateLoaded {
		t.Fatalf("state during refetch = %v, want loaded", got)
	}
	if got := len(p.Snapshot()); got != 2 {
		t.Fatalf("snapshot during refetch = %d items, want 2", got)
	}

	close(api.listGate)
}

func TestErrorRecoversOnNextRefresh(t *testing.T) {
	api := &fakeAPI{listErr: errors.New("temporarily down")}
	p := newTestPanel(t, api)
	p.Start()
	waitFor(t, func() bool { return p.State() == StateError })

	api.mu.Lock()
	api.listErr = nil
	api.items = []Notification{{ID: "n1", IsRead: false}}
	api.mu.Unlock()

	p.Refresh()
	waitFor(t, func() bool { return p.State() == StateLoaded })

	if got := p.UnreadCount(); got != 1 {
		t.Fatalf("UnreadCount after recovery = %d, want 1", got)
	}
}
