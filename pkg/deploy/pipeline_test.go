package deploy

import (
	"strings"
	"testing"
	"time"
)

// fakeClock hands out manually driven tickers so pipeline tests never
// sleep on wall-clock intervals.
type fakeClock struct {
	ticks chan time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{ticks: make(chan time.Time, 16)}
}

func (c *fakeClock) NewTicker(time.Duration) Ticker { return &fakeTicker{ch: c.ticks} }

func (c *fakeClock) Tick() { c.ticks <- time.Now() }

type fakeTicker struct {
	ch chan time.Time
}

func (t *fakeTicker) Chan() <-chan time.Time { return t.ch }
func (t *fakeTicker) Stop()                  {}

func awaitWebSnapshot(t *testing.T, ch <-chan WebSnapshot) WebSnapshot {
	t.Helper()
	select {
	case snap := <-ch:
		return snap
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for pipeline snapshot")
		return WebSnapshot{}
	}
}

func awaitAppStoreSnapshot(t *testing.T, ch <-chan AppStoreSnapshot) AppStoreSnapshot {
	t.Helper()
	select {
	case snap := <-ch:
		return snap
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for pipeline snapshot")
		return AppStoreSnapshot{}
	}
}

func TestWebPipelineAdvancesToSuccess(t *testing.T) {
	clock := newFakeClock()
	changes := make(chan WebSnapshot, 16)

	p := NewWebPipeline(clock, WebTickInterval, func(snap WebSnapshot) { changes <- snap })
	p.Start()

	clock.Tick()
	snap := awaitWebSnapshot(t, changes)
	if snap.Phase != WebPhaseConnectingSourceControl {
		t.Fatalf("after tick 1: phase = %v, want %v", snap.Phase, WebPhaseConnectingSourceControl)
	}
	if snap.PublishedURL != "" {
		t.Errorf("url set before success: %q", snap.PublishedURL)
	}

	clock.Tick()
	snap = awaitWebSnapshot(t, changes)
	if snap.Phase != WebPhasePublishing {
		t.Fatalf("after tick 2: phase = %v, want %v", snap.Phase, WebPhasePublishing)
	}

	clock.Tick()
	snap = awaitWebSnapshot(t, changes)
	if snap.Phase != WebPhaseSuccess {
		t.Fatalf("after tick 3: phase = %v, want %v", snap.Phase, WebPhaseSuccess)
	}
	if !strings.HasPrefix(snap.PublishedURL, "https://vibe-code-") || !strings.HasSuffix(snap.PublishedURL, ".vercel.app") {
		t.Errorf("unexpected published url %q", snap.PublishedURL)
	}

	// Terminal: further ticks must not produce snapshots.
	clock.Tick()
	select {
	case snap := <-changes:
		t.Fatalf("unexpected snapshot after success: %+v", snap)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestWebPipelineDismissStopsAdvancement(t *testing.T) {
	clock := newFakeClock()
	changes := make(chan WebSnapshot, 16)

	p := NewWebPipeline(clock, WebTickInterval, func(snap WebSnapshot) { changes <- snap })
	p.Start()

	clock.Tick()
	awaitWebSnapshot(t, changes)

	p.Dismiss()
	p.Dismiss() // idempotent

	// Give the run goroutine a moment to observe the stop.
	time.Sleep(20 * time.Millisecond)
	clock.Tick()
	select {
	case snap := <-changes:
		t.Fatalf("unexpected snapshot after dismiss: %+v", snap)
	case <-time.After(50 * time.Millisecond):
	}

	if got := p.Snapshot().Phase; got != WebPhaseConnectingSourceControl {
		t.Errorf("phase mutated after dismiss: %v", got)
	}
}

func TestAppStorePipelineHoldsUntilSubmit(t *testing.T) {
	clock := newFakeClock()
	changes := make(chan AppStoreSnapshot, 16)

	p := NewAppStorePipeline(clock, AppStoreTickInterval, func(snap AppStoreSnapshot) { changes <- snap })

	// Ticks before Submit change nothing; there is no ticker yet.
	clock.Tick()
	select {
	case snap := <-changes:
		t.Fatalf("unexpected snapshot before submit: %+v", snap)
	case <-time.After(50 * time.Millisecond):
	}
	if got := p.Snapshot().Phase; got != AppStorePhaseCredentialsPending {
		t.Fatalf("phase = %v, want credentials-pending", got)
	}
	if steps := p.Snapshot().Steps; steps != nil {
		t.Errorf("steps shown while credentials pending: %+v", steps)
	}

	if err := p.Submit(Credentials{AccessToken: "t", KeyID: "k", IssuerID: "i", PrivateKey: "p"}); err != nil {
		t.Fatalf("Submit() error: %v", err)
	}

	// Queued is entered immediately, before any tick.
	snap := awaitAppStoreSnapshot(t, changes)
	if snap.Phase != AppStorePhaseQueued {
		t.Fatalf("after submit: phase = %v, want queued", snap.Phase)
	}

	// A second submission is rejected.
	if err := p.Submit(Credentials{}); err != ErrNotAwaitingCredentials {
		t.Errorf("second Submit() = %v, want ErrNotAwaitingCredentials", err)
	}

	// One leftover pre-submit tick is already buffered; it now drives the
	// first advancement.
	want := []AppStorePhase{
		AppStorePhaseBuilding,
		AppStorePhaseDownloadingArtifact,
		AppStorePhaseUploading,
		AppStorePhaseSuccess,
	}
	for i, phase := range want {
		if i > 0 {
			clock.Tick()
		}
		snap = awaitAppStoreSnapshot(t, changes)
		if snap.Phase != phase {
			t.Fatalf("advancement %d: phase = %v, want %v", i+1, snap.Phase, phase)
		}
	}

	if len(snap.Steps) != len(AppStoreSteps) {
		t.Fatalf("steps = %d, want %d", len(snap.Steps), len(AppStoreSteps))
	}
	for _, step := range snap.Steps {
		if step.Name != "success" && step.State != StepDone {
			t.Errorf("step %s = %s, want done", step.Name, step.State)
		}
	}
}
