package deploy

import (
	"errors"
	"strconv"
	"sync"
	"time"
)

const (
	// Reference tick periods for the two pipelines.
	WebTickInterval      = 2 * time.Second
	AppStoreTickInterval = 3 * time.Second

	publishedURLPrefix = "https://vibe-code-"
	publishedURLSuffix = ".vercel.app"
)

var ErrNotAwaitingCredentials = errors.New("pipeline is not awaiting credentials")

// WebSnapshot is the externally observable state of a web publish pipeline.
type WebSnapshot struct {
	Phase        WebPhase `json:"-"`
	PhaseName    string   `json:"phase"`
	PublishedURL string   `json:"published_url,omitempty"`
}

// WebPipeline advances idle -> connecting-source-control -> publishing ->
// success, one phase per tick, and stops its ticker on success. Dismiss
// releases the ticker on every other exit path.
type WebPipeline struct {
	mu    sync.Mutex
	phase WebPhase
	url   string

	clock    Clock
	interval time.Duration
	onChange func(WebSnapshot)

	stop     chan struct{}
	stopOnce sync.Once
}

func NewWebPipeline(clock Clock, interval time.Duration, onChange func(WebSnapshot)) *WebPipeline {
	if clock == nil {
		clock = SystemClock
	}
	return &WebPipeline{
		phase:    WebPhaseIdle,
		clock:    clock,
		interval: interval,
		onChange: onChange,
		stop:     make(chan struct{}),
	}
}

// Start begins ticking. It returns immediately; advancement happens on the
// pipeline's own goroutine.
func (p *WebPipeline) Start() {
	go p.run()
}

func (p *WebPipeline) run() {
	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.Chan():
			if done := p.advance(); done {
				return
			}
		case <-p.stop:
			return
		}
	}
}

// advance moves one phase forward and reports whether the machine reached a
// terminal phase.
func (p *WebPipeline) advance() bool {
	p.mu.Lock()
	next, ok := p.phase.Next()
	if !ok {
		p.mu.Unlock()
		return true
	}
	p.phase = next
	if next == WebPhaseSuccess {
		p.url = newPublishedURL(time.Now())
	}
	snap := p.snapshotLocked()
	p.mu.Unlock()

	if p.onChange != nil {
		p.onChange(snap)
	}
	return next.Terminal()
}

func (p *WebPipeline) Snapshot() WebSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *WebPipeline) snapshotLocked() WebSnapshot {
	return WebSnapshot{
		Phase:        p.phase,
		PhaseName:    p.phase.String(),
		PublishedURL: p.url,
	}
}

// Dismiss tears the pipeline down. Safe to call at any point and more than
// once; the ticker goroutine exits and no further state is mutated.
func (p *WebPipeline) Dismiss() {
	p.stopOnce.Do(func() { close(p.stop) })
}

// newPublishedURL derives the deployment URL from the wall clock, the same
// way the hosted simulation does: base-36 encoded millisecond timestamp
// between a fixed prefix and domain suffix.
func newPublishedURL(now time.Time) string {
	token := strconv.FormatInt(now.UnixMilli(), 36)
	return publishedURLPrefix + token + publishedURLSuffix
}

// Credentials is the opaque input collected before an app-store submission.
// It is passed through the submission call and intentionally retained
// nowhere: no field of it is stored on the pipeline or anywhere else.
type Credentials struct {
	AccessToken string
	KeyID       string
	IssuerID    string
	PrivateKey  string
}

// AppStoreSnapshot is the externally observable state of an app-store
// submission pipeline, including per-step presentation states.
type AppStoreSnapshot struct {
	Phase     AppStorePhase `json:"-"`
	PhaseName string        `json:"phase"`
	Steps     []StepInfo    `json:"steps,omitempty"`
}

type StepInfo struct {
	Name  string    `json:"name"`
	State StepState `json:"state"`
}

// AppStorePipeline holds at credentials-pending until Submit, then advances
// queued -> building -> downloading-artifact -> uploading -> success on
// ticks, mirroring the web pipeline's termination and release rules.
type AppStorePipeline struct {
	mu    sync.Mutex
	phase AppStorePhase

	clock    Clock
	interval time.Duration
	onChange func(AppStoreSnapshot)

	stop     chan struct{}
	stopOnce sync.Once
	started  bool
}

func NewAppStorePipeline(clock Clock, interval time.Duration, onChange func(AppStoreSnapshot)) *AppStorePipeline {
	if clock == nil {
		clock = SystemClock
	}
	return &AppStorePipeline{
		phase:    AppStorePhaseCredentialsPending,
		clock:    clock,
		interval: interval,
		onChange: onChange,
		stop:     make(chan struct{}),
	}
}

// Submit is the explicit user event that exits credentials-pending. The
// credentials are accepted as-is and discarded; queued is entered
// immediately and the tick-driven advancement starts.
func (p *AppStorePipeline) Submit(_ Credentials) error {
	p.mu.Lock()
	if p.phase != AppStorePhaseCredentialsPending || p.started {
		p.mu.Unlock()
		return ErrNotAwaitingCredentials
	}
	p.started = true
	p.phase = AppStorePhaseQueued
	snap := p.snapshotLocked()
	p.mu.Unlock()

	if p.onChange != nil {
		p.onChange(snap)
	}
	go p.run()
	return nil
}

func (p *AppStorePipeline) run() {
	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.Chan():
			if done := p.advance(); done {
				return
			}
		case <-p.stop:
			return
		}
	}
}

func (p *AppStorePipeline) advance() bool {
	p.mu.Lock()
	next, ok := p.phase.Next()
	if !ok {
		p.mu.Unlock()
		return true
	}
	p.phase = next
	snap := p.snapshotLocked()
	p.mu.Unlock()

	if p.onChange != nil {
		p.onChange(snap)
	}
	return next.Terminal()
}

func (p *AppStorePipeline) Snapshot() AppStoreSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *AppStorePipeline) snapshotLocked() AppStoreSnapshot {
	snap := AppStoreSnapshot{
		Phase:     p.phase,
		PhaseName: p.phase.String(),
	}
	if p.phase == AppStorePhaseCredentialsPending {
		return snap
	}
	for _, step := range AppStoreSteps {
		snap.Steps = append(snap.Steps, StepInfo{
			Name:  step.String(),
			State: StepStateOf(p.phase, step),
		})
	}
	return snap
}

// Dismiss tears the pipeline down regardless of phase; the ticker (if one
// was ever started) is released.
func (p *AppStorePipeline) Dismiss() {
	p.stopOnce.Do(func() { close(p.stop) })
}
