package deploy

import "time"

// Ticker abstracts time.Ticker so tests can drive pipelines deterministically
// instead of sleeping on wall-clock intervals.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

// Clock produces tickers. The zero-value production clock wraps time.NewTicker.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

type realClock struct{}

// SystemClock is the production clock.
var SystemClock Clock = realClock{}

func (realClock) NewTicker(d time.Duration) Ticker {
	return &realTicker{t: time.NewTicker(d)}
}

type realTicker struct {
	t *time.Ticker
}

func (r *realTicker) Chan() <-chan time.Time { return r.t.C }
func (r *realTicker) Stop()                  { r.t.Stop() }
