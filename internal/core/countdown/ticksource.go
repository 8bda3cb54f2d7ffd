package countdown

import (
	"sync"
	"time"
)

// TickSource starts a periodic callback and returns a function that stops it.
// The stop function must be safe to call more than once.
type TickSource interface {
	Start(interval time.Duration, fn func()) (stop func())
}

// TickerSource is a TickSource backed by time.Ticker.
type TickerSource struct {
	dispatch func(func())
}

// NewTickerSource creates a ticker-backed source. When dispatch is not nil
// every callback is handed to it, e.g. to run on the UI thread.
func NewTickerSource(dispatch func(func())) *TickerSource {
	return &TickerSource{dispatch: dispatch}
}

// Start launches the ticking loop.
func (source *TickerSource) Start(interval time.Duration, fn func()) func() {
	stopCh := make(chan struct{})
	var once sync.Once

	go source.run(interval, fn, stopCh)

	return func() {
		once.Do(func() {
			close(stopCh)
		})
	}
}

func (source *TickerSource) run(interval time.Duration, fn func(), stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if source.dispatch != nil {
				source.dispatch(fn)
				continue
			}
			fn()
		}
	}
}
