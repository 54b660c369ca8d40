// Package rotator cycles visibility among the fixed testimonial panels on a
// periodic timer, publishing each transition to connected pages.
package rotator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/essenza-parfums/web/internal/domain"
	"github.com/essenza-parfums/web/internal/metrics"
)

// DefaultInterval matches the page's original rotation cadence.
const DefaultInterval = 5 * time.Second

// Rotator owns the rotation cursor and its own timer registration. The cursor
// is only ever moved under the mutex, so ticks and Show calls never race.
type Rotator struct {
	panels   []domain.Testimonial
	interval time.Duration
	clock    clockwork.Clock
	pub      domain.SlidePublisher

	mu      sync.Mutex
	current int
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates a rotator over the given panel sequence. pub may be nil, in
// which case transitions are tracked but not published anywhere.
func New(panels []domain.Testimonial, interval time.Duration, clock clockwork.Clock, pub domain.SlidePublisher) *Rotator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Rotator{
		panels:   panels,
		interval: interval,
		clock:    clock,
		pub:      pub,
	}
}

// Start shows the panel at index 0 and begins the tick loop. An empty panel
// sequence is a configuration error: Start returns domain.ErrNoPanels and the
// rotator never runs. Starting an already-running rotator is a no-op.
func (r *Rotator) Start() error {
	if len(r.panels) == 0 {
		return domain.ErrNoPanels
	}

	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	r.running = true
	r.cancel = cancel
	r.done = done
	r.current = 0
	r.mu.Unlock()

	r.publish(domain.SlideFrame{Index: 0, Total: len(r.panels)})

	go r.run(ctx, done)
	return nil
}

// Stop releases the timer registration and waits for the tick loop to exit.
func (r *Rotator) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	cancel, done := r.cancel, r.done
	r.mu.Unlock()

	cancel()
	<-done
}

// run gets its own done channel so a later Start cannot swap the field out
// from under the closing defer.
func (r *Rotator) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := r.clock.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			frame := r.Advance()
			metrics.RotatorTicks.Inc()
			slog.Debug("Rotator: advanced", "index", frame.Index, "total", frame.Total)
		}
	}
}

// Advance moves the cursor to (current+1) mod len and publishes the new frame.
func (r *Rotator) Advance() domain.SlideFrame {
	r.mu.Lock()
	if len(r.panels) == 0 {
		r.mu.Unlock()
		return domain.SlideFrame{}
	}
	r.current = (r.current + 1) % len(r.panels)
	frame := domain.SlideFrame{Index: r.current, Total: len(r.panels)}
	r.mu.Unlock()

	r.publish(frame)
	return frame
}

// Show moves the cursor directly to index. Out-of-range indexes are ignored.
// Showing the already-visible panel republishes the same frame, leaving the
// visibility state unchanged.
func (r *Rotator) Show(index int) {
	r.mu.Lock()
	if index < 0 || index >= len(r.panels) {
		r.mu.Unlock()
		return
	}
	r.current = index
	frame := domain.SlideFrame{Index: index, Total: len(r.panels)}
	r.mu.Unlock()

	r.publish(frame)
}

// Current returns the index of the currently visible panel.
func (r *Rotator) Current() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Len returns the length of the fixed panel sequence.
func (r *Rotator) Len() int {
	return len(r.panels)
}

func (r *Rotator) publish(frame domain.SlideFrame) {
	if r.pub != nil {
		r.pub.PublishSlide(frame)
	}
}

// RenderState reports per-panel visibility for a cursor position: exactly one
// true entry (the cursor) when 0 <= current < n, all false otherwise. It is a
// pure function so the decision logic can be tested without a rendering
// environment; applying the visibility is the publisher's concern.
func RenderState(current, n int) []bool {
	if n <= 0 {
		return nil
	}
	state := make([]bool, n)
	if current >= 0 && current < n {
		state[current] = true
	}
	return state
}
