package backend

import (
	"context"
	"sync"
	"time"
)

// Kind represents the type of event emitted by the kicker.
type Kind int

const (
	KindKickAll Kind = iota
	KindKickN
)

func (k Kind) String() string {
	if k == KindKickN {
		return "kick-n"
	}
	return "kick-all"
}

// Event asks the UI to perturb entries. N is set for KindKickN.
type Event struct {
	Kind Kind
	N    int
}

// Kicker publishes kick events at a fixed interval.
type Kicker struct {
	interval time.Duration
	n        int

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewKicker starts a kicker that emits a KindKickAll event every interval
// and, when n > 0, a KindKickN event for n entries right after it. A
// non-positive interval yields a kicker whose channel is already closed.
func NewKicker(interval time.Duration, n int) *Kicker {
	ctx, cancel := context.WithCancel(context.Background())
	k := &Kicker{
		interval: interval,
		n:        n,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
		done:     make(chan struct{}),
	}

	if interval > 0 {
		k.wg.Add(1)
		go k.run()
	}

	go func() {
		k.wg.Wait()
		close(k.events)
		close(k.done)
	}()

	return k
}

// Events returns the channel of kick events. It is closed after Stop.
func (k *Kicker) Events() <-chan Event {
	return k.events
}

// Stop cancels the kicker.
func (k *Kicker) Stop() {
	k.cancel()
}

// Wait blocks until the ticker goroutine has exited and the events channel
// is closed. Buffered events may still be received after it returns.
func (k *Kicker) Wait() {
	<-k.done
}

func (k *Kicker) run() {
	defer k.wg.Done()

	ticker := time.NewTicker(k.interval)
	defer ticker.Stop()

	for {
		select {
		case <-k.ctx.Done():
			return
		case <-ticker.C:
			if !k.emit(Event{Kind: KindKickAll}) {
				return
			}
			if k.n > 0 && !k.emit(Event{Kind: KindKickN, N: k.n}) {
				return
			}
		}
	}
}

func (k *Kicker) emit(evt Event) bool {
	select {
	case <-k.ctx.Done():
		return false
	case k.events <- evt:
		return true
	}
}
