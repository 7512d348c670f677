package sigslot

import (
	"github.com/delaneyj/slotparty/pkg/mutex"
)

const (
	// defaultSweepLimit is how many disconnected entries an emission may unlink
	// before it starts invoking slots.
	defaultSweepLimit = 1

	// defaultChurnRatio triggers a full sweep after an emission that found more
	// disconnected entries than this many times the connected ones.
	defaultChurnRatio = 1.0
)

// Option configures a signal at construction.
type Option func(*options)

type options struct {
	combiner   any
	newMutex   mutex.Factory
	onPanic    PanicHandler
	onError    ErrorHandler
	sweepLimit int
	churnRatio float64
}

func defaultOptions() options {
	return options{
		newMutex:   mutex.Real,
		sweepLimit: defaultSweepLimit,
		churnRatio: defaultChurnRatio,
	}
}

// WithCombiner sets the fold applied to slot results. Its result type must
// match the signal's.
func WithCombiner[R any](c Combiner[R]) Option {
	return func(o *options) {
		if c == nil {
			panic("sigslot: nil combiner")
		}
		o.combiner = c
	}
}

// WithMutex chooses the locking policy. mutex.Real is the default;
// mutex.NewNoop confines the signal to a single goroutine.
func WithMutex(f mutex.Factory) Option {
	return func(o *options) {
		if f == nil {
			panic("sigslot: nil mutex factory")
		}
		o.newMutex = f
	}
}

// WithPanicHandler receives panics raised by slot release hooks. Without one
// they are recovered and dropped.
func WithPanicHandler(h PanicHandler) Option {
	return func(o *options) {
		o.onPanic = h
	}
}

// WithErrorHandler is told whenever a slot is disconnected because one of its
// dependencies expired.
func WithErrorHandler(h ErrorHandler) Option {
	return func(o *options) {
		o.onError = h
	}
}

// WithSweepLimit bounds the disconnected entries unlinked at the start of each
// emission. Zero disables the per-emission sweep.
func WithSweepLimit(n int) Option {
	return func(o *options) {
		if n < 0 {
			panic("sigslot: sweep limit must be non-negative")
		}
		o.sweepLimit = n
	}
}

// WithChurnRatio sets when an emission forces a full sweep afterwards: once the
// disconnected entries it walked past exceed ratio times the connected ones.
func WithChurnRatio(ratio float64) Option {
	return func(o *options) {
		if ratio < 0 {
			panic("sigslot: churn ratio must be non-negative")
		}
		o.churnRatio = ratio
	}
}

// Position picks where an ungrouped slot goes, or where a grouped slot goes
// within its group.
type Position uint8

const (
	AtBack Position = iota
	AtFront
)

func position(pos []Position) Position {
	switch len(pos) {
	case 0:
		return AtBack
	case 1:
		return pos[0]
	default:
		panic("sigslot: at most one position")
	}
}
