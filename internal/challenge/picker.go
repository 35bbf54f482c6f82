package challenge

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// DefaultAttempts is one fetch plus one retry.
const DefaultAttempts = 2

// ActivitySource fetches one remote activity. Any = no type filter.
type ActivitySource interface {
	Activity(ctx context.Context, category Category) (Challenge, error)
}

// Picker resolves a challenge remotely with retries, then locally.
type Picker struct {
	source   ActivitySource
	attempts uint
	delay    time.Duration
	intn     func(n int) int
}

// Option configures a Picker.
type Option func(*Picker)

// WithAttempts sets the total number of remote fetches (minimum 1).
func WithAttempts(n uint) Option {
	return func(p *Picker) {
		if n > 0 {
			p.attempts = n
		}
	}
}

// WithRetryDelay sets the pause between remote attempts.
func WithRetryDelay(d time.Duration) Option {
	return func(p *Picker) { p.delay = d }
}

// WithRand replaces the uniform index generator; intn(n) must return a
// value in [0, n).
func WithRand(intn func(n int) int) Option {
	return func(p *Picker) { p.intn = intn }
}

// NewPicker creates a picker. A nil source always uses the local table.
func NewPicker(source ActivitySource, opts ...Option) *Picker {
	p := &Picker{
		source:   source,
		attempts: DefaultAttempts,
		intn:     rand.IntN,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Get always returns a displayable challenge: the remote one if any attempt
// succeeds, otherwise a uniform pick from the local bucket for category
// (or from every bucket when category is Any or has no bucket).
func (p *Picker) Get(ctx context.Context, category Category) Challenge {
	if p.source != nil {
		ch, err := p.fetch(ctx, category)
		if err == nil {
			return ch
		}
		log.Printf("challenge: remote unavailable for %q, using local table: %v", category, err)
	}
	return p.Local(category)
}

// Local picks from the local table only.
func (p *Picker) Local(category Category) Challenge {
	candidates := Fallbacks(category)
	if len(candidates) == 0 {
		candidates = AllFallbacks()
	}
	ch := candidates[p.intn(len(candidates))]
	ch.Source = SourceLocal
	return ch
}

func (p *Picker) fetch(ctx context.Context, category Category) (Challenge, error) {
	return backoff.Retry(ctx,
		func() (Challenge, error) {
			ch, err := p.source.Activity(ctx, category)
			if err != nil {
				return Challenge{}, err
			}
			if err := ch.Validate(); err != nil {
				return Challenge{}, err
			}
			if category != Any && ch.Category != category {
				return Challenge{}, fmt.Errorf("%w: got type %s, want %s", ErrMalformed, ch.Category, category)
			}
			ch.Source = SourceRemote
			return ch, nil
		},
		backoff.WithBackOff(backoff.NewConstantBackOff(p.delay)),
		backoff.WithMaxTries(p.attempts),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.Printf("challenge: attempt failed, retrying in %v: %v", next, err)
		}),
	)
}
