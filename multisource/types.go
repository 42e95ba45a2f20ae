// Package multisource provides tunable options and error definitions
// for multi-start shortest-distance queries.
package multisource

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/step"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("multisource: invalid option supplied")

// Strategy selects how the per-candidate searches are carried out.
type Strategy int

const (
	// Independent runs one forward search per candidate start.
	Independent Strategy = iota
	// Reverse runs one backward search from the target.
	Reverse
)

// String returns the lower-case strategy name used in configuration.
func (s Strategy) String() string {
	switch s {
	case Independent:
		return "independent"
	case Reverse:
		return "reverse"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps a configuration name back to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "independent":
		return Independent, nil
	case "reverse":
		return Reverse, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
	}
}

// Match is the best candidate found: its start and distance to the target.
type Match struct {
	Start    heightmap.Position
	Distance int
}

// Option configures a query via functional arguments.
type Option func(*Options)

// Options holds parameters for a multi-start query.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Workers bounds concurrent searches under Independent.
	Workers int

	// Strategy picks Independent or Reverse.
	Strategy Strategy

	// Rule is the forward transition rule; Reverse inverts it internally.
	Rule step.Rule

	// Logger receives debug records per query and per candidate.
	Logger *zap.Logger

	err error
}

// DefaultOptions returns Options with background context,
// GOMAXPROCS workers, the Independent strategy, step.Default and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Workers:  runtime.GOMAXPROCS(0),
		Strategy: Independent,
		Rule:     step.Default,
		Logger:   zap.NewNop(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers bounds the number of concurrent searches; n must be >= 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithStrategy selects the evaluation strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != Independent && s != Reverse {
			o.err = fmt.Errorf("%w: unknown %v", ErrOptionViolation, s)
			return
		}
		o.Strategy = s
	}
}

// WithRule replaces the forward transition rule.
func WithRule(r step.Rule) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: Rule cannot be nil", ErrOptionViolation)
			return
		}
		o.Rule = r
	}
}

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
