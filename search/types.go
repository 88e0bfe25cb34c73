package search

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for search execution.
var (
	// ErrSpaceNil is returned if a nil Space is passed.
	ErrSpaceNil = errors.New("search: space is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit is returned when the WithMaxExpansions cap is hit
	// before an objective is found or the frontier empties.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrUnknownMethod is returned by Run for an unsupported Method.
	ErrUnknownMethod = errors.New("search: unknown method")
)

// State is a discrete point of configuration space: grid column I, grid
// row J and shape layer K. States are comparable and used as map keys.
type State struct {
	I, J, K int
}

// String implements fmt.Stringer.
func (s State) String() string {
	return fmt.Sprintf("(%d, %d, %d)", s.I, s.J, s.K)
}

// Space is the contract a maze exposes to the search.
//
// Neighbors must only return legal states. The partial flag selects an
// alternative rule set defined by the implementation.
type Space interface {
	Start() State
	IsObjective(s State, partial bool) bool
	Neighbors(s State, partial bool) []State
}

// Option configures search behavior via functional arguments.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Partial is forwarded to Space.IsObjective and Space.Neighbors.
	Partial bool

	// MaxExpansions, if > 0, caps the number of dequeued states.
	// A value of 0 disables the cap.
	MaxExpansions int

	// OnEnqueue is called when a state enters the frontier.
	OnEnqueue func(s State, depth int)

	// OnDequeue is called when a state leaves the frontier, before the
	// objective test.
	OnDequeue func(s State, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, full rules,
// no expansion cap and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(State, int) {},
		OnDequeue: func(State, int) {},
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

// WithPartialRules makes the search use the space's reduced rule set.
func WithPartialRules(partial bool) Option {
	return func(o *Options) {
		o.Partial = partial
	}
}

// WithMaxExpansions bounds the number of dequeued states.
//
//	n > 0: stop with ErrExpansionLimit once n states were dequeued
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(s State, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(s State, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Result holds the outcome of a search:
//   - Path: states from start to objective inclusive; nil if none reachable.
//   - Explored: number of states dequeued (0 when the start is an objective).
type Result struct {
	Path     []State
	Explored int
}

// Found reports whether an objective was reached.
func (r *Result) Found() bool { return r != nil && r.Path != nil }

// Steps returns the number of moves on Path, or -1 when nothing was found.
func (r *Result) Steps() int {
	if !r.Found() {
		return -1
	}
	return len(r.Path) - 1
}

// Method names a search algorithm for Run.
type Method string

// Supported methods.
const (
	// MethodBFS selects breadth-first search (fewest steps).
	MethodBFS Method = "bfs"
	// MethodDFS selects depth-first search (first path found).
	MethodDFS Method = "dfs"
)
