package maze

import (
	"fmt"
	"runtime"

	"github.com/katalvlaran/mazenav/agent"
	"github.com/katalvlaran/mazenav/geometry"
	"github.com/katalvlaran/mazenav/search"
)

// Cell classifies one configuration.
type Cell uint8

const (
	// Free is a legal configuration that does not touch a goal.
	Free Cell = iota
	// Wall is an illegal configuration (wall contact or outside the window).
	Wall
	// Objective is a legal configuration touching a goal.
	Objective
)

// Byte returns the map character for c: ' ', '%' or '.'.
func (c Cell) Byte() byte {
	switch c {
	case Wall:
		return '%'
	case Objective:
		return '.'
	default:
		return ' '
	}
}

// Layout is the static world: window, walls and goals.
type Layout struct {
	Window geometry.Window
	Walls  []geometry.Segment
	Goals  []geometry.Goal
}

// Option configures Build via functional arguments.
type Option func(*Options)

// Options holds tunables for Build.
type Options struct {
	// Offsets places grid column 0 / row 0. When nil the start pose's
	// remainder modulo the granularity is used, so the start lies on-grid.
	Offsets *geometry.Point

	// Workers bounds the goroutines classifying layers. Must be ≥ 1.
	Workers int

	err error
}

// DefaultOptions returns start-aligned offsets and GOMAXPROCS workers.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}

// WithOffsets fixes the world position of cell (0, 0).
func WithOffsets(x, y float64) Option {
	return func(o *Options) {
		o.Offsets = &geometry.Point{X: x, Y: y}
	}
}

// WithWorkers bounds classification concurrency.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// Maze is an immutable, classified configuration-space grid.
// Cells are stored layer-major, then row-major: ((k·Rows)+j)·Cols + i.
type Maze struct {
	Cols, Rows, Layers int

	granularity float64
	offsets     geometry.Point
	agent       *agent.Agent
	cells       []Cell
	start       search.State
	objectives  int
}
