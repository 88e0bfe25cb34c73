package maze

import "errors"

// MaxCells caps Cols×Rows×Layers for a single Maze (one byte per cell).
const MaxCells = 1 << 26

var (
	// ErrNilAgent indicates Build was called without an agent.
	ErrNilAgent = errors.New("maze: agent is nil")
	// ErrBadGranularity indicates a non-positive or non-finite granularity.
	ErrBadGranularity = errors.New("maze: granularity must be positive")
	// ErrEmptyWindow indicates a window without positive width and height.
	ErrEmptyWindow = errors.New("maze: window must have positive width and height")
	// ErrStartOutOfGrid indicates the start pose falls outside the grid.
	ErrStartOutOfGrid = errors.New("maze: start pose is outside the grid")
	// ErrStartIllegal indicates the start pose touches a wall or leaves the window.
	ErrStartIllegal = errors.New("maze: start pose is not legal")
	// ErrGridTooLarge indicates the granularity yields more than MaxCells cells.
	ErrGridTooLarge = errors.New("maze: grid too large")
	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
)
