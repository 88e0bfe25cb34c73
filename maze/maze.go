package maze

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mazenav/agent"
	"github.com/katalvlaran/mazenav/geometry"
	"github.com/katalvlaran/mazenav/search"
)

// Build classifies the configuration space of ag inside layout at the
// given granularity.
//
// Grid size: Cols = ⌊(Width−ox)/g⌋+1, Rows = ⌊(Height−oy)/g⌋+1 and one
// layer per agent variant. Grids above MaxCells cells fail with
// ErrGridTooLarge. Layers are classified concurrently; the result does not
// depend on the worker count.
func Build(ag *agent.Agent, layout Layout, granularity float64, opts ...Option) (*Maze, error) {
	// Validate inputs
	if ag == nil {
		return nil, ErrNilAgent
	}
	if granularity <= 0 || math.IsNaN(granularity) || math.IsInf(granularity, 0) {
		return nil, fmt.Errorf("%w: %v", ErrBadGranularity, granularity)
	}
	if layout.Window.Width <= 0 || layout.Window.Height <= 0 {
		return nil, ErrEmptyWindow
	}

	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Align the grid on the start pose unless offsets were given
	start := ag.Start()
	off := geometry.Point{X: math.Mod(start.X, granularity), Y: math.Mod(start.Y, granularity)}
	if o.Offsets != nil {
		off = *o.Offsets
	}

	// Size the grid in float64 first so huge grids are rejected before any
	// int conversion can overflow
	cols := math.Floor((layout.Window.Width-off.X)/granularity) + 1
	rows := math.Floor((layout.Window.Height-off.Y)/granularity) + 1
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("%w: offsets %v leave no cells", ErrOptionViolation, off)
	}
	layers := ag.NumVariants()
	if cells := cols * rows * float64(layers); cells > MaxCells {
		return nil, fmt.Errorf("%w: %gx%gx%d cells at granularity %v (max %d)",
			ErrGridTooLarge, cols, rows, layers, granularity, MaxCells)
	}

	m := &Maze{
		Cols:        int(cols),
		Rows:        int(rows),
		Layers:      layers,
		granularity: granularity,
		offsets:     off,
		agent:       ag,
	}
	m.cells = make([]Cell, m.Cols*m.Rows*m.Layers)

	// Classify every cell
	if err := m.classify(layout, o.Workers); err != nil {
		return nil, err
	}

	// Place the start state
	s, err := m.Index(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfGrid, start)
	}
	if m.Cell(s) == Wall {
		return nil, fmt.Errorf("%w: %v", ErrStartIllegal, start)
	}
	m.start = s
	for _, c := range m.cells {
		if c == Objective {
			m.objectives++
		}
	}

	return m, nil
}

// classify fills m.cells, one goroutine per layer bounded by workers.
// Each layer writes a disjoint slice range.
func (m *Maze) classify(layout Layout, workers int) error {
	buffer := geometry.Buffer(m.granularity)
	var g errgroup.Group
	g.SetLimit(workers)
	for k := 0; k < m.Layers; k++ {
		g.Go(func() error {
			v, err := m.agent.Variant(k)
			if err != nil {
				return err
			}
			for j := 0; j < m.Rows; j++ {
				for i := 0; i < m.Cols; i++ {
					// Place the variant on the grid point and test it
					p := m.Config(search.State{I: i, J: j, K: k})
					shape := agent.Footprint(v, p.X, p.Y)
					c := Free
					switch {
					case !geometry.Legal(shape, layout.Walls, layout.Window, buffer):
						c = Wall
					case geometry.TouchesGoal(shape, layout.Goals):
						c = Objective
					}
					m.cells[m.index(i, j, k)] = c
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// index maps (i, j, k) to the flat cell index.
func (m *Maze) index(i, j, k int) int {
	return (k*m.Rows+j)*m.Cols + i
}

// InBounds reports whether s addresses a grid cell.
func (m *Maze) InBounds(s search.State) bool {
	return s.I >= 0 && s.I < m.Cols && s.J >= 0 && s.J < m.Rows && s.K >= 0 && s.K < m.Layers
}

// Cell returns the class of s; out-of-bounds states are reported as Wall.
func (m *Maze) Cell(s search.State) Cell {
	if !m.InBounds(s) {
		return Wall
	}
	return m.cells[m.index(s.I, s.J, s.K)]
}

// Granularity returns the grid step.
func (m *Maze) Granularity() float64 { return m.granularity }

// Offsets returns the world position of cell (0, 0).
func (m *Maze) Offsets() geometry.Point { return m.offsets }

// Config converts a grid state to the world pose it samples.
func (m *Maze) Config(s search.State) agent.Pose {
	return agent.Pose{
		X:     m.offsets.X + float64(s.I)*m.granularity,
		Y:     m.offsets.Y + float64(s.J)*m.granularity,
		Shape: s.K,
	}
}

// Index converts a world pose to the nearest grid state, or fails when
// that state is outside the grid.
func (m *Maze) Index(p agent.Pose) (search.State, error) {
	s := search.State{
		I: int(math.Round((p.X - m.offsets.X) / m.granularity)),
		J: int(math.Round((p.Y - m.offsets.Y) / m.granularity)),
		K: p.Shape,
	}
	if !m.InBounds(s) {
		return search.State{}, fmt.Errorf("maze: pose %v maps to %v outside %dx%dx%d grid", p, s, m.Cols, m.Rows, m.Layers)
	}
	return s, nil
}

// Poses converts a search path to world poses.
func (m *Maze) Poses(path []search.State) []agent.Pose {
	out := make([]agent.Pose, len(path))
	for i, s := range path {
		out[i] = m.Config(s)
	}
	return out
}

// Start implements search.Space.
func (m *Maze) Start() search.State { return m.start }

// IsObjective implements search.Space. Under partial rules any layer at
// (I, J) may hold the objective.
func (m *Maze) IsObjective(s search.State, partial bool) bool {
	if !partial {
		return m.Cell(s) == Objective
	}
	for k := 0; k < m.Layers; k++ {
		if m.Cell(search.State{I: s.I, J: s.J, K: k}) == Objective {
			return true
		}
	}
	return false
}

// stepOrder is the fixed neighbour order: +I, −I, +J, −J, +K, −K.
// The first four are planar moves; the last two are shape changes.
var stepOrder = [6][3]int{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}

// Neighbors implements search.Space. Partial rules drop shape changes.
func (m *Maze) Neighbors(s search.State, partial bool) []search.State {
	steps := stepOrder[:]
	if partial {
		steps = stepOrder[:4]
	}
	out := make([]search.State, 0, len(steps))
	// Keep in-bounds, non-wall moves in step order
	for _, d := range steps {
		n := search.State{I: s.I + d[0], J: s.J + d[1], K: s.K + d[2]}
		if m.InBounds(n) && m.Cell(n) != Wall {
			out = append(out, n)
		}
	}
	return out
}

// Counts returns the number of Free, Wall and Objective cells.
func (m *Maze) Counts() (free, wall, objective int) {
	for _, c := range m.cells {
		switch c {
		case Wall:
			wall++
		case Objective:
			objective++
		default:
			free++
		}
	}
	return free, wall, objective
}

// HasObjective reports whether any cell touches a goal.
func (m *Maze) HasObjective() bool { return m.objectives > 0 }

// Render draws layer k row by row: '%' wall, '.' objective, ' ' free and
// 'P' for the start cell when it lies on k. Rows end with '\n'.
func (m *Maze) Render(k int) string {
	var b strings.Builder
	b.Grow((m.Cols + 1) * m.Rows)
	for j := 0; j < m.Rows; j++ {
		for i := 0; i < m.Cols; i++ {
			s := search.State{I: i, J: j, K: k}
			if s == m.start {
				b.WriteByte('P')
				continue
			}
			b.WriteByte(m.Cell(s).Byte())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
