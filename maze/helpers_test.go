package maze_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazenav/agent"
	"github.com/katalvlaran/mazenav/geometry"
	"github.com/katalvlaran/mazenav/maze"
	"github.com/katalvlaran/mazenav/search"
)

// openLayout is a 100×60 wall-free window with one goal at (80,30).
func openLayout() maze.Layout {
	return maze.Layout{
		Window: geometry.Window{Width: 100, Height: 60},
		Goals:  []geometry.Goal{{Center: geometry.Pt(80, 30), Radius: 5}},
	}
}

func ballAgent(t testing.TB, x, y float64) *agent.Agent {
	t.Helper()
	a, err := agent.New([]agent.Variant{{Orientation: agent.Ball, Width: 10}}, agent.Pose{X: x, Y: y})
	require.NoError(t, err)
	return a
}

// test1Layout is the "Test1" reference map.
func test1Layout() maze.Layout {
	return maze.Layout{
		Window: geometry.Window{Width: 220, Height: 200},
		Walls: []geometry.Segment{
			geometry.Seg(0, 100, 100, 100),
			geometry.Seg(0, 140, 100, 140),
			geometry.Seg(100, 100, 140, 110),
			geometry.Seg(100, 140, 140, 130),
			geometry.Seg(140, 110, 175, 70),
			geometry.Seg(140, 130, 200, 130),
			geometry.Seg(200, 130, 200, 10),
			geometry.Seg(200, 10, 140, 10),
			geometry.Seg(175, 70, 140, 70),
			geometry.Seg(140, 70, 130, 55),
			geometry.Seg(140, 10, 130, 25),
			geometry.Seg(130, 55, 90, 55),
			geometry.Seg(130, 25, 90, 25),
			geometry.Seg(90, 55, 90, 25),
		},
		Goals: []geometry.Goal{{Center: geometry.Pt(110, 40), Radius: 10}},
	}
}

func test1Agent(t testing.TB) *agent.Agent {
	t.Helper()
	a, err := agent.New([]agent.Variant{
		{Orientation: agent.Horizontal, Length: 40, Width: 11},
		{Orientation: agent.Ball, Length: 0, Width: 25},
		{Orientation: agent.Vertical, Length: 40, Width: 11},
	}, agent.Pose{X: 30, Y: 120, Shape: 1})
	require.NoError(t, err)
	return a
}

// relaxDistances computes step distances from the start without BFS.
func relaxDistances(sp search.Space, partial bool) map[search.State]int {
	dist := map[search.State]int{sp.Start(): 0}
	for changed := true; changed; {
		changed = false
		for s, d := range dist {
			for _, n := range sp.Neighbors(s, partial) {
				if cur, ok := dist[n]; !ok || d+1 < cur {
					dist[n] = d + 1
					changed = true
				}
			}
		}
	}
	return dist
}
