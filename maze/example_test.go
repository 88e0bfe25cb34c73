package maze_test

import (
	"fmt"

	"github.com/katalvlaran/mazenav/agent"
	"github.com/katalvlaran/mazenav/geometry"
	"github.com/katalvlaran/mazenav/maze"
	"github.com/katalvlaran/mazenav/search"
)

// ExampleBuild discretises a small open window for a ball-shaped agent and
// searches it for the goal.
func ExampleBuild() {
	ag, _ := agent.New([]agent.Variant{{Orientation: agent.Ball, Width: 10}}, agent.Pose{X: 20, Y: 30})
	layout := maze.Layout{
		Window: geometry.Window{Width: 100, Height: 60},
		Goals:  []geometry.Goal{{Center: geometry.Pt(80, 30), Radius: 5}},
	}
	m, err := maze.Build(ag, layout, 10)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(m.Render(0))

	res, _ := search.BFS(m)
	fmt.Println(res.Steps(), m.Poses(res.Path)[res.Steps()])
	// Output:
	// %%%%%%%%%%%
	// %%%%%%%%%%%
	// %%      .%%
	// %%P    ..%%
	// %%      .%%
	// %%%%%%%%%%%
	// %%%%%%%%%%%
	// 5 (70, 30, 0)
}
