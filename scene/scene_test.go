package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazenav/agent"
	"github.com/katalvlaran/mazenav/geometry"
	"github.com/katalvlaran/mazenav/scene"
	"github.com/katalvlaran/mazenav/search"
)

func TestLoad_Testdata(t *testing.T) {
	f, err := scene.Load("testdata/scenes.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"Open", "Test1"}, f.Names())

	s, err := f.Scene("Test1")
	require.NoError(t, err)
	assert.Equal(t, "Test1", s.Name)
	assert.Equal(t, 10.0, s.Granularity)

	l := s.Layout()
	assert.Equal(t, geometry.Window{Width: 220, Height: 200}, l.Window)
	require.Len(t, l.Walls, 14)
	assert.Equal(t, geometry.Seg(140, 110, 175, 70), l.Walls[4])
	assert.Equal(t, []geometry.Goal{{Center: geometry.Pt(110, 40), Radius: 10}}, l.Goals)

	ag, err := s.Agent()
	require.NoError(t, err)
	assert.Equal(t, agent.Pose{X: 30, Y: 120, Shape: 1}, ag.Start())
	assert.Equal(t, agent.Variant{Orientation: agent.Vertical, Length: 40, Width: 11}, ag.Variants()[2])

	m, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, 23, m.Cols)
	assert.Equal(t, 21, m.Rows)
	assert.Equal(t, 3, m.Layers)

	fine, err := s.BuildAt(5)
	require.NoError(t, err)
	assert.Equal(t, 45, fine.Cols)
}

func TestScene_OpenSolves(t *testing.T) {
	f, err := scene.Load("testdata/scenes.yaml")
	require.NoError(t, err)
	s, err := f.Scene("Open")
	require.NoError(t, err)

	m, err := s.Build()
	require.NoError(t, err)
	res, err := search.BFS(m)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Steps())
}

func TestParse_Errors(t *testing.T) {
	const valid = `
scenes:
  A:
    window: [100, 60]
    granularity: 10
    start: {x: 20, y: 30, shape: Ball}
    variants:
      - {orientation: Ball, width: 10}
`
	_, err := scene.Parse([]byte(valid))
	require.NoError(t, err)

	cases := []struct {
		name string
		doc  string
		err  error
	}{
		{"Malformed", "scenes: [unclosed", scene.ErrSyntax},
		{"Empty", "", scene.ErrSchema},
		{"NoScenes", "scenes: {}", scene.ErrSchema},
		{"MissingWindow", `
scenes:
  A:
    granularity: 10
    start: {x: 1, y: 1, shape: Ball}
    variants: [{orientation: Ball, width: 1}]
`, scene.ErrSchema},
		{"ZeroGranularity", `
scenes:
  A:
    window: [10, 10]
    granularity: 0
    start: {x: 1, y: 1, shape: Ball}
    variants: [{orientation: Ball, width: 1}]
`, scene.ErrSchema},
		{"NegativeGoalRadius", `
scenes:
  A:
    window: [10, 10]
    granularity: 1
    goals: [[1, 1, -2]]
    start: {x: 1, y: 1, shape: Ball}
    variants: [{orientation: Ball, width: 1}]
`, scene.ErrSchema},
		{"ShortWall", `
scenes:
  A:
    window: [10, 10]
    granularity: 1
    walls: [[1, 1, 2]]
    start: {x: 1, y: 1, shape: Ball}
    variants: [{orientation: Ball, width: 1}]
`, scene.ErrSchema},
		{"UnknownOrientation", `
scenes:
  A:
    window: [10, 10]
    granularity: 1
    start: {x: 1, y: 1, shape: Ball}
    variants: [{orientation: Diagonal, width: 1}]
`, scene.ErrSchema},
		{"UnknownKey", `
scenes:
  A:
    window: [10, 10]
    granularity: 1
    colour: red
    start: {x: 1, y: 1, shape: Ball}
    variants: [{orientation: Ball, width: 1}]
`, scene.ErrSchema},
		{"StartShapeMissing", `
scenes:
  A:
    window: [10, 10]
    granularity: 1
    start: {x: 1, y: 1, shape: Vertical}
    variants: [{orientation: Ball, width: 1}]
`, scene.ErrInvalid},
		{"BallWithLength", `
scenes:
  A:
    window: [10, 10]
    granularity: 1
    start: {x: 1, y: 1, shape: Ball}
    variants: [{orientation: Ball, length: 3, width: 1}]
`, scene.ErrInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scene.Parse([]byte(tc.doc))
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestFile_UnknownScene(t *testing.T) {
	f, err := scene.Load("testdata/scenes.yaml")
	require.NoError(t, err)
	_, err = f.Scene("Nope")
	assert.ErrorIs(t, err, scene.ErrUnknownScene)

	_, err = scene.Load("testdata/missing.yaml")
	assert.Error(t, err)
}
