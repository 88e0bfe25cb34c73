package scene

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazenav/agent"
	"github.com/katalvlaran/mazenav/geometry"
	"github.com/katalvlaran/mazenav/maze"
)

//go:embed schema.json
var schemaJSON []byte

var schemaLoader = gojsonschema.NewBytesLoader(schemaJSON)

// Sentinel errors for scene loading.
var (
	// ErrSyntax indicates the document is not valid YAML.
	ErrSyntax = errors.New("scene: malformed YAML")
	// ErrSchema indicates the document does not match the scene schema.
	ErrSchema = errors.New("scene: schema validation failed")
	// ErrUnknownScene indicates a lookup for a scene name that is not defined.
	ErrUnknownScene = errors.New("scene: unknown scene")
	// ErrInvalid indicates a schema-valid scene that cannot be used.
	ErrInvalid = errors.New("scene: invalid scene")
)

// File is a decoded scene document.
type File struct {
	Scenes map[string]*Scene `yaml:"scenes"`
}

// Scene is one named map plus the agent that navigates it.
type Scene struct {
	Name        string      `yaml:"-"`
	Window      []float64   `yaml:"window"`
	Granularity float64     `yaml:"granularity"`
	Walls       [][]float64 `yaml:"walls"`
	Goals       [][]float64 `yaml:"goals"`
	Start       Start       `yaml:"start"`
	Variants    []Variant   `yaml:"variants"`
}

// Start is the agent's initial centroid and shape name.
type Start struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Shape string  `yaml:"shape"`
}

// Variant is the YAML form of agent.Variant.
type Variant struct {
	Orientation string  `yaml:"orientation"`
	Length      float64 `yaml:"length"`
	Width       float64 `yaml:"width"`
}

// Load reads and parses a scene file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse validates data against the scene schema and decodes it.
func Parse(data []byte) (*File, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if err := validate(doc); err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	for name, s := range f.Scenes {
		s.Name = name
		if _, err := s.Agent(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, name, err)
		}
	}
	return &f, nil
}

// validate checks a generic YAML document against the embedded schema.
func validate(doc interface{}) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return fmt.Errorf("%w: %s", ErrSchema, strings.Join(msgs, "; "))
	}
	return nil
}

// Names returns the scene names in sorted order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Scenes))
	for name := range f.Scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Scene returns the scene called name.
func (f *File) Scene(name string) (*Scene, error) {
	s, ok := f.Scenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownScene, name, f.Names())
	}
	return s, nil
}

// Layout converts the scene's window, walls and goals to geometry values.
func (s *Scene) Layout() maze.Layout {
	l := maze.Layout{
		Window: geometry.Window{Width: s.Window[0], Height: s.Window[1]},
		Walls:  make([]geometry.Segment, len(s.Walls)),
		Goals:  make([]geometry.Goal, len(s.Goals)),
	}
	for i, w := range s.Walls {
		l.Walls[i] = geometry.Seg(w[0], w[1], w[2], w[3])
	}
	for i, g := range s.Goals {
		l.Goals[i] = geometry.Goal{Center: geometry.Pt(g[0], g[1]), Radius: g[2]}
	}
	return l
}

// Agent builds the agent; the start shape is resolved by orientation name
// to the first matching variant.
func (s *Scene) Agent() (*agent.Agent, error) {
	variants := make([]agent.Variant, len(s.Variants))
	shape := -1
	for i, v := range s.Variants {
		o, err := agent.ParseOrientation(v.Orientation)
		if err != nil {
			return nil, err
		}
		variants[i] = agent.Variant{Orientation: o, Length: v.Length, Width: v.Width}
		if shape < 0 && v.Orientation == s.Start.Shape {
			shape = i
		}
	}
	if shape < 0 {
		return nil, fmt.Errorf("start shape %q is not among the variants", s.Start.Shape)
	}
	return agent.New(variants, agent.Pose{X: s.Start.X, Y: s.Start.Y, Shape: shape})
}

// Build discretises the scene at its own granularity.
func (s *Scene) Build(opts ...maze.Option) (*maze.Maze, error) {
	return s.BuildAt(s.Granularity, opts...)
}

// BuildAt discretises the scene at granularity g, overriding the file value.
func (s *Scene) BuildAt(g float64, opts ...maze.Option) (*maze.Maze, error) {
	ag, err := s.Agent()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, s.Name, err)
	}
	return maze.Build(ag, s.Layout(), g, opts...)
}
