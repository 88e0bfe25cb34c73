package maze_test

import (
	"testing"

	"github.com/katalvlaran/mazenav/maze"
	"github.com/katalvlaran/mazenav/search"
)

// BenchmarkBuild_Test1 classifies the reference map at granularity 2.
func BenchmarkBuild_Test1(b *testing.B) {
	ag := test1Agent(b)
	layout := test1Layout()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = maze.Build(ag, layout, 2)
	}
}

// BenchmarkSearch_Test1 runs BFS on a prebuilt reference maze.
func BenchmarkSearch_Test1(b *testing.B) {
	m, err := maze.Build(test1Agent(b), test1Layout(), 2)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.BFS(m)
	}
}
