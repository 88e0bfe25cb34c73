package search_test

import (
	"github.com/katalvlaran/mazenav/search"
)

// gridSpace is a read-only layered ASCII maze used as a test Space.
// layers[k][j][i]: '%' blocked, '.' objective, 'P' start, anything else free.
// Neighbour order is fixed: +I, -I, +J, -J, +K, -K.
type gridSpace struct {
	layers [][]string
	start  search.State
	dup    bool // yield every neighbour twice
}

func newGridSpace(layers ...[]string) *gridSpace {
	g := &gridSpace{layers: layers}
	for k, rows := range layers {
		for j, row := range rows {
			for i := 0; i < len(row); i++ {
				if row[i] == 'P' {
					g.start = search.State{I: i, J: j, K: k}
				}
			}
		}
	}
	return g
}

func (g *gridSpace) cell(s search.State) (byte, bool) {
	if s.K < 0 || s.K >= len(g.layers) {
		return 0, false
	}
	rows := g.layers[s.K]
	if s.J < 0 || s.J >= len(rows) || s.I < 0 || s.I >= len(rows[s.J]) {
		return 0, false
	}
	return rows[s.J][s.I], true
}

func (g *gridSpace) Start() search.State { return g.start }

func (g *gridSpace) IsObjective(s search.State, partial bool) bool {
	if !partial {
		c, ok := g.cell(s)
		return ok && c == '.'
	}
	for k := range g.layers {
		if c, ok := g.cell(search.State{I: s.I, J: s.J, K: k}); ok && c == '.' {
			return true
		}
	}
	return false
}

func (g *gridSpace) Neighbors(s search.State, partial bool) []search.State {
	cands := []search.State{
		{I: s.I + 1, J: s.J, K: s.K},
		{I: s.I - 1, J: s.J, K: s.K},
		{I: s.I, J: s.J + 1, K: s.K},
		{I: s.I, J: s.J - 1, K: s.K},
	}
	if !partial {
		cands = append(cands, search.State{I: s.I, J: s.J, K: s.K + 1}, search.State{I: s.I, J: s.J, K: s.K - 1})
	}
	var out []search.State
	for _, c := range cands {
		if v, ok := g.cell(c); ok && v != '%' {
			out = append(out, c)
			if g.dup {
				out = append(out, c)
			}
		}
	}
	return out
}

// reference distances by Bellman-Ford style relaxation, independent of BFS.
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

// isAdjacent reports whether b is among a's neighbours.
func isAdjacent(sp search.Space, a, b search.State, partial bool) bool {
	for _, n := range sp.Neighbors(a, partial) {
		if n == b {
			return true
		}
	}
	return false
}
