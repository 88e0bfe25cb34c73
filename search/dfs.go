package search

import "fmt"

// dfsFrame is one level of the explicit DFS stack: the state, its
// neighbours and the index of the next neighbour to try.
type dfsFrame struct {
	state State
	nbrs  []State
	next  int
}

// dfsWalker encapsulates state during a depth-first run.
type dfsWalker struct {
	space   Space
	opts    Options
	visited map[State]struct{}
	frames  []dfsFrame // current root → state chain
	res     *Result
}

// DFS runs depth-first search on sp from sp.Start(). It stops at the first
// objective it reaches, so the returned Path is valid but not necessarily
// the shortest. Neighbours are tried in the order sp.Neighbors yields them.
//
// Hooks fire in discovery order: OnEnqueue when a state is first reached,
// then OnDequeue as it is expanded. Explored counts expanded states, and
// the start-is-objective and unreachable cases behave as in BFS.
//
// The traversal keeps its own stack, so path length is bounded by memory
// rather than goroutine stack size.
//
// Returns ErrSpaceNil, ErrOptionViolation, ErrExpansionLimit or the
// context error.
func DFS(sp Space, opts ...Option) (*Result, error) {
	// Validate space
	if sp == nil {
		return nil, ErrSpaceNil
	}

	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// A start on an objective needs no expansion
	start := sp.Start()
	if sp.IsObjective(start, o.Partial) {
		return &Result{Path: []State{start}}, nil
	}

	w := &dfsWalker{
		space:   sp,
		opts:    o,
		visited: make(map[State]struct{}),
		res:     &Result{},
	}

	return w.res, w.run(start)
}

// run visits start, then repeatedly advances the top frame to its next
// unvisited neighbour, popping frames whose neighbours are exhausted.
func (w *dfsWalker) run(start State) error {
	found, err := w.visit(start)
	if found || err != nil {
		return err
	}

	for len(w.frames) > 0 {
		top := &w.frames[len(w.frames)-1]
		// Backtrack once every neighbour was tried
		if top.next == len(top.nbrs) {
			w.frames = w.frames[:len(w.frames)-1]
			continue
		}
		nbr := top.nbrs[top.next]
		top.next++
		if _, seen := w.visited[nbr]; seen {
			continue
		}
		if found, err = w.visit(nbr); found || err != nil {
			return err
		}
	}

	return nil
}

// visit expands s: it checks cancellation and the cap, fires the hooks,
// records the path if s is an objective and otherwise pushes a frame.
func (w *dfsWalker) visit(s State) (bool, error) {
	// Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return false, w.opts.Ctx.Err()
	default:
	}
	// Expansion cap
	if w.opts.MaxExpansions > 0 && w.res.Explored >= w.opts.MaxExpansions {
		return false, fmt.Errorf("%w: %d states", ErrExpansionLimit, w.res.Explored)
	}

	depth := len(w.frames)
	w.visited[s] = struct{}{}
	w.opts.OnEnqueue(s, depth)
	w.res.Explored++
	w.opts.OnDequeue(s, depth)

	// Objective reached: the frames plus s are the path
	if w.space.IsObjective(s, w.opts.Partial) {
		path := make([]State, 0, depth+1)
		for _, f := range w.frames {
			path = append(path, f.state)
		}
		w.res.Path = append(path, s)
		return true, nil
	}

	w.frames = append(w.frames, dfsFrame{state: s, nbrs: w.space.Neighbors(s, w.opts.Partial)})

	return false, nil
}
