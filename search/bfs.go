package search

import "fmt"

// queueItem pairs a state with its BFS depth.
type queueItem struct {
	state State
	depth int
}

// walker encapsulates mutable BFS state for a single call.
type walker struct {
	space   Space
	opts    Options
	queue   []queueItem
	visited map[State]struct{}
	parent  map[State]State
	res     *Result
}

// BFS runs breadth-first search on sp from sp.Start(), applying any number
// of functional Options.
//
// If the start state is already an objective the result is the one-state
// path and nothing is expanded. If the frontier empties first, the result
// has a nil Path and Explored equals the size of the reachable component.
//
// Returns ErrSpaceNil, ErrOptionViolation, ErrExpansionLimit or the
// context error; the partially filled Result is returned alongside the
// last two.
func BFS(sp Space, opts ...Option) (*Result, error) {
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

	w := &walker{
		space:   sp,
		opts:    o,
		visited: make(map[State]struct{}),
		parent:  make(map[State]State),
		res:     &Result{},
	}
	// Seed the frontier and run
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// Run dispatches to the search named by method.
func Run(sp Space, method Method, opts ...Option) (*Result, error) {
	switch method {
	case MethodBFS:
		return BFS(sp, opts...)
	case MethodDFS:
		return DFS(sp, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

// enqueue marks s visited, calls OnEnqueue and appends it to the frontier.
func (w *walker) enqueue(s State, depth int) {
	w.visited[s] = struct{}{}
	w.opts.OnEnqueue(s, depth)
	w.queue = append(w.queue, queueItem{state: s, depth: depth})
}

// loop processes the frontier until an objective is found, the frontier
// empties, the expansion cap is hit or the context is done.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}
		// Expansion cap
		if w.opts.MaxExpansions > 0 && w.res.Explored >= w.opts.MaxExpansions {
			return fmt.Errorf("%w: %d states", ErrExpansionLimit, w.res.Explored)
		}

		item := w.dequeue()
		if w.space.IsObjective(item.state, w.opts.Partial) {
			w.res.Path = w.pathTo(item.state)
			return nil
		}
		// Enqueue unseen neighbours in the order the space yields them
		for _, nbr := range w.space.Neighbors(item.state, w.opts.Partial) {
			if _, seen := w.visited[nbr]; seen {
				continue
			}
			w.parent[nbr] = item.state
			w.enqueue(nbr, item.depth+1)
		}
	}

	return nil
}

// dequeue pops the first item, counts it and invokes OnDequeue.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.res.Explored++
	w.opts.OnDequeue(item.state, item.depth)
	return item
}

// pathTo walks predecessors back to the start and returns start → dest.
func (w *walker) pathTo(dest State) []State {
	path := []State{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := w.parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// Reverse to start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
