package game

// Walk visits every distinct state reachable from the initial state once, breadth
// first, and returns how many there were. visit may be nil.
func Walk(g Game, visit func(State)) (int, error) {
	start := g.InitialState()
	seen := map[StateHash]struct{}{start.Hash(): {}}
	queue := []State{start}

	for len(queue) > 0 {
		state := queue[0]
		queue = queue[1:]
		if visit != nil {
			visit(state)
		}

		for _, move := range g.LegalMoves(state) {
			next, err := g.Apply(state, move)
			if err != nil {
				return 0, err
			}
			if _, ok := seen[next.Hash()]; ok {
				continue
			}
			seen[next.Hash()] = struct{}{}
			queue = append(queue, next)
		}
	}
	return len(seen), nil
}
