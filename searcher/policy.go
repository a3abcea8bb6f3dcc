package searcher

import "math"

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

// uct scores the children of one parent: q/n + sqrt(c^2*ln(N)/n).
type uct struct {
	numerator float64
}

func newUCT(cSquared float64, N float64) *uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &uct{numerator: cSquared * math.Log(N)}
}

func (u uct) evaluate(q float64, n float64) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	return q/n + math.Sqrt(u.numerator/n)
}

// reward maps a terminal outcome to [0, 1] for player: 1 for a win, 0.5 for a draw.
func reward(value int8) float64 {
	return (float64(value) + 1) / 2
}
