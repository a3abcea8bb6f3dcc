// Adapted from laptudirm.com/x/arbiter pkg/eve/stats/elo.go,
// Copyright © 2023 Rak Laptudirm, licensed under the Apache License, Version 2.0
// (http://www.apache.org/licenses/LICENSE-2.0).

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Estimate is an Elo difference with its 95% confidence bounds.
type Estimate struct {
	Lower float64
	Elo   float64
	Upper float64
}

func (e Estimate) String() string {
	return fmt.Sprintf("Elo: %.2f [%.2f, %.2f]", e.Elo, e.Lower, e.Upper)
}

// Elo estimates the rating difference of a player from its wins, draws and losses.
// A perfect or null score has an infinite estimate.
func Elo(ws, ds, ls int) Estimate {
	N := float64(ws + ds + ls) // total number of games

	if N == 0 {
		return Estimate{}
	}

	w := float64(ws) / N // measured win probability
	d := float64(ds) / N // measured draw probability
	l := float64(ls) / N // measured loss probability

	// empirical mean of random variable
	mu := w + d/2

	// standard deviation of the random variable
	sigma := math.Sqrt(w*math.Pow(1-mu, 2)+d*math.Pow(0.5-mu, 2)+l*math.Pow(0-mu, 2)) / math.Sqrt(N)

	muMin := mu + phiInv(0.025)*sigma // lower bound
	muMax := mu + phiInv(0.975)*sigma // upper bound

	return Estimate{
		Lower: scoreToElo(muMin),
		Elo:   scoreToElo(mu),
		Upper: scoreToElo(muMax),
	}
}

func scoreToElo(x float64) float64 {
	switch {
	case x <= 0:
		return math.Inf(-1)
	case x >= 1:
		return math.Inf(1)
	default:
		return -400 * math.Log10(1/x-1)
	}
}

func phiInv(p float64) float64 {
	return distuv.UnitNormal.Quantile(p)
}
