package dataset

import (
	"math"
)

const (
	// HeatmapSize is the number of cells per side of the decision boundary grid.
	HeatmapSize = 50
	// Epochs after which the simulated boundary is fully formed.
	ConvergeEpochs = 40
	minProgress    = 0.05
	spiralFactor   = 0.7
)

// Progress returns the fraction of simulated learning completed at the given epoch.
func Progress(epoch int) float64 {
	if epoch <= 0 {
		return 0
	}
	return math.Min(float64(epoch)/ConvergeEpochs, 1)
}

// Truth returns the hand coded classifier output for the family at x, y.
// ok is false if there is no classifier for the family.
func Truth(family Family, x, y float64) (val float64, ok bool) {
	switch family {
	case Circles:
		dist := math.Hypot(x-0.5, y-0.5)
		return float64(boolLabel(dist > 0.22 && dist < 0.5)), true
	case XOR:
		return float64(boolLabel((x > 0.5 && y > 0.5) || (x < 0.5 && y < 0.5))), true
	case Linear:
		return float64(boolLabel(y > x)), true
	case Gauss:
		d1 := math.Hypot(x-0.35, y-0.35)
		d2 := math.Hypot(x-0.65, y-0.65)
		return float64(boolLabel(d2 < d1)), true
	case Spiral:
		angle := math.Atan2(y-0.5, x-0.5)
		dist := math.Hypot(x-0.5, y-0.5)
		return float64(boolLabel(math.Mod(angle+dist*15, 2*math.Pi) > math.Pi)), true
	}
	return 0.5, false
}

// Predict blends the truth value toward 0.5 by (1 - progress), so the
// boundary sharpens as progress goes from 0 to 1. With discretize set any
// blended value is snapped to 0 or 1.
func Predict(family Family, x, y, progress float64, discretize bool) float64 {
	if progress <= minProgress {
		return 0.5
	}
	truth, ok := Truth(family, x, y)
	if !ok {
		return 0.5
	}
	if family == Spiral {
		progress *= spiralFactor
	}
	pred := truth*progress + 0.5*(1-progress)
	if discretize && pred != 0.5 {
		return float64(boolLabel(pred > 0.5))
	}
	return pred
}

// Heatmap evaluates Predict over a size x size grid. The result is indexed
// as [i][j] where cell i, j has top left corner at x = i/size, y = j/size.
func Heatmap(family Family, progress float64, discretize bool, size int) [][]float64 {
	grid := make([][]float64, size)
	for i := range grid {
		grid[i] = make([]float64, size)
		for j := range grid[i] {
			x := float64(i) / float64(size)
			y := float64(j) / float64(size)
			grid[i][j] = Predict(family, x, y, progress, discretize)
		}
	}
	return grid
}

// Intensity gives the display opacity for a prediction, 0 at maximum uncertainty.
func Intensity(pred float64) float64 {
	return math.Abs(pred-0.5) * 0.6
}
