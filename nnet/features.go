package nnet

import (
	"math"
)

// Feature is an input transform of the point coordinates which can be toggled on or off.
type Feature struct {
	ID      string
	Name    string
	Formula string
	Enabled bool
}

var featureFuncs = map[string]func(x1, x2 float64) float64{
	"x1":    func(x1, x2 float64) float64 { return x1 },
	"x2":    func(x1, x2 float64) float64 { return x2 },
	"x1sq":  func(x1, x2 float64) float64 { return x1 * x1 },
	"x2sq":  func(x1, x2 float64) float64 { return x2 * x2 },
	"x1x2":  func(x1, x2 float64) float64 { return x1 * x2 },
	"sinx1": func(x1, x2 float64) float64 { return math.Sin(x1) },
	"sinx2": func(x1, x2 float64) float64 { return math.Sin(x2) },
}

// DefaultFeatures returns the feature list with only x1 and x2 enabled.
func DefaultFeatures() []Feature {
	return []Feature{
		{ID: "x1", Name: "X₁", Formula: "x1", Enabled: true},
		{ID: "x2", Name: "X₂", Formula: "x2", Enabled: true},
		{ID: "x1sq", Name: "X₁²", Formula: "x1^2"},
		{ID: "x2sq", Name: "X₂²", Formula: "x2^2"},
		{ID: "x1x2", Name: "X₁X₂", Formula: "x1*x2"},
		{ID: "sinx1", Name: "sin(X₁)", Formula: "sin(x1)"},
		{ID: "sinx2", Name: "sin(X₂)", Formula: "sin(x2)"},
	}
}

// Eval computes the feature value at the given point.
func (f Feature) Eval(x1, x2 float64) float64 {
	if fn, ok := featureFuncs[f.ID]; ok {
		return fn(x1, x2)
	}
	return 0
}

// Func returns the transform as a function value.
func (f Feature) Func() func(x1, x2 float64) float64 {
	return f.Eval
}

// Enabled returns the enabled subset of the features in order.
func Enabled(features []Feature) []Feature {
	res := []Feature{}
	for _, f := range features {
		if f.Enabled {
			res = append(res, f)
		}
	}
	return res
}

// SelectFeatures returns a copy of the default features with exactly the given ids enabled.
func SelectFeatures(ids []string) []Feature {
	features := DefaultFeatures()
	for i := range features {
		features[i].Enabled = false
		for _, id := range ids {
			if features[i].ID == id {
				features[i].Enabled = true
			}
		}
	}
	return features
}
