package dataset

import (
	"math"
	"testing"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		epoch  int
		expect float64
	}{{0, 0}, {-3, 0}, {10, 0.25}, {40, 1}, {400, 1}}
	for _, test := range tests {
		if got := Progress(test.epoch); got != test.expect {
			t.Error("epoch", test.epoch, "got", got, "expect", test.expect)
		}
	}
}

func TestTruth(t *testing.T) {
	tests := []struct {
		family Family
		x, y   float64
		expect float64
	}{
		{Circles, 0.5, 0.5, 0},
		{Circles, 0.85, 0.5, 1},
		{XOR, 0.2, 0.2, 1},
		{XOR, 0.8, 0.2, 0},
		{Linear, 0.2, 0.8, 1},
		{Linear, 0.8, 0.2, 0},
		{Gauss, 0.7, 0.7, 1},
		{Gauss, 0.3, 0.3, 0},
	}
	for _, test := range tests {
		got, ok := Truth(test.family, test.x, test.y)
		if !ok || got != test.expect {
			t.Errorf("%s (%g,%g) got %g expect %g", test.family, test.x, test.y, got, test.expect)
		}
	}
	if _, ok := Truth(Exclusive, 0.1, 0.1); ok {
		t.Error("expect no truth for exclusive family")
	}
}

func TestPredictBlend(t *testing.T) {
	if p := Predict(XOR, 0.2, 0.2, 0.05, false); p != 0.5 {
		t.Error("below threshold got", p)
	}
	if p := Predict(XOR, 0.2, 0.2, 1, false); p != 1 {
		t.Error("full progress got", p)
	}
	if p := Predict(XOR, 0.8, 0.2, 0.5, false); p != 0.25 {
		t.Error("half progress got", p)
	}
	// spiral never becomes fully confident
	truth, _ := Truth(Spiral, 0.9, 0.1)
	expect := truth*0.7 + 0.5*0.3
	if p := Predict(Spiral, 0.9, 0.1, 1, false); math.Abs(p-expect) > 1e-12 {
		t.Error("spiral got", p, "expect", expect)
	}
	if p := Predict(Exclusive, 0.2, 0.2, 1, false); p != 0.5 {
		t.Error("exclusive got", p)
	}
	if p := Predict(XOR, 0.8, 0.2, 0.3, true); p != 0 {
		t.Error("discretize got", p)
	}
}

func TestHeatmap(t *testing.T) {
	grid := Heatmap(Linear, 1, false, HeatmapSize)
	if len(grid) != HeatmapSize || len(grid[0]) != HeatmapSize {
		t.Fatal("bad grid size", len(grid))
	}
	// cell i=10 j=40 is x=0.2 y=0.8, above the line
	if grid[10][40] != 1 || grid[40][10] != 0 {
		t.Error("got", grid[10][40], grid[40][10])
	}
	for _, row := range Heatmap(Circles, 0, false, 10) {
		for _, v := range row {
			if v != 0.5 || Intensity(v) != 0 {
				t.Fatal("expect uniform uncertainty at epoch 0, got", v)
			}
		}
	}
}
