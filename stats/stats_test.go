package stats

import (
	"math"
	"testing"
)

func TestHistoryBounded(t *testing.T) {
	var h History
	for epoch := 1; epoch <= 250; epoch++ {
		prev := h
		h = h.Add(Entry{Epoch: epoch, TrainLoss: 1 / float64(epoch)}, HistorySize)
		if len(prev) > 0 && prev[len(prev)-1].Epoch != epoch-1 {
			t.Fatal("previous history was modified")
		}
	}
	if len(h) != HistorySize {
		t.Fatal("got", len(h), "entries expect", HistorySize)
	}
	if h[0].Epoch != 51 {
		t.Error("oldest entry got epoch", h[0].Epoch, "expect 51")
	}
	latest := h.Latest(3)
	if len(latest) != 3 || latest[0].Epoch != 250 || latest[2].Epoch != 248 {
		t.Error("latest got", latest)
	}
}

func TestEmpty(t *testing.T) {
	var h History
	if l := h.Latest(5); len(l) != 0 {
		t.Error("latest got", l)
	}
	if s := h.Gap().HTML(); s != "-" {
		t.Error("got", s)
	}
}

func TestAverage(t *testing.T) {
	var avg Average
	for _, x := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		avg.Add(x)
	}
	if avg.Mean != 5 {
		t.Error("mean got", avg.Mean)
	}
	if expect := math.Sqrt(32.0 / 7); math.Abs(avg.StdDev-expect) > 1e-9 {
		t.Error("stddev got", avg.StdDev, "expect", expect)
	}
	t.Log(avg.HTML())
}

func TestSmoothed(t *testing.T) {
	h := History{}.Add(Entry{Epoch: 1, TrainLoss: 1, TestLoss: 2}, 10)
	h = h.Add(Entry{Epoch: 2, TrainLoss: 0.5, TestLoss: 1}, 10)
	train, test := h.Smoothed(3)
	if train != 0.75 || test != 1.5 {
		t.Error("got", train, test)
	}
}
