package dataset

import (
	"github.com/davecgh/go-spew/spew"
	"math/rand"
	"reflect"
	"testing"
)

var allFamilies = []Family{Circles, Spiral, XOR, Gauss, Linear, Exclusive}

func TestRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, family := range allFamilies {
		for noise := 0; noise <= MaxNoise; noise += 5 {
			points := Generate(rng, family, noise, 50)
			if len(points) != NumPoints {
				t.Fatal(family, "got", len(points), "points expect", NumPoints)
			}
			for i, p := range points {
				if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
					t.Errorf("%s noise=%d point %d out of range: %s", family, noise, i, p)
				}
				if p.Label != 0 && p.Label != 1 {
					t.Errorf("%s point %d invalid label: %d", family, i, p.Label)
				}
			}
		}
	}
}

func TestSplit(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for ratio := MinRatio; ratio <= MaxRatio; ratio += 10 {
		points := Generate(rng, Circles, 10, ratio)
		expect := NumPoints * ratio / 100
		train := 0
		for i, p := range points {
			if !p.Test {
				train++
				if i >= expect {
					t.Errorf("ratio %d: training point at index %d after test points", ratio, i)
				}
			}
		}
		if train != expect {
			t.Error("ratio", ratio, "got", train, "training points expect", expect)
		}
	}
}

func TestRatioClamped(t *testing.T) {
	if n := TrainCount(NumPoints, 0); n != 20 {
		t.Error("got", n, "expect", 20)
	}
	if n := TrainCount(NumPoints, 150); n != 180 {
		t.Error("got", n, "expect", 180)
	}
}

func TestXORQuadrants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, p := range Generate(rng, XOR, 0, 50) {
		expect := 0
		if (p.X > 0.5 && p.Y > 0.5) || (p.X < 0.5 && p.Y < 0.5) {
			expect = 1
		}
		if p.Label != expect {
			t.Error("point", p, "expect label", expect)
		}
	}
}

func TestLinearNoiseFree(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, p := range Generate(rng, Linear, 0, 50) {
		if (p.Y > p.X) != (p.Label == 1) {
			t.Error("point", p, "on wrong side of y=x")
		}
	}
}

func TestUnknownIsLinear(t *testing.T) {
	a := Generate(rand.New(rand.NewSource(9)), Exclusive, 20, 50)
	b := Generate(rand.New(rand.NewSource(9)), Linear, 20, 50)
	if !reflect.DeepEqual(a, b) {
		t.Error("exclusive family should use the linear generator")
	}
}

func TestSpiralParity(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i, p := range Generate(rng, Spiral, 30, 50) {
		if p.Label != i%2 {
			t.Error("point", i, "got label", p.Label)
		}
	}
}

func TestCirclesRings(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	counts := [2]int{}
	for i, p := range Generate(rng, Circles, 0, 50) {
		dx, dy := p.X-0.5, p.Y-0.5
		r2 := dx*dx + dy*dy
		counts[p.Label]++
		if p.Label == 1 && (r2 < 0.36*0.36-1e-9 || r2 > 0.48*0.48+1e-9) {
			t.Error("outer point", i, "radius out of range", p)
		}
		if p.Label == 0 && (r2 < 0.08*0.08-1e-9 || r2 > 0.20*0.20+1e-9) {
			t.Error("inner point", i, "radius out of range", p)
		}
	}
	if counts[0] == 0 || counts[1] == 0 {
		t.Error("expect both rings populated, got", counts)
	}
}

func TestGaussClamped(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for _, p := range Generate(rng, Gauss, MaxNoise, 50) {
		if p.X < 0.05 || p.X > 0.95 || p.Y < 0.05 || p.Y > 0.95 {
			t.Error("point", p, "not clamped")
		}
	}
}

func TestSeeded(t *testing.T) {
	for _, family := range allFamilies {
		a := Generate(rand.New(rand.NewSource(99)), family, 25, 70)
		b := Generate(rand.New(rand.NewSource(99)), family, 25, 70)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("%s: same seed gave different output\n%s", family, spew.Sdump(a[:3], b[:3]))
		}
	}
}

func TestSet(t *testing.T) {
	points := []Point{{X: 0.1, Y: 0.2, Label: 1}, {X: 0.5, Y: 0.25, Test: true}}
	s := Set{Points: points, Features: []func(x, y float64) float64{
		func(x, y float64) float64 { return x },
		func(x, y float64) float64 { return x * y },
	}}
	buf := make([]float32, 4)
	s.Input([]int{0, 1}, buf)
	expect := []float32{0.1, float32(0.1 * 0.2), 0.5, 0.125}
	if !reflect.DeepEqual(buf, expect) {
		t.Error("got", buf, "expect", expect)
	}
	labels := make([]int32, 2)
	s.Label([]int{1, 0}, labels)
	if labels[0] != 0 || labels[1] != 1 {
		t.Error("got labels", labels)
	}
	train, test := s.Split()
	if !reflect.DeepEqual(train, []int{0}) || !reflect.DeepEqual(test, []int{1}) {
		t.Error("split got", train, test)
	}
	rec := s.Record(1)
	expectRec := []string{"0.50000", "0.25000", "0", "true", "0.50000", "0.12500"}
	if len(rec) != len(Header([]string{"x1", "x1x2"})) || !reflect.DeepEqual(rec, expectRec) {
		t.Error("record got", rec)
	}
	if rec = s.Record(0); rec[2] != "1" {
		t.Error("record label got", rec)
	}
	t.Logf("\n%s", s.ASCII(10))
	for _, size := range []int{0, -3} {
		if a := s.ASCII(size); a != "O\n" {
			t.Errorf("size %d got %q", size, a)
		}
	}
}

func BenchmarkGenerate(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < b.N; i++ {
		Generate(rng, Circles, 25, 50)
	}
}
