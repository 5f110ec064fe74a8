package layout

import (
	"github.com/davecgh/go-spew/spew"
	"math"
	"math/rand"
	"reflect"
	"testing"
)

const (
	width   = 800
	height  = 500
	padding = 80
)

func TestScenario(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	n := New(rng, 2, []int{4, 2}, width, height, padding)
	t.Log(n)
	if w := n.Widths(); !reflect.DeepEqual(w, []int{2, 4, 2, 1}) {
		t.Error("widths got", w)
	}
	if len(n.Neurons) != 9 {
		t.Error("got", len(n.Neurons), "neurons expect 9")
	}
	if len(n.Connections) != 18 {
		t.Error("got", len(n.Connections), "connections expect 18")
	}
	for layer, w := range n.Widths() {
		neurons := n.Layer(layer)
		if len(neurons) != w {
			t.Error("layer", layer, "got", len(neurons), "expect", w)
		}
		for i, nn := range neurons {
			if nn.Layer != layer || nn.Index != i {
				t.Error("bad neuron identity", nn)
			}
			if nn.Value < 0.2 || nn.Value > 1 {
				t.Error("value out of range", nn)
			}
		}
	}
	for _, c := range n.Connections {
		if c.To.Layer != c.From.Layer+1 {
			t.Error("connection skips a layer", c)
		}
		if c.Weight < -1 || c.Weight > 1 {
			t.Error("weight out of range", c)
		}
	}
}

func TestPositions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := New(rng, 2, []int{4, 2}, width, height, padding)
	// 4 layers over 640px
	for layer, x := range []float64{80, 80 + 640.0/3, 80 + 2*640.0/3, 720} {
		for _, nn := range n.Layer(layer) {
			if math.Abs(nn.X-x) > 1e-9 {
				t.Error("layer", layer, "got x", nn.X, "expect", x)
			}
		}
	}
	// spacing = min(70, 340/5) = 68, the 4 wide layer starts at (500-272)/2
	spacing := 68.0
	for i, nn := range n.Layer(1) {
		expect := (height-4*spacing)/2 + float64(i+1)*spacing
		if math.Abs(nn.Y-expect) > 1e-9 {
			t.Error("neuron", i, "got y", nn.Y, "expect", expect)
		}
	}
	out := n.Output()
	if expect := (height-spacing)/2 + spacing; math.Abs(out.Y-expect) > 1e-9 {
		t.Error("output got y", out.Y, "expect", expect)
	}
}

func TestConnectionOrder(t *testing.T) {
	n := New(rand.New(rand.NewSource(3)), 2, []int{3}, width, height, padding)
	var got [][4]int
	for _, c := range n.Connections {
		got = append(got, [4]int{c.From.Layer, c.From.Index, c.To.Layer, c.To.Index})
	}
	expect := [][4]int{
		{0, 0, 1, 0}, {0, 0, 1, 1}, {0, 0, 1, 2},
		{0, 1, 1, 0}, {0, 1, 1, 1}, {0, 1, 1, 2},
		{1, 0, 2, 0}, {1, 1, 2, 0}, {1, 2, 2, 0},
	}
	if !reflect.DeepEqual(got, expect) {
		t.Errorf("connection order\n%s", spew.Sdump(got))
	}
}

func TestNoHidden(t *testing.T) {
	n := New(rand.New(rand.NewSource(4)), 5, nil, width, height, padding)
	if len(n.Connections) != 5 {
		t.Fatal("got", len(n.Connections), "connections expect 5")
	}
	for i, c := range n.Connections {
		if c.From.Layer != 0 || c.From.Index != i || c.To.Layer != 1 || c.To.Index != 0 {
			t.Error("bad connection", c)
		}
	}
}

func TestZeroInputs(t *testing.T) {
	n := New(rand.New(rand.NewSource(5)), 0, []int{3}, width, height, padding)
	if n.Layers() != 3 {
		t.Error("got", n.Layers(), "layers expect 3")
	}
	if len(n.Layer(0)) != 0 || len(n.Neurons) != 4 {
		t.Error("got", len(n.Layer(0)), "inputs", len(n.Neurons), "neurons")
	}
	if len(n.Connections) != 3 {
		t.Error("got", len(n.Connections), "connections expect 3")
	}
	// hidden layer is still the second position
	if x := n.Layer(1)[0].X; x != padding+(width-2*padding)/2 {
		t.Error("hidden layer x got", x)
	}
}

func TestNegativeHidden(t *testing.T) {
	n := New(rand.New(rand.NewSource(5)), 2, []int{-2, 3}, width, height, padding)
	if w := n.Widths(); !reflect.DeepEqual(w, []int{2, 0, 3, 1}) {
		t.Error("widths got", w)
	}
	if len(n.Layer(1)) != 0 || len(n.Layer(2)) != 3 || len(n.Neurons) != 6 {
		t.Error("got", len(n.Layer(1)), len(n.Layer(2)), len(n.Neurons))
	}
	if len(n.Connections) != 3 {
		t.Error("got", len(n.Connections), "connections expect 3")
	}
	if _, ok := n.Neuron(1, 0); ok {
		t.Error("found neuron in empty layer")
	}
}

func TestSingleLayerGuard(t *testing.T) {
	n := New(rand.New(rand.NewSource(6)), 0, nil, width, height, padding)
	if len(n.Neurons) != 1 || len(n.Connections) != 0 {
		t.Fatal("got", len(n.Neurons), len(n.Connections))
	}
	if x := n.Output().X; math.IsNaN(x) || math.IsInf(x, 0) {
		t.Error("output x got", x)
	}
}

func TestCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		in := rng.Intn(8)
		hidden := make([]int, rng.Intn(7))
		for i := range hidden {
			hidden[i] = 1 + rng.Intn(8)
		}
		n := New(rng, in, hidden, width, height, padding)
		widths := Widths(in, hidden)
		total, conns := 0, 0
		for i, w := range widths {
			total += w
			if i > 0 {
				conns += widths[i-1] * w
			}
		}
		if len(n.Neurons) != total || len(n.Connections) != conns {
			t.Error(widths, "got", len(n.Neurons), len(n.Connections), "expect", total, conns)
		}
	}
}

func TestPositionsIgnoreSeed(t *testing.T) {
	pos := func(seed int64) [][2]float64 {
		n := New(rand.New(rand.NewSource(seed)), 3, []int{4, 6, 2}, width, height, padding)
		var p [][2]float64
		for _, nn := range n.Neurons {
			p = append(p, [2]float64{nn.X, nn.Y})
		}
		return p
	}
	if !reflect.DeepEqual(pos(1), pos(1)) || !reflect.DeepEqual(pos(1), pos(2)) {
		t.Error("positions depend on the random source")
	}
	a := New(rand.New(rand.NewSource(8)), 3, []int{4}, width, height, padding)
	b := New(rand.New(rand.NewSource(8)), 3, []int{4}, width, height, padding)
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed gave different layouts")
	}
}

func TestParticles(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	n := New(rng, 2, []int{2}, width, height, padding)
	var ps Particles
	ps.Spawn(rng, n.Connections)
	if ps.Len() != 5 {
		t.Fatal("got", ps.Len(), "particles expect 5")
	}
	ps.Advance(0.5)
	x, y := ps.List[0].Position()
	p := ps.List[0]
	if math.Abs(x-(p.From.X+p.To.X)/2) > 1e-9 || math.Abs(y-(p.From.Y+p.To.Y)/2) > 1e-9 {
		t.Error("midpoint got", x, y)
	}
	ps.Spawn(rng, n.Connections[:2])
	if ps.Len() != 7 {
		t.Error("got", ps.Len(), "expect 7")
	}
	for i := 0; i < 26; i++ {
		ps.Advance(FrameStep)
	}
	if ps.Len() != 2 {
		t.Error("expect first burst removed, got", ps.Len())
	}
	ps.Spawn(rng, nil)
	ps.Clear()
	if ps.Len() != 0 {
		t.Error("clear failed")
	}
}
