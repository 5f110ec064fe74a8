// Package dataset generates the toy 2-D point clouds shown in the playground.
package dataset

import (
	"fmt"
	"github.com/jnb666/playground/num"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// Number of points in each generated set.
const NumPoints = 200

const (
	MinNoise = 0
	MaxNoise = 50
	MinRatio = 10
	MaxRatio = 90
)

// Family selects the shape of the generated data.
type Family string

const (
	Circles   Family = "circles"
	Spiral    Family = "spiral"
	XOR       Family = "xor"
	Gauss     Family = "gauss"
	Linear    Family = "linear"
	Exclusive Family = "exclusive"
)

var families = []Family{Circles, XOR, Gauss, Spiral, Linear}

// Families returns the selectable dataset families in display order.
func Families() []Family {
	return append([]Family{}, families...)
}

// ParseFamily converts a name to a Family. Any name is accepted, unknown
// families fall back to the linear generator.
func ParseFamily(name string) Family {
	return Family(strings.ToLower(strings.TrimSpace(name)))
}

func (f Family) String() string { return string(f) }

// Point is one labeled sample with coordinates in the unit square.
type Point struct {
	X, Y  float64
	Label int
	Test  bool
}

func (p Point) String() string {
	kind := "train"
	if p.Test {
		kind = "test"
	}
	return fmt.Sprintf("(%.3f,%.3f) %d %s", p.X, p.Y, p.Label, kind)
}

// TrainCount returns the number of training points for the given ratio in percent.
func TrainCount(n, ratio int) int {
	return n * num.Clamp(ratio, MinRatio, MaxRatio) / 100
}

// Generate a new set of NumPoints points of the given family. noise is in the
// range 0-50 and ratio is the percentage of training points 10-90, values
// outside these ranges are clamped. The first points in generation order are
// the training set, the remainder are test points.
func Generate(rng *rand.Rand, family Family, noise, ratio int) []Point {
	noise = num.Clamp(noise, MinNoise, MaxNoise)
	nTrain := TrainCount(NumPoints, ratio)
	points := make([]Point, NumPoints)
	for i := range points {
		p := generatePoint(rng, family, float64(noise)/100, i, NumPoints)
		p.Test = i >= nTrain
		points[i] = p
	}
	return points
}

func generatePoint(rng *rand.Rand, family Family, noise float64, i, n int) Point {
	switch family {
	case Circles:
		angle := 2 * math.Pi * float64(i) / float64(n)
		outer := rng.Float64() > 0.5
		var radius float64
		if outer {
			radius = rng.Float64()*0.12 + 0.36
		} else {
			radius = rng.Float64()*0.12 + 0.08
		}
		jitter := (rng.Float64() - 0.5) * noise * 0.5
		return Point{
			X:     num.Clamp(math.Cos(angle)*radius+0.5+jitter, 0, 1),
			Y:     num.Clamp(math.Sin(angle)*radius+0.5+jitter, 0, 1),
			Label: boolLabel(outer),
		}

	case Spiral:
		t := float64(i) / float64(n)
		r := t * 0.38
		angle := t * math.Pi * 3.5
		jitter := (rng.Float64() - 0.5) * noise * 0.3
		return Point{
			X:     num.Clamp(math.Cos(angle)*r+0.5+jitter, 0, 1),
			Y:     num.Clamp(math.Sin(angle)*r+0.5+jitter, 0, 1),
			Label: i % 2,
		}

	case XOR:
		x := rng.Float64()*0.9 + 0.05
		y := rng.Float64()*0.9 + 0.05
		jitter := (rng.Float64() - 0.5) * noise
		xj, yj := x+jitter, y+jitter
		return Point{X: x, Y: y, Label: boolLabel((xj > 0.5 && yj > 0.5) || (xj < 0.5 && yj < 0.5))}

	case Gauss:
		label := boolLabel(rng.Float64() > 0.5)
		center := 0.35
		if label == 1 {
			center = 0.65
		}
		const spread = 0.15
		x := center + (rng.Float64()-0.5)*spread + (rng.Float64()-0.5)*noise*0.5
		y := center + (rng.Float64()-0.5)*spread + (rng.Float64()-0.5)*noise*0.5
		return Point{X: num.Clamp(x, 0.05, 0.95), Y: num.Clamp(y, 0.05, 0.95), Label: label}

	default:
		x := rng.Float64()*0.9 + 0.05
		y := rng.Float64()*0.9 + 0.05
		jitter := (rng.Float64() - 0.5) * noise * 0.8
		return Point{X: x, Y: y, Label: boolLabel(y > x+jitter)}
	}
}

// Set wraps a generated point slice with the feature transform applied to the inputs.
type Set struct {
	Points   []Point
	Features []func(x, y float64) float64
}

// Len returns the number of points
func (s Set) Len() int { return len(s.Points) }

// Classes returns the label names
func (s Set) Classes() []string { return []string{"0", "1"} }

// Shape of the input vector for each point.
func (s Set) Shape() []int { return []int{len(s.Features)} }

// Label copies the labels for the given point indexes.
func (s Set) Label(index []int, label []int32) {
	for i, ix := range index {
		label[i] = int32(s.Points[ix].Label)
	}
}

// Input fills buf with the feature values for the given point indexes.
func (s Set) Input(index []int, buf []float32) {
	nfeat := len(s.Features)
	for i, ix := range index {
		p := s.Points[ix]
		for j, fn := range s.Features {
			buf[i*nfeat+j] = float32(fn(p.X, p.Y))
		}
	}
}

// Split returns the indexes of the training and test points.
func (s Set) Split() (train, test []int) {
	for i, p := range s.Points {
		if p.Test {
			test = append(test, i)
		} else {
			train = append(train, i)
		}
	}
	return
}

// ASCII renders the points as a character map with size columns, 'o' for
// label 0 and 'x' for label 1. Test points are drawn in upper case.
func (s Set) ASCII(size int) string {
	size = max(size, 1)
	grid := make([][]byte, size)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(".", size))
	}
	for _, p := range s.Points {
		col := num.Clamp(int(p.X*float64(size)), 0, size-1)
		row := num.Clamp(int(p.Y*float64(size)), 0, size-1)
		c := byte('o')
		if p.Label == 1 {
			c = 'x'
		}
		if p.Test {
			c -= 'a' - 'A'
		}
		grid[row][col] = c
	}
	var b strings.Builder
	for _, row := range grid {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}

// Header returns the CSV column names for the given feature ids.
func Header(features []string) []string {
	return append([]string{"x", "y", "label", "test"}, features...)
}

// Record formats point i as a CSV record including the feature columns.
func (s Set) Record(i int) []string {
	p := s.Points[i]
	label := make([]int32, 1)
	s.Label([]int{i}, label)
	input := make([]float32, s.Shape()[0])
	s.Input([]int{i}, input)
	rec := []string{
		strconv.FormatFloat(p.X, 'f', 5, 64),
		strconv.FormatFloat(p.Y, 'f', 5, 64),
		s.Classes()[label[0]],
		strconv.FormatBool(p.Test),
	}
	for _, v := range input {
		rec = append(rec, strconv.FormatFloat(float64(v), 'f', 5, 32))
	}
	return rec
}

func boolLabel(b bool) int {
	if b {
		return 1
	}
	return 0
}
