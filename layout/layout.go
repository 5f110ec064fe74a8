// Package layout positions the neurons and connections of a layered
// feedforward network for drawing.
package layout

import (
	"fmt"
	"github.com/jnb666/playground/num"
	"math"
	"math/rand"
	"strings"
)

// Maximum vertical distance between neurons in a layer.
const MaxSpacing = 70

// Neuron is a drawn node. Value is a cosmetic activation in 0.2:1 used for colour intensity.
type Neuron struct {
	X, Y  float64
	Value float64
	Layer int
	Index int
}

// Connection joins neurons in adjacent layers. Weight is cosmetic, in -1:1.
type Connection struct {
	From, To Neuron
	Weight   float64
}

// Network is an immutable snapshot of a computed layout.
type Network struct {
	Neurons     []Neuron
	Connections []Connection
	widths      []int
	offsets     []int
}

// Widths builds the full layer width sequence: input, hidden layers and a single output.
func Widths(inputWidth int, hidden []int) []int {
	widths := make([]int, 0, len(hidden)+2)
	widths = append(widths, inputWidth)
	for _, w := range hidden {
		widths = append(widths, max(w, 0))
	}
	return append(widths, 1)
}

// New computes the layout for a network with inputWidth inputs and the given
// hidden layer sizes on a canvas of width x height with the given padding.
// rng is only used for the cosmetic neuron values and connection weights.
func New(rng *rand.Rand, inputWidth int, hidden []int, width, height, padding float64) *Network {
	if inputWidth < 0 {
		inputWidth = 0
	}
	n := &Network{widths: Widths(inputWidth, hidden)}
	nlayers := len(n.widths)
	layerSpacing := (width - 2*padding) / float64(max(1, nlayers-1))
	maxWidth := num.Max(n.widths...)
	spacing := math.Min(MaxSpacing, (height-2*padding)/float64(maxWidth+1))

	n.offsets = make([]int, nlayers+1)
	for layer, w := range n.widths {
		n.offsets[layer+1] = n.offsets[layer] + w
		startY := (height - float64(w)*spacing) / 2
		for i := 0; i < w; i++ {
			n.Neurons = append(n.Neurons, Neuron{
				X:     padding + float64(layer)*layerSpacing,
				Y:     startY + float64(i+1)*spacing,
				Value: num.Uniform(rng.Float64(), 0.2, 1),
				Layer: layer,
				Index: i,
			})
		}
	}

	n.Connections = make([]Connection, 0, num.SumAdjacent(n.widths))
	for layer := 0; layer+1 < nlayers; layer++ {
		for _, from := range n.Layer(layer) {
			for _, to := range n.Layer(layer + 1) {
				n.Connections = append(n.Connections, Connection{
					From:   from,
					To:     to,
					Weight: num.Uniform(rng.Float64(), -1, 1),
				})
			}
		}
	}
	return n
}

// Widths returns the number of neurons in each layer.
func (n *Network) Widths() []int {
	return append([]int{}, n.widths...)
}

// Layers returns the number of layers including input and output.
func (n *Network) Layers() int { return len(n.widths) }

// Layer returns the neurons in the given layer.
func (n *Network) Layer(i int) []Neuron {
	if i < 0 || i >= len(n.widths) {
		return nil
	}
	return n.Neurons[n.offsets[i]:n.offsets[i+1]]
}

// Output returns the single output neuron.
func (n *Network) Output() Neuron {
	return n.Neurons[len(n.Neurons)-1]
}

// Neuron looks up a neuron by layer and index.
func (n *Network) Neuron(layer, index int) (Neuron, bool) {
	l := n.Layer(layer)
	if index < 0 || index >= len(l) {
		return Neuron{}, false
	}
	return l[index], true
}

// Kind describes the role of a layer: input, hidden or output.
func (n *Network) Kind(layer int) string {
	switch {
	case layer == 0:
		return "input"
	case layer == len(n.widths)-1:
		return "output"
	default:
		return "hidden"
	}
}

func (n *Network) String() string {
	s := make([]string, len(n.widths))
	for i, w := range n.widths {
		s[i] = fmt.Sprintf("%2d: %-6s %d", i, n.Kind(i), w)
	}
	return fmt.Sprintf("== Layout ==\n%s\nneurons=%d connections=%d", strings.Join(s, "\n"), len(n.Neurons), len(n.Connections))
}
