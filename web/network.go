package web

import (
	"fmt"
	"github.com/jnb666/playground/layout"
	"github.com/jnb666/playground/nnet"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgsvg"
	"image/color"
	"io"
	"math"
)

const (
	neuronRadius   = 18
	particleRadius = 4
	labelOffset    = 40
	trainOpacity   = 0.7
	pausedOpacity  = 0.35
)

var labelFont = font.Font{Typeface: "Liberation", Variant: "Sans"}

// Drawing of the network layout. The canvas origin is at the bottom left so
// y coordinates from the layout are flipped.
type netCanvas struct {
	*vgsvg.Canvas
	height float64
	small  font.Face
	medium font.Face
}

func newNetCanvas(width, height float64) *netCanvas {
	return &netCanvas{
		Canvas: vgsvg.New(vg.Length(width), vg.Length(height)),
		height: height,
		small:  font.DefaultCache.Lookup(labelFont, 9),
		medium: font.DefaultCache.Lookup(labelFont, 12),
	}
}

func (c *netCanvas) point(x, y float64) vg.Point {
	return vg.Point{X: vg.Length(x), Y: vg.Length(c.height - y)}
}

func (c *netCanvas) line(x0, y0, x1, y1, width float64, col color.Color) {
	var p vg.Path
	p.Move(c.point(x0, y0))
	p.Line(c.point(x1, y1))
	c.SetLineWidth(vg.Length(width))
	c.SetColor(col)
	c.Stroke(p)
}

func (c *netCanvas) circle(x, y, r float64, col color.Color) {
	var p vg.Path
	pt := c.point(x, y)
	p.Move(vg.Point{X: pt.X + vg.Length(r), Y: pt.Y})
	p.Arc(pt, vg.Length(r), 0, 2*math.Pi)
	p.Close()
	c.SetColor(col)
	c.Fill(p)
}

// draw text centred at x, y
func (c *netCanvas) text(face font.Face, x, y float64, col color.Color, txt string) {
	w := face.Width(txt)
	pt := c.point(x, y)
	pt.X -= w / 2
	c.SetColor(col)
	c.FillString(face, pt, txt)
}

// NetworkSVG writes the diagram of the network with connections, flow
// particles and neurons drawn in that order.
func NetworkSVG(w io.Writer, net *layout.Network, particles []layout.Particle, s nnet.State, width, height float64) error {
	c := newNetCanvas(width, height)
	opacity := pausedOpacity
	if s.Training {
		opacity = trainOpacity
	}
	for _, conn := range net.Connections {
		thickness := math.Abs(conn.Weight)*2.5 + 0.5
		c.line(conn.From.X, conn.From.Y, conn.To.X, conn.To.Y, thickness, weightColor(conn.Weight, opacity))
	}
	for _, p := range particles {
		x, y := p.Position()
		c.circle(x, y, particleRadius, toNRGBA(primary))
	}
	for _, n := range net.Neurons {
		c.circle(n.X, n.Y, neuronRadius+2, toNRGBA(background))
		c.circle(n.X, n.Y, neuronRadius, neuronColor(n.Value))
		if s.ShowValues {
			c.text(c.small, n.X, n.Y+neuronRadius+12, color.White, fmt.Sprintf("%.2f", n.Value))
		}
	}
	for l := 0; l < net.Layers(); l++ {
		top, ok := net.Neuron(l, 0)
		if !ok {
			continue
		}
		c.text(c.medium, top.X, top.Y-labelOffset, color.White, layerLabel(net, s, l))
	}
	_, err := c.WriteTo(w)
	return err
}

func layerLabel(net *layout.Network, s nnet.State, l int) string {
	switch kind := net.Kind(l); kind {
	case "hidden":
		if l-1 < len(s.Hidden) {
			return fmt.Sprintf("hidden %d: %d %s", l, net.Widths()[l], s.Hidden[l-1].Activation)
		}
		return kind
	case "input":
		return fmt.Sprintf("input: %d", net.Widths()[l])
	default:
		return kind
	}
}
