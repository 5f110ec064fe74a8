package web

import (
	"github.com/jnb666/playground/dataset"
	"github.com/lucasb-eyer/go-colorful"
	"image/color"
)

// hues for the positive (label 1) and negative (label 0) classes
const (
	huePositive = 220
	hueNegative = 355
)

var (
	white      = colorful.Color{R: 1, G: 1, B: 1}
	background = colorful.Hsl(230, 0.25, 0.12)
	primary    = colorful.Hsl(265, 0.85, 0.65)
)

// colour of a decision boundary cell blended over the background
func boundaryColor(pred float64) color.NRGBA {
	hue := float64(hueNegative)
	if pred > 0.5 {
		hue = huePositive
	}
	c := colorful.Hsl(hue, 0.8, 0.6)
	return toNRGBA(background.BlendRgb(c, dataset.Intensity(pred)))
}

// fill and outline colours for a data point
func pointColors(p dataset.Point) (fill, edge color.NRGBA) {
	f, e := colorful.Hsl(hueNegative, 0.85, 0.6), colorful.Hsl(hueNegative, 0.85, 0.5)
	if p.Label == 1 {
		f, e = colorful.Hsl(huePositive, 0.9, 0.58), colorful.Hsl(huePositive, 0.9, 0.45)
	}
	fill = toNRGBA(f)
	if p.Test {
		fill.A = 128
	}
	return fill, toNRGBA(e)
}

// connection colour by sign of weight
func weightColor(weight, opacity float64) color.NRGBA {
	c := colorful.Hsl(hueNegative, 0.8, 0.55)
	if weight > 0 {
		c = colorful.Hsl(huePositive, 0.85, 0.55)
	}
	col := toNRGBA(c)
	col.A = uint8(opacity * 255)
	return col
}

// neuron body shaded by its cosmetic activation value
func neuronColor(value float64) color.NRGBA {
	return toNRGBA(primary.BlendRgb(white, 0.5*(1-value)))
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{r, g, b, 255}
}
