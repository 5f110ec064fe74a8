package web

import (
	"fmt"
	"github.com/jnb666/playground/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgsvg"
	"io"
)

// LossPlot writes an SVG plot of the train and test loss history.
func LossPlot(w io.Writer, hist stats.History, width, height int) error {
	plt := newPlot()
	train, err := newLinePlot(hist, 0, func(e stats.Entry) float64 { return e.TrainLoss })
	if err != nil {
		return err
	}
	test, err := newLinePlot(hist, 1, func(e stats.Entry) float64 { return e.TestLoss })
	if err != nil {
		return err
	}
	test.ymax = max(test.ymax, train.ymax)
	train.ymax = test.ymax
	plt.Add(train, test)
	plt.Legend.Add("training loss ", train)
	plt.Legend.Add("test loss ", test)
	return writePlot(w, plt, width, height)
}

func newPlot() *plot.Plot {
	p := plot.New()
	p.X.Padding, p.Y.Padding = 0, 0
	p.X.Tick.Label.Font.Size = vg.Points(10)
	p.Y.Tick.Label.Font.Size = vg.Points(10)
	p.X.Label.Text = "epoch"
	p.Legend.Top = true
	p.Legend.TextStyle.Font.Size = vg.Points(12)
	p.Add(plotter.NewGrid())
	return p
}

func writePlot(w io.Writer, p *plot.Plot, width, height int) error {
	writer, err := p.WriterTo(vg.Inch*vg.Length(width)/vgsvg.DPI, vg.Inch*vg.Length(height)/vgsvg.DPI, "svg")
	if err != nil {
		return fmt.Errorf("error writing plot: %w", err)
	}
	_, err = writer.WriteTo(w)
	return err
}

func newLinePlot(hist stats.History, ix int, value func(stats.Entry) float64) (linePlot, error) {
	pts := make(plotter.XYs, 0, len(hist))
	xmin, xmax, ymax := 0.0, 1.0, 0.0
	if len(hist) > 0 {
		xmin = float64(hist[0].Epoch)
	}
	for _, e := range hist {
		pt := plotter.XY{X: float64(e.Epoch), Y: value(e)}
		pts = append(pts, pt)
		xmax = max(xmax, pt.X)
		ymax = max(ymax, pt.Y)
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return linePlot{}, err
	}
	l.Width = vg.Points(2)
	l.Color = plotutil.Color(ix)
	return linePlot{Line: l, xmin: xmin, xmax: xmax, ymin: 0, ymax: max(ymax, 0.1)}, nil
}

// modified plotter.Line with a fixed scale
type linePlot struct {
	*plotter.Line
	xmin, xmax, ymin, ymax float64
}

func (l linePlot) DataRange() (xmin, xmax, ymin, ymax float64) {
	return l.xmin, l.xmax, l.ymin, l.ymax
}
