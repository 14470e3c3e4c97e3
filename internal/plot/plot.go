// Package plot renders spectra, either as a terminal graph or as an SVG
// line chart.
package plot

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"
)

// Options configures a rendering. YScale is "linear" (default) or "log".
type Options struct {
	Title  string
	XLabel string
	YLabel string
	YScale string
	Width  int
	Height int
}

func (o Options) withDefaults() Options {
	if o.XLabel == "" {
		o.XLabel = "Wavelength [nm]"
	}
	if o.YLabel == "" {
		o.YLabel = "Transmittance [-]"
	}
	if o.YScale == "" {
		o.YScale = "linear"
	}
	if o.Width == 0 {
		o.Width = 80
	}
	if o.Height == 0 {
		o.Height = 15
	}
	return o
}

// Floor for the log scale; transmittance below this clips.
const logFloor = 1e-12

func scaled(y []float64, yscale string) []float64 {
	if yscale != "log" {
		return y
	}
	out := make([]float64, len(y))
	for i, v := range y {
		if v < logFloor {
			v = logFloor
		}
		out[i] = math.Log10(v)
	}
	return out
}

// Terminal renders an ASCII graph of y over x. The x axis is summarized in
// the caption since the terminal plot is index-based.
func Terminal(x, y []float64, opts Options) string {
	opts = opts.withDefaults()
	if len(y) == 0 {
		return "(empty spectrum)"
	}

	caption := opts.Title
	if len(x) > 0 {
		caption = fmt.Sprintf("%s\n%s %g .. %g, %s (%s)",
			opts.Title, opts.XLabel, x[0], x[len(x)-1], opts.YLabel, opts.YScale)
	}

	return asciigraph.Plot(scaled(y, opts.YScale),
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Caption(caption),
	)
}
