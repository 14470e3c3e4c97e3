package plot

import (
	"fmt"
	"strings"
)

const (
	svgWidth  = 900
	svgHeight = 480

	marginLeft   = 70
	marginRight  = 20
	marginTop    = 40
	marginBottom = 50
)

// SVG renders x/y as a line chart with title and axis labels.
func SVG(x, y []float64, opts Options) string {
	opts = opts.withDefaults()
	if len(x) < 2 || len(x) != len(y) {
		return ""
	}

	ys := scaled(y, opts.YScale)

	minX, maxX := x[0], x[0]
	minY, maxY := ys[0], ys[0]
	for i := range x {
		if x[i] < minX {
			minX = x[i]
		}
		if x[i] > maxX {
			maxX = x[i]
		}
		if ys[i] < minY {
			minY = ys[i]
		}
		if ys[i] > maxY {
			maxY = ys[i]
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.05
	maxY += rangeY * 0.05
	rangeY = maxY - minY

	plotW := float64(svgWidth - marginLeft - marginRight)
	plotH := float64(svgHeight - marginTop - marginBottom)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, svgWidth, svgHeight, svgWidth, svgHeight))

	// Frame and axis labels.
	sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%.0f" height="%.0f" fill="none" stroke="#333333"/>
`, marginLeft, marginTop, plotW, plotH))
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="24" fill="#cccccc" font-family="monospace" font-size="14" text-anchor="middle">%s</text>
`, svgWidth/2, escape(opts.Title)))
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="#888888" font-family="monospace" font-size="12" text-anchor="middle">%s</text>
`, svgWidth/2, svgHeight-12, escape(opts.XLabel)))

	yLabel := opts.YLabel
	if opts.YScale == "log" {
		yLabel = "log10 " + yLabel
	}
	sb.WriteString(fmt.Sprintf(`<text x="16" y="%d" fill="#888888" font-family="monospace" font-size="12" text-anchor="middle" transform="rotate(-90 16 %d)">%s</text>
`, svgHeight/2, svgHeight/2, escape(yLabel)))

	// Min/max tick labels.
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="#666666" font-family="monospace" font-size="11">%.6g</text>
`, marginLeft, svgHeight-marginBottom+16, minX))
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="#666666" font-family="monospace" font-size="11" text-anchor="end">%.6g</text>
`, svgWidth-marginRight, svgHeight-marginBottom+16, maxX))
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="#666666" font-family="monospace" font-size="11" text-anchor="end">%.4g</text>
`, marginLeft-6, marginTop+10, maxY))
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%.0f" fill="#666666" font-family="monospace" font-size="11" text-anchor="end">%.4g</text>
`, marginLeft-6, float64(svgHeight-marginBottom), minY))

	// Spectrum path.
	sb.WriteString(`<path fill="none" stroke="#00ff00" stroke-width="1.2" d="M`)
	for i := range x {
		px := float64(marginLeft) + (x[i]-minX)/rangeX*plotW
		py := float64(marginTop) + plotH - (ys[i]-minY)/rangeY*plotH
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
		}
	}
	sb.WriteString("\"/>\n</svg>\n")

	return sb.String()
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
