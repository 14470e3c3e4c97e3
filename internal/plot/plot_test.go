package plot

import (
	"strings"
	"testing"
)

func testData() ([]float64, []float64) {
	x := make([]float64, 50)
	y := make([]float64, 50)
	for i := range x {
		x[i] = 4200 + float64(i)
		y[i] = 1 - float64(i%10)/20
	}
	return x, y
}

func TestTerminal(t *testing.T) {
	x, y := testData()
	out := Terminal(x, y, Options{Title: "CO2 test"})
	if out == "" {
		t.Fatal("empty plot")
	}
	if !strings.Contains(out, "CO2 test") {
		t.Error("caption missing from plot")
	}
	if !strings.Contains(out, "4200") || !strings.Contains(out, "4249") {
		t.Error("x range missing from caption")
	}
}

func TestTerminalEmpty(t *testing.T) {
	if out := Terminal(nil, nil, Options{}); out != "(empty spectrum)" {
		t.Errorf("unexpected output for empty input: %q", out)
	}
}

func TestSVG(t *testing.T) {
	x, y := testData()
	out := SVG(x, y, Options{Title: "Transmittance <CO2>"})
	if !strings.HasPrefix(out, "<?xml") {
		t.Fatal("missing xml header")
	}
	if !strings.Contains(out, "<path") {
		t.Error("missing spectrum path")
	}
	if !strings.Contains(out, "Transmittance &lt;CO2&gt;") {
		t.Error("title not escaped")
	}
	if !strings.Contains(out, "Wavelength [nm]") {
		t.Error("default x label missing")
	}
}

func TestSVGLogScale(t *testing.T) {
	x, y := testData()
	y[3] = 0 // must clip at the log floor, not produce -Inf

	out := SVG(x, y, Options{YScale: "log"})
	if out == "" {
		t.Fatal("empty svg")
	}
	if strings.Contains(out, "Inf") || strings.Contains(out, "NaN") {
		t.Error("log scale produced non-finite coordinates")
	}
	if !strings.Contains(out, "log10") {
		t.Error("log y label missing")
	}
}

func TestSVGDegenerateInput(t *testing.T) {
	if out := SVG([]float64{1}, []float64{1}, Options{}); out != "" {
		t.Error("expected empty output for single point")
	}
	if out := SVG([]float64{1, 2}, []float64{1}, Options{}); out != "" {
		t.Error("expected empty output for misaligned input")
	}
}
