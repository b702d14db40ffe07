package charts

import (
	"delivery-eda-service/internal/analysis"
	"delivery-eda-service/internal/domain"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// coolwarm anchors: blue at -1, light gray at 0, red at +1.
var (
	coolLow  = drawing.Color{R: 59, G: 76, B: 192, A: 255}
	coolMid  = drawing.Color{R: 221, G: 221, B: 221, A: 255}
	coolHigh = drawing.Color{R: 180, G: 4, B: 38, A: 255}
	colorNaN = drawing.Color{R: 245, G: 245, B: 245, A: 255}
)

func lerp(a, b drawing.Color, t float64) drawing.Color {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return drawing.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

// coolwarm maps a coefficient in [-1, 1] onto the diverging scale.
func coolwarm(v float64) drawing.Color {
	if math.IsNaN(v) {
		return colorNaN
	}
	v = math.Max(-1, math.Min(1, v))
	if v < 0 {
		return lerp(coolMid, coolLow, -v)
	}
	return lerp(coolMid, coolHigh, v)
}

func renderCorrelation(w io.Writer, d domain.Dataset, width, height int) error {
	const title = "Correlation of numeric features"

	if d.Len() < 2 {
		return placeholder(w, width, height, title, "Not enough rows for the current filters")
	}

	corr := analysis.Correlation(d, domain.NumericFields)
	n := len(corr.Fields)

	c, err := newCanvas(width, height)
	if err != nil {
		return err
	}
	c.title(title)

	const left, top = 190, 50
	size := height - top - 110
	if avail := width - left - 120; avail < size {
		size = avail
	}
	cell := size / n

	for i := 0; i < n; i++ {
		y := top + i*cell
		c.text(corr.Fields[i].String(), left-8, y+cell/2+4, 11, colorText, alignRight)
		for j := 0; j < n; j++ {
			x := left + j*cell
			v := corr.At(i, j)
			c.rect(chart.Box{Top: y, Left: x, Right: x + cell, Bottom: y + cell}, coolwarm(v), colorBack)

			ink := colorText
			if math.Abs(v) > 0.6 {
				ink = drawing.ColorWhite
			}
			c.text(formatValue(v, 2), x+cell/2, y+cell/2+5, 13, ink, alignCenter)
		}
	}
	for j := 0; j < n; j++ {
		c.text(corr.Fields[j].String(), left+j*cell+cell/2, top+n*cell+18+(j%2)*14, 10, colorText, alignCenter)
	}

	drawColorBar(c, chart.Box{Top: top, Left: left + n*cell + 30, Right: left + n*cell + 46, Bottom: top + n*cell})
	return c.save(w)
}

func drawColorBar(c *canvas, b chart.Box) {
	const bands = 40
	steps := b.Bottom - b.Top
	for i := 0; i < bands; i++ {
		col := coolwarm(1 - 2*(float64(i)+0.5)/bands)
		top := b.Top + i*steps/bands
		c.rect(chart.Box{Top: top, Left: b.Left, Right: b.Right, Bottom: b.Top + (i+1)*steps/bands}, col, col)
	}
	for _, v := range []float64{1, 0.5, 0, -0.5, -1} {
		y := b.Top + int(math.Round((1-v)/2*float64(steps)))
		c.text(formatValue(v, 1), b.Right+6, y+4, 10, colorAxis, alignLeft)
	}
}
