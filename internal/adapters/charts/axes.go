package charts

import (
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
)

// scale maps a data interval onto a pixel interval.
type scale struct {
	lo, hi   float64
	from, to int
}

func (s scale) px(v float64) int {
	if s.hi == s.lo {
		return (s.from + s.to) / 2
	}
	t := (v - s.lo) / (s.hi - s.lo)
	return s.from + int(math.Round(t*float64(s.to-s.from)))
}

// niceTicks returns about n evenly spaced round values covering [lo, hi].
func niceTicks(lo, hi float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(lo) || math.IsNaN(hi) {
		return nil
	}
	if hi <= lo {
		hi = lo + 1
	}
	mag := math.Pow(10, math.Floor(math.Log10((hi-lo)/float64(n-1))))
	best, bestScore := mag, math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		count := math.Max(math.Ceil((hi-lo)/step), 2)
		if score := math.Abs(count - float64(n)); score < bestScore {
			best, bestScore = step, score
		}
	}

	start := math.Floor(lo/best) * best
	end := math.Ceil(hi/best) * best
	var ticks []chart.Tick
	for v := start; v <= end+best/2 && len(ticks) <= n+2; v += best {
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
	}
	return ticks
}

func formatTick(v float64) string {
	if math.Abs(v) < 1e-9 {
		return "0"
	}
	return strconv.FormatFloat(math.Round(v*1e6)/1e6, 'f', -1, 64)
}

// tickRange widens [lo, hi] to the outermost ticks.
func tickRange(ticks []chart.Tick, lo, hi float64) (float64, float64) {
	if len(ticks) == 0 {
		return lo, hi
	}
	return math.Min(lo, ticks[0].Value), math.Max(hi, ticks[len(ticks)-1].Value)
}

// frame draws grid lines, tick labels and axis names for a plot area.
type frame struct {
	area   chart.Box
	x, y   scale
	xTicks []chart.Tick
	yTicks []chart.Tick
	xName  string
	yName  string
}

func (f frame) draw(c *canvas) {
	for _, t := range f.yTicks {
		py := f.y.px(t.Value)
		c.line(f.area.Left, py, f.area.Right, py, colorGrid, 1)
		c.text(t.Label, f.area.Left-6, py+4, 10, colorAxis, alignRight)
	}
	for _, t := range f.xTicks {
		px := f.x.px(t.Value)
		c.line(px, f.area.Bottom, px, f.area.Bottom+4, colorAxis, 1)
		c.text(t.Label, px, f.area.Bottom+16, 10, colorAxis, alignCenter)
	}
	c.line(f.area.Left, f.area.Bottom, f.area.Right, f.area.Bottom, colorAxis, 1)
	c.line(f.area.Left, f.area.Top, f.area.Left, f.area.Bottom, colorAxis, 1)

	if f.xName != "" {
		c.text(f.xName, (f.area.Left+f.area.Right)/2, f.area.Bottom+36, 12, colorText, alignCenter)
	}
	if f.yName != "" {
		c.vtext(f.yName, f.area.Left-44, (f.area.Top+f.area.Bottom)/2, 12, colorText)
	}
}

// fixed-point formatting of values printed inside charts
func formatValue(v float64, prec int) string {
	if math.IsNaN(v) {
		return "nan"
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}
