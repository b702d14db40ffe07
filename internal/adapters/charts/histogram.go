package charts

import (
	"delivery-eda-service/internal/analysis"
	"delivery-eda-service/internal/domain"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
)

// renderHistogram draws Delivery_Time_min as bars stacked by Weather with a
// box strip of the whole distribution above them.
func renderHistogram(w io.Writer, d domain.Dataset, bins, width, height int) error {
	const title = "Delivery time distribution (minutes)"

	h := analysis.StackedHistogram(d, domain.FieldDeliveryTimeMin, domain.FieldWeather, bins)
	if len(h.Groups) == 0 {
		return placeholder(w, width, height, title, "No data for the current filters")
	}

	c, err := newCanvas(width, height)
	if err != nil {
		return err
	}
	c.title(title)

	legendX := width - 130
	strip := chart.Box{Top: 44, Left: 70, Right: legendX - 20, Bottom: 84}
	area := chart.Box{Top: strip.Bottom + 10, Left: 70, Right: legendX - 20, Bottom: height - 56}

	lo, hi := h.Edges[0], h.Edges[len(h.Edges)-1]
	xTicks := within(niceTicks(lo, hi, 8), lo, hi)
	xs := scale{lo: lo, hi: hi, from: area.Left, to: area.Right}

	yTicks := niceTicks(0, h.MaxCount(), 6)
	_, yHi := tickRange(yTicks, 0, h.MaxCount())
	ys := scale{lo: 0, hi: yHi, from: area.Bottom, to: area.Top}

	frame{area: area, x: xs, y: ys, xTicks: xTicks, yTicks: yTicks, xName: domain.FieldDeliveryTimeMin.String(), yName: "count"}.draw(c)

	for i := 0; i+1 < len(h.Edges); i++ {
		left, right := xs.px(h.Edges[i]), xs.px(h.Edges[i+1])
		var stacked float64
		for gi, g := range h.Groups {
			n := g.Counts[i]
			if n == 0 {
				continue
			}
			bottom := ys.px(stacked)
			stacked += n
			c.rect(chart.Box{Top: ys.px(stacked), Left: left, Right: right, Bottom: bottom}, colorAt(gi).WithAlpha(220), colorBack)
		}
	}

	drawHorizontalBox(c, analysis.Box("", d.Numbers(domain.FieldDeliveryTimeMin)), xs, strip)

	labels := make([]string, 0, len(h.Groups))
	for _, g := range h.Groups {
		labels = append(labels, g.Label)
	}
	c.legend(domain.FieldWeather.String(), labels, legendX, 60)

	return c.save(w)
}

// drawHorizontalBox draws a marginal box plot inside the given strip.
func drawHorizontalBox(c *canvas, b analysis.BoxStats, xs scale, strip chart.Box) {
	if b.N == 0 {
		return
	}
	mid := (strip.Top + strip.Bottom) / 2
	c.line(xs.px(b.LowerWhisker), mid, xs.px(b.Q1), mid, colorFrame, 1)
	c.line(xs.px(b.Q3), mid, xs.px(b.UpperWhisker), mid, colorFrame, 1)
	c.rect(chart.Box{Top: strip.Top + 8, Left: xs.px(b.Q1), Right: xs.px(b.Q3), Bottom: strip.Bottom - 8}, colorGrid, colorFrame)
	c.line(xs.px(b.Median), strip.Top+8, xs.px(b.Median), strip.Bottom-8, colorFrame, 2)
	for _, v := range b.Points {
		if v < b.LowerWhisker || v > b.UpperWhisker {
			c.dot(xs.px(v), mid, 2, colorFrame)
		}
	}
}

func within(ticks []chart.Tick, lo, hi float64) []chart.Tick {
	out := ticks[:0:0]
	for _, t := range ticks {
		if t.Value >= lo-1e-9 && t.Value <= hi+1e-9 {
			out = append(out, t)
		}
	}
	return out
}
