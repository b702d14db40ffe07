package charts

import (
	"delivery-eda-service/internal/analysis"
	"delivery-eda-service/internal/domain"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/floats"
)

// renderBoxPlot draws one box of Delivery_Time_min per value of by, with
// every observation jittered beside its box.
func renderBoxPlot(w io.Writer, d domain.Dataset, by domain.Field, width, height int) error {
	title := "Delivery time by " + by.String()

	boxes := analysis.BoxPlot(d, domain.FieldDeliveryTimeMin, by)
	all := d.Numbers(domain.FieldDeliveryTimeMin)
	if len(boxes) == 0 || len(all) == 0 {
		return placeholder(w, width, height, title, "No data for the current filters")
	}

	c, err := newCanvas(width, height)
	if err != nil {
		return err
	}
	c.title(title)

	area := chart.Box{Top: 50, Left: 70, Right: width - 20, Bottom: height - 56}
	yTicks := niceTicks(floats.Min(all), floats.Max(all), 6)
	yLo, yHi := tickRange(yTicks, floats.Min(all), floats.Max(all))
	ys := scale{lo: yLo, hi: yHi, from: area.Bottom, to: area.Top}

	frame{area: area, y: ys, yTicks: yTicks, xName: by.String(), yName: domain.FieldDeliveryTimeMin.String()}.draw(c)

	slot := (area.Right - area.Left) / len(boxes)
	for i, b := range boxes {
		center := area.Left + slot*i + slot/2
		c.text(displayLabel(b.Label), center, area.Bottom+16, 11, colorText, alignCenter)
		if b.N == 0 {
			continue
		}
		col := colorAt(i)
		half := int(math.Min(float64(slot)/5, 40))

		// points to the left, box to the right of the slot center
		for j, v := range b.Points {
			c.dot(center-half-6-jitter(j, half), ys.px(v), 2, col.WithAlpha(140))
		}

		bx := center + 6
		c.line(bx+half/2, ys.px(b.LowerWhisker), bx+half/2, ys.px(b.Q1), col, 1.5)
		c.line(bx+half/2, ys.px(b.Q3), bx+half/2, ys.px(b.UpperWhisker), col, 1.5)
		c.line(bx+half/4, ys.px(b.LowerWhisker), bx+3*half/4, ys.px(b.LowerWhisker), col, 1.5)
		c.line(bx+half/4, ys.px(b.UpperWhisker), bx+3*half/4, ys.px(b.UpperWhisker), col, 1.5)
		c.rect(chart.Box{Top: ys.px(b.Q3), Left: bx, Right: bx + half, Bottom: ys.px(b.Q1)}, col.WithAlpha(90), col)
		c.line(bx, ys.px(b.Median), bx+half, ys.px(b.Median), col, 2)
	}

	return c.save(w)
}

// jitter spreads points horizontally within [0, span) so the same dataset
// always renders identically.
func jitter(i, span int) int {
	if span <= 0 {
		return 0
	}
	return (i * 7919) % span
}
