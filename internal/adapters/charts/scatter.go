package charts

import (
	"delivery-eda-service/internal/domain"
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/floats"
)

// pointStyle renders dots only, no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: drawing.ColorTransparent,
		DotWidth:    3,
		DotColor:    col.WithAlpha(190),
	}
}

// renderScatter plots Distance_km against Delivery_Time_min, one series per
// Traffic_Level.
func renderScatter(w io.Writer, d domain.Dataset, width, height int) error {
	const title = "Distance vs delivery time (by traffic level)"

	xsAll := make([]float64, 0, d.Len())
	ysAll := make([]float64, 0, d.Len())
	byLevel := make(map[string]*chart.ContinuousSeries)
	levels := d.Observed(domain.FieldTrafficLevel)
	for i, l := range levels {
		byLevel[l] = &chart.ContinuousSeries{Name: unsafeText.Replace(l), Style: pointStyle(colorAt(i))}
	}
	for _, r := range d.Records {
		if r.Missing(domain.FieldDistanceKm) || r.Missing(domain.FieldDeliveryTimeMin) {
			continue
		}
		s, ok := byLevel[r.TrafficLevel]
		if !ok {
			continue
		}
		s.XValues = append(s.XValues, r.DistanceKm)
		s.YValues = append(s.YValues, r.DeliveryTimeMin)
		xsAll = append(xsAll, r.DistanceKm)
		ysAll = append(ysAll, r.DeliveryTimeMin)
	}
	if len(xsAll) == 0 {
		return placeholder(w, width, height, title, "No data for the current filters")
	}

	var series []chart.Series
	for _, l := range levels {
		if s := byLevel[l]; len(s.XValues) > 0 {
			series = append(series, *s)
		}
	}

	xTicks := niceTicks(floats.Min(xsAll), floats.Max(xsAll), 8)
	yTicks := niceTicks(floats.Min(ysAll), floats.Max(ysAll), 6)
	xLo, xHi := tickRange(xTicks, floats.Min(xsAll), floats.Max(xsAll))
	yLo, yHi := tickRange(yTicks, floats.Min(ysAll), floats.Max(ysAll))

	ch := chart.Chart{
		Title:      title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  domain.FieldDistanceKm.String(),
			Range: &chart.ContinuousRange{Min: xLo, Max: xHi},
			Ticks: xTicks,
		},
		YAxis: chart.YAxis{
			Name:  domain.FieldDeliveryTimeMin.String(),
			Range: &chart.ContinuousRange{Min: yLo, Max: yHi},
			Ticks: yTicks,
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("render scatter: %w", err)
	}
	return nil
}
