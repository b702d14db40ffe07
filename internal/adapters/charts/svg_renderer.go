package charts

import (
	"context"
	"delivery-eda-service/internal/domain"
	"delivery-eda-service/internal/platform/obs"
	"delivery-eda-service/internal/ports"
	"fmt"
	"io"
)

const (
	defaultWidth  = 860
	defaultHeight = 460
)

// SVGRenderer draws dashboard charts as SVG documents.
type SVGRenderer struct {
	bins          int
	width, height int
}

func NewSVGRenderer(bins int) *SVGRenderer {
	if bins < 1 {
		bins = 40
	}
	return &SVGRenderer{bins: bins, width: defaultWidth, height: defaultHeight}
}

func (s *SVGRenderer) ContentType() string {
	return "image/svg+xml"
}

func (s *SVGRenderer) Render(ctx context.Context, kind ports.ChartKind, d domain.Dataset, w io.Writer) (err error) {
	defer obs.Time(ctx, "chart."+string(kind))(&err)
	defer func() { obs.RecordChart(string(kind), err) }()

	if err := ctx.Err(); err != nil {
		return err
	}

	switch kind {
	case ports.ChartHistogram:
		return renderHistogram(w, d, s.bins, s.width, s.height)
	case ports.ChartCorrelation:
		return renderCorrelation(w, d, s.width, s.height)
	case ports.ChartScatter:
		return renderScatter(w, d, s.width, s.height)
	case ports.ChartBoxVehicle:
		return renderBoxPlot(w, d, domain.FieldVehicleType, s.width, s.height)
	case ports.ChartBoxWeather:
		return renderBoxPlot(w, d, domain.FieldWeather, s.width, s.height)
	default:
		return fmt.Errorf("render chart: unknown kind %q", kind)
	}
}
