package ports

import (
	"context"
	"delivery-eda-service/internal/domain"
	"io"
)

// ChartKind names one of the dashboard charts.
type ChartKind string

const (
	ChartHistogram   ChartKind = "histogram"
	ChartCorrelation ChartKind = "correlation"
	ChartScatter     ChartKind = "scatter"
	ChartBoxVehicle  ChartKind = "box-vehicle"
	ChartBoxWeather  ChartKind = "box-weather"
)

// ChartKinds lists every chart in dashboard order.
var ChartKinds = []ChartKind{
	ChartHistogram,
	ChartCorrelation,
	ChartScatter,
	ChartBoxVehicle,
	ChartBoxWeather,
}

// Contract for drawing a chart of a dataset.
type ChartRenderer interface {
	// Write the chart to w; the content type is given by ContentType.
	Render(ctx context.Context, kind ChartKind, d domain.Dataset, w io.Writer) error
	ContentType() string
}
