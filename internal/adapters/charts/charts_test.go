package charts

import (
	"bytes"
	"context"
	"delivery-eda-service/internal/domain"
	"delivery-eda-service/internal/ports"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() domain.Dataset {
	weathers := []string{"Rain", "Clear", "Foggy", "Snowy"}
	traffic := []string{"Low", "Medium", "High"}
	vehicles := []string{"Bike", "Scooter", "Car"}

	d := domain.Dataset{Columns: domain.Fields}
	for i := 0; i < 60; i++ {
		dist := float64(i%20) + 0.5
		d.Records = append(d.Records, domain.Record{
			OrderID:              "",
			DistanceKm:           dist,
			Weather:              weathers[i%len(weathers)],
			TrafficLevel:         traffic[i%len(traffic)],
			TimeOfDay:            "Morning",
			VehicleType:          vehicles[i%len(vehicles)],
			PreparationTimeMin:   float64(5 + i%25),
			CourierExperienceYrs: float64(i % 9),
			DeliveryTimeMin:      20 + 3*dist + float64(i%7),
		})
	}
	return d
}

func render(t *testing.T, kind ports.ChartKind, d domain.Dataset) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewSVGRenderer(40).Render(context.Background(), kind, d, &buf))
	return buf.String()
}

func TestRenderEveryKind(t *testing.T) {
	d := sample()
	for _, kind := range ports.ChartKinds {
		t.Run(string(kind), func(t *testing.T) {
			out := render(t, kind, d)
			assert.Contains(t, out, "<svg")
			assert.Contains(t, out, "</svg>")
		})
	}
}

func TestRenderEmptyDatasetShowsPlaceholder(t *testing.T) {
	for _, kind := range ports.ChartKinds {
		t.Run(string(kind), func(t *testing.T) {
			out := render(t, kind, domain.Dataset{Columns: domain.Fields})
			assert.Contains(t, out, "<svg")
			assert.True(t, strings.Contains(out, "No data") || strings.Contains(out, "Not enough rows"))
		})
	}
}

func TestRenderSingleRow(t *testing.T) {
	d := sample()
	d.Records = d.Records[:1]
	for _, kind := range ports.ChartKinds {
		t.Run(string(kind), func(t *testing.T) {
			assert.Contains(t, render(t, kind, d), "<svg")
		})
	}
}

func TestRenderStripsMarkupFromLabels(t *testing.T) {
	d := sample()
	for i := range d.Records {
		d.Records[i].Weather = "<script>x</script>"
		d.Records[i].TrafficLevel = "a&b"
	}
	for _, kind := range ports.ChartKinds {
		out := render(t, kind, d)
		assert.NotContains(t, out, "<script>", kind)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	var buf bytes.Buffer
	err := NewSVGRenderer(40).Render(context.Background(), "pie", sample(), &buf)
	assert.Error(t, err)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/svg+xml", NewSVGRenderer(0).ContentType())
}

func TestCoolwarm(t *testing.T) {
	assert.Equal(t, coolLow, coolwarm(-1))
	assert.Equal(t, coolMid, coolwarm(0))
	assert.Equal(t, coolHigh, coolwarm(1))
	assert.Equal(t, coolHigh, coolwarm(3), "clamped")
	assert.Equal(t, colorNaN, coolwarm(math.NaN()))
}

func TestNiceTicks(t *testing.T) {
	ticks := niceTicks(0, 100, 6)
	require.NotEmpty(t, ticks)
	assert.Equal(t, 0.0, ticks[0].Value)
	assert.GreaterOrEqual(t, ticks[len(ticks)-1].Value, 100.0)
	for i := 1; i < len(ticks); i++ {
		assert.Greater(t, ticks[i].Value, ticks[i-1].Value)
	}

	assert.Nil(t, niceTicks(math.NaN(), 1, 5))
	assert.NotEmpty(t, niceTicks(5, 5, 5), "degenerate range still gets ticks")
}

func TestScalePx(t *testing.T) {
	s := scale{lo: 0, hi: 10, from: 100, to: 0}
	assert.Equal(t, 100, s.px(0))
	assert.Equal(t, 50, s.px(5))
	assert.Equal(t, 0, s.px(10))
	assert.Equal(t, 50, scale{lo: 1, hi: 1, from: 0, to: 100}.px(1))
}

func TestJitterIsDeterministic(t *testing.T) {
	assert.Equal(t, jitter(3, 20), jitter(3, 20))
	assert.Equal(t, 0, jitter(3, 0))
	for i := 0; i < 50; i++ {
		v := jitter(i, 17)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 17)
	}
}
