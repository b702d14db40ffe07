package services

import (
	"context"
	"delivery-eda-service/internal/domain"
	"errors"
	"io"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLoader struct {
	ds  domain.Dataset
	err error

	gotName string
}

func (m *mockLoader) Load(ctx context.Context, name string, r io.Reader) (domain.Dataset, error) {
	m.gotName = name
	return m.ds, m.err
}

func row(weather, traffic, vehicle string, dist, exp, delivery float64) domain.Record {
	return domain.Record{
		OrderID:              "",
		DistanceKm:           dist,
		Weather:              weather,
		TrafficLevel:         traffic,
		TimeOfDay:            "Evening",
		VehicleType:          vehicle,
		PreparationTimeMin:   10,
		CourierExperienceYrs: exp,
		DeliveryTimeMin:      delivery,
	}
}

func dataset(rows ...domain.Record) domain.Dataset {
	return domain.Dataset{Columns: domain.Fields, Records: rows}
}

func TestReportMissing(t *testing.T) {
	p := NewDatasetPreparer(&mockLoader{})
	d := dataset(
		row("Rain", "High", "Bike", math.NaN(), 1, 30),
		row("", "Low", "Car", 3, math.NaN(), 40),
		row("Clear", "Low", "Car", 3, math.NaN(), 40),
	)

	report := p.ReportMissing(d)
	assert.Equal(t, 1, report[domain.FieldDistanceKm])
	assert.Equal(t, 1, report[domain.FieldWeather])
	assert.Equal(t, 2, report[domain.FieldCourierExperienceYrs])
	assert.Equal(t, 0, report[domain.FieldDeliveryTimeMin])
	assert.Equal(t, 3, report[domain.FieldOrderID])
	assert.Len(t, report, len(domain.Fields))
	assert.Equal(t, 7, report.Total())
}

func TestCleanDropsRowsMissingRequiredFields(t *testing.T) {
	p := NewDatasetPreparer(&mockLoader{})
	missingDistance := row("Rain", "High", "Bike", math.NaN(), 1, 30)
	missingWeather := row("", "High", "Bike", 2, 1, 30)
	missingDelivery := row("Rain", "High", "Bike", 2, 1, math.NaN())
	kept := row("Clear", "Low", "Car", 5, 2, 45)

	d := dataset(missingDistance, missingWeather, kept, missingDelivery)
	cleaned := p.Clean(d)

	require.Equal(t, 1, cleaned.Len())
	assert.Equal(t, kept, cleaned.Records[0])
	for _, r := range cleaned.Records {
		assert.True(t, r.Complete())
	}
	assert.Equal(t, 4, d.Len(), "input is not modified")
}

func TestCleanImputesCourierExperienceByVehicleMedian(t *testing.T) {
	p := NewDatasetPreparer(&mockLoader{})
	d := dataset(
		row("Rain", "High", "Bike", 1, 1, 30),
		row("Rain", "High", "Bike", 1, 3, 30),
		row("Rain", "High", "Bike", 1, 8, 30),
		row("Rain", "High", "Bike", 1, math.NaN(), 30),
		row("Rain", "High", "Car", 1, 4, 30),
		row("Rain", "High", "Car", 1, 6, 30),
		row("Rain", "High", "Car", 1, math.NaN(), 30),
		// dropped before the median is taken
		row("Rain", "High", "Car", math.NaN(), 100, 30),
	)

	cleaned := p.Clean(d)
	require.Equal(t, 7, cleaned.Len())
	assert.Equal(t, 3.0, cleaned.Records[3].CourierExperienceYrs)
	assert.Equal(t, 5.0, cleaned.Records[6].CourierExperienceYrs)
	assert.True(t, math.IsNaN(d.Records[3].CourierExperienceYrs), "input is not modified")
}

func TestCleanLeavesAllMissingGroupMissing(t *testing.T) {
	p := NewDatasetPreparer(&mockLoader{})
	d := dataset(
		row("Rain", "High", "Bike", 1, 2, 30),
		row("Rain", "High", "Scooter", 1, math.NaN(), 30),
		row("Rain", "High", "Scooter", 1, math.NaN(), 30),
	)

	cleaned := p.Clean(d)
	require.Equal(t, 3, cleaned.Len())
	assert.Equal(t, 2.0, cleaned.Records[0].CourierExperienceYrs)
	assert.True(t, cleaned.Records[1].Missing(domain.FieldCourierExperienceYrs))
	assert.True(t, cleaned.Records[2].Missing(domain.FieldCourierExperienceYrs))
}

func TestCleanExcludesRecordMissingDistance(t *testing.T) {
	p := NewDatasetPreparer(&mockLoader{})
	d := dataset(row("Rain", "High", "Bike", math.NaN(), 1, 30))

	assert.Equal(t, 0, p.Clean(d).Len())
}

func TestFilterByWeather(t *testing.T) {
	p := NewDatasetPreparer(&mockLoader{})
	rain := row("Rain", "High", "Bike", 1, 1, 30)
	clear := row("Clear", "Low", "Car", 2, 2, 20)
	d := dataset(rain, clear)

	sel := domain.ObservedSelection(d)
	sel.Weather = []string{"Rain"}

	got := p.Filter(d, sel)
	require.Equal(t, 1, got.Len())
	assert.Equal(t, rain, got.Records[0])
}

func TestFilterAllObservedValuesKeepsEverythingInOrder(t *testing.T) {
	p := NewDatasetPreparer(&mockLoader{})
	d := dataset(
		row("Rain", "High", "Bike", 1, 1, 30),
		row("Clear", "Low", "Car", 2, 2, 20),
		row("Snowy", "Medium", "Scooter", 3, 3, 50),
		row("Rain", "Low", "Car", 4, 4, 60),
	)

	got := p.Filter(d, domain.ObservedSelection(d))
	assert.Equal(t, d.Records, got.Records)
}

func TestFilterIsIdempotent(t *testing.T) {
	p := NewDatasetPreparer(&mockLoader{})
	d := dataset(
		row("Rain", "High", "Bike", 1, 1, 30),
		row("Clear", "Low", "Car", 2, 2, 20),
		row("Rain", "Low", "Scooter", 3, 3, 50),
	)
	sel := domain.FilterSelection{
		Weather:      []string{"Rain", "Clear"},
		TrafficLevel: []string{"Low"},
		VehicleType:  []string{"Car", "Scooter"},
	}

	once := p.Filter(d, sel)
	twice := p.Filter(once, sel)
	assert.Equal(t, once.Records, twice.Records)
	assert.Equal(t, 2, once.Len())
}

func TestFilterEmptySelectionYieldsNothing(t *testing.T) {
	p := NewDatasetPreparer(&mockLoader{})
	d := dataset(row("Rain", "High", "Bike", 1, 1, 30))

	sel := domain.ObservedSelection(d)
	sel.VehicleType = nil

	assert.Equal(t, 0, p.Filter(d, sel).Len())
	assert.Equal(t, 0, p.Filter(d, domain.FilterSelection{}).Len())
}

func TestLoadPassesParseErrorThrough(t *testing.T) {
	perr := &domain.ParseError{Line: 3, Err: errors.New("bad")}
	p := NewDatasetPreparer(&mockLoader{err: perr})

	_, err := p.Load(context.Background(), "x.csv", strings.NewReader(""))
	var got *domain.ParseError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, 3, got.Line)
}

func TestLoadWrapsOtherErrors(t *testing.T) {
	p := NewDatasetPreparer(&mockLoader{err: io.ErrUnexpectedEOF})

	_, err := p.Load(context.Background(), "x.csv", strings.NewReader(""))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Contains(t, err.Error(), "load dataset")
}

func TestPrepareBuildsSession(t *testing.T) {
	loader := &mockLoader{ds: dataset(
		row("Rain", "High", "Bike", 1, math.NaN(), 30),
		row("Rain", "High", "Bike", 2, 4, 35),
		row("Clear", "Low", "Car", math.NaN(), 2, 20),
	)}
	p := NewDatasetPreparer(loader)
	fixed := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return fixed }

	sess, err := p.Prepare(context.Background(), "orders.csv", strings.NewReader(""))
	require.NoError(t, err)

	assert.Equal(t, "orders.csv", loader.gotName)
	assert.Equal(t, "orders.csv", sess.FileName)
	assert.Equal(t, fixed, sess.UploadedAt)
	assert.Equal(t, 3, sess.Raw.Len())
	assert.Equal(t, 2, sess.Clean.Len())
	assert.Equal(t, 1, sess.Dropped())
	assert.Equal(t, 1, sess.Missing[domain.FieldDistanceKm])
	assert.Equal(t, 4.0, sess.Clean.Records[0].CourierExperienceYrs)
}

func TestPrepareFailsWithoutSession(t *testing.T) {
	p := NewDatasetPreparer(&mockLoader{err: &domain.ParseError{Err: domain.ErrEmptyInput}})

	sess, err := p.Prepare(context.Background(), "x.csv", strings.NewReader(""))
	assert.Nil(t, sess)
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
}

func TestOverview(t *testing.T) {
	p := NewDatasetPreparer(&mockLoader{})
	raw := dataset(
		row("Rain", "High", "Bike", 1, 1, 30),
		row("Clear", "Low", "Car", 2, 2, 20),
		row("Clear", "Low", "Car", math.NaN(), 2, 20),
	)
	sess := &domain.Session{FileName: "f.csv", Raw: raw, Missing: p.ReportMissing(raw), Clean: p.Clean(raw)}

	sel := domain.ObservedSelection(sess.Clean)
	sel.Weather = []string{"Clear"}

	ov := p.Overview(sess, sel)
	assert.Equal(t, 3, ov.RawRows)
	assert.Equal(t, 2, ov.CleanRows)
	assert.Equal(t, 1, ov.Dropped)
	assert.Len(t, ov.Preview, 2)
	assert.Equal(t, []string{"Rain", "Clear"}, ov.Options.Weather)
	assert.Equal(t, 1, ov.Filtered.Len())
	assert.NotEmpty(t, ov.Describe)
	require.NotEmpty(t, ov.Missing)
	assert.Equal(t, domain.FieldOrderID, ov.Missing[0].Field)
}
