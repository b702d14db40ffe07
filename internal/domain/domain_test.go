package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldNamesRoundTrip(t *testing.T) {
	for _, f := range Fields {
		got, ok := FieldByName(f.String())
		require.True(t, ok, f.String())
		assert.Equal(t, f, got)
	}

	_, ok := FieldByName("distance_km")
	assert.False(t, ok, "headers are case sensitive")
}

func TestRequiredFields(t *testing.T) {
	req := RequiredFields()
	assert.Len(t, req, 7)
	assert.NotContains(t, req, FieldOrderID)
	assert.NotContains(t, req, FieldCourierExperienceYrs)
	assert.Contains(t, req, FieldDistanceKm)
}

func TestFieldKinds(t *testing.T) {
	assert.Equal(t, KindIdentifier, FieldOrderID.Kind())
	assert.Equal(t, KindCategorical, FieldWeather.Kind())
	assert.Equal(t, KindNumeric, FieldDeliveryTimeMin.Kind())
	for _, f := range NumericFields {
		assert.Equal(t, KindNumeric, f.Kind())
	}
	for _, f := range FilterFields {
		assert.Equal(t, KindCategorical, f.Kind())
	}
}

func TestRecordAccessors(t *testing.T) {
	r := NewRecord()
	for _, f := range Fields {
		assert.True(t, r.Missing(f), f.String())
	}
	assert.False(t, r.Complete())

	r.SetNumber(FieldDistanceKm, 4.5)
	r.SetLabel(FieldWeather, "Rain")
	r.SetLabel(FieldDistanceKm, "ignored")
	r.SetNumber(FieldWeather, 1)

	assert.Equal(t, 4.5, r.Number(FieldDistanceKm))
	assert.Equal(t, "Rain", r.Label(FieldWeather))
	assert.True(t, math.IsNaN(r.Number(FieldWeather)))
	assert.Equal(t, "4.5", r.Format(FieldDistanceKm))
	assert.Equal(t, "NaN", r.Format(FieldDeliveryTimeMin))
}

func TestRecordComplete(t *testing.T) {
	r := Record{
		DistanceKm:           1,
		Weather:              "Clear",
		TrafficLevel:         "Low",
		TimeOfDay:            "Morning",
		VehicleType:          "Bike",
		PreparationTimeMin:   5,
		CourierExperienceYrs: math.NaN(),
		DeliveryTimeMin:      20,
	}
	assert.True(t, r.Complete(), "optional fields may be missing")

	r.TimeOfDay = ""
	assert.False(t, r.Complete())
}

func TestDatasetObserved(t *testing.T) {
	d := Dataset{
		Columns: []Field{FieldWeather},
		Records: []Record{{Weather: "Rain"}, {Weather: ""}, {Weather: "Clear"}, {Weather: "Rain"}},
	}
	assert.Equal(t, []string{"Rain", "Clear"}, d.Observed(FieldWeather))
	assert.True(t, d.HasColumn(FieldWeather))
	assert.False(t, d.HasColumn(FieldOrderID))
	assert.Len(t, d.Head(2), 2)
	assert.Len(t, d.Head(10), 4)
}

func TestDatasetNumbersSkipsMissing(t *testing.T) {
	d := Dataset{Records: []Record{{DistanceKm: 1}, {DistanceKm: math.NaN()}, {DistanceKm: 3}}}
	assert.Equal(t, []float64{1, 3}, d.Numbers(FieldDistanceKm))
}

func TestMissingReportOrdered(t *testing.T) {
	m := MissingReport{FieldWeather: 2, FieldDistanceKm: 1}
	got := m.Ordered([]Field{FieldDistanceKm, FieldTrafficLevel, FieldWeather})
	assert.Equal(t, []MissingCount{{FieldDistanceKm, 1}, {FieldWeather, 2}}, got)
	assert.Equal(t, 3, m.Total())
}

func TestFilterSelection(t *testing.T) {
	sel := FilterSelection{Weather: []string{"Rain"}, TrafficLevel: []string{"High"}, VehicleType: []string{"Bike"}}
	assert.True(t, sel.Allows(Record{Weather: "Rain", TrafficLevel: "High", VehicleType: "Bike"}))
	assert.False(t, sel.Allows(Record{Weather: "Rain", TrafficLevel: "Low", VehicleType: "Bike"}))
	assert.False(t, sel.Allows(Record{Weather: "rain", TrafficLevel: "High", VehicleType: "Bike"}), "exact match")
	assert.True(t, sel.Selected(FieldWeather, "Rain"))
	assert.Nil(t, sel.Values(FieldTimeOfDay))

	assert.False(t, FilterSelection{}.Allows(Record{}), "empty selection allows nothing")
}

func TestParseError(t *testing.T) {
	err := &ParseError{Line: 4, Column: "Distance_km", Err: ErrMissingColumn}
	assert.Equal(t, `parse error: line 4 column "Distance_km": missing required column`, err.Error())
	assert.True(t, errors.Is(err, ErrMissingColumn))

	assert.Equal(t, "parse error: empty input", (&ParseError{Err: ErrEmptyInput}).Error())
	assert.Equal(t, "parse error: line 2: x", (&ParseError{Line: 2, Err: errors.New("x")}).Error())
}

func TestSessionDropped(t *testing.T) {
	s := &Session{
		Raw:   Dataset{Records: make([]Record, 5)},
		Clean: Dataset{Records: make([]Record, 3)},
	}
	assert.Equal(t, 2, s.Dropped())
}
