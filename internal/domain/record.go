package domain

import "math"

// Represents one delivery observation.
// Missing numeric values are NaN and missing categorical values are "".
type Record struct {
	OrderID              string
	DistanceKm           float64
	Weather              string
	TrafficLevel         string
	TimeOfDay            string
	VehicleType          string
	PreparationTimeMin   float64
	CourierExperienceYrs float64
	DeliveryTimeMin      float64
}

// NewRecord returns a Record with every field missing.
func NewRecord() Record {
	nan := math.NaN()
	return Record{
		DistanceKm:           nan,
		PreparationTimeMin:   nan,
		CourierExperienceYrs: nan,
		DeliveryTimeMin:      nan,
	}
}

// Number returns the value of a numeric field, NaN for any other kind.
func (r Record) Number(f Field) float64 {
	switch f {
	case FieldDistanceKm:
		return r.DistanceKm
	case FieldPreparationTimeMin:
		return r.PreparationTimeMin
	case FieldCourierExperienceYrs:
		return r.CourierExperienceYrs
	case FieldDeliveryTimeMin:
		return r.DeliveryTimeMin
	default:
		return math.NaN()
	}
}

// Label returns the value of a categorical or identifier field, "" otherwise.
func (r Record) Label(f Field) string {
	switch f {
	case FieldOrderID:
		return r.OrderID
	case FieldWeather:
		return r.Weather
	case FieldTrafficLevel:
		return r.TrafficLevel
	case FieldTimeOfDay:
		return r.TimeOfDay
	case FieldVehicleType:
		return r.VehicleType
	default:
		return ""
	}
}

// SetNumber assigns a numeric field. Non-numeric fields are ignored.
func (r *Record) SetNumber(f Field, v float64) {
	switch f {
	case FieldDistanceKm:
		r.DistanceKm = v
	case FieldPreparationTimeMin:
		r.PreparationTimeMin = v
	case FieldCourierExperienceYrs:
		r.CourierExperienceYrs = v
	case FieldDeliveryTimeMin:
		r.DeliveryTimeMin = v
	}
}

// SetLabel assigns a categorical or identifier field. Numeric fields are ignored.
func (r *Record) SetLabel(f Field, v string) {
	switch f {
	case FieldOrderID:
		r.OrderID = v
	case FieldWeather:
		r.Weather = v
	case FieldTrafficLevel:
		r.TrafficLevel = v
	case FieldTimeOfDay:
		r.TimeOfDay = v
	case FieldVehicleType:
		r.VehicleType = v
	}
}

// Missing reports whether the field has no value.
func (r Record) Missing(f Field) bool {
	if f.Kind() == KindNumeric {
		return math.IsNaN(r.Number(f))
	}
	return r.Label(f) == ""
}

// Complete reports whether every required field is present.
func (r Record) Complete() bool {
	for _, f := range Fields {
		if f.Required() && r.Missing(f) {
			return false
		}
	}
	return true
}

// Format renders a field for display; missing values render as "NaN".
func (r Record) Format(f Field) string {
	if r.Missing(f) {
		return "NaN"
	}
	if f.Kind() == KindNumeric {
		return formatNumber(r.Number(f))
	}
	return r.Label(f)
}
