package domain

// Allowed values per categorical field used to narrow the display.
// A nil or empty slice allows nothing.
type FilterSelection struct {
	Weather      []string
	TrafficLevel []string
	VehicleType  []string
}

// ObservedSelection selects every value present in the dataset.
func ObservedSelection(d Dataset) FilterSelection {
	return FilterSelection{
		Weather:      d.Observed(FieldWeather),
		TrafficLevel: d.Observed(FieldTrafficLevel),
		VehicleType:  d.Observed(FieldVehicleType),
	}
}

// Values returns the selected values for one of the filter fields.
func (s FilterSelection) Values(f Field) []string {
	switch f {
	case FieldWeather:
		return s.Weather
	case FieldTrafficLevel:
		return s.TrafficLevel
	case FieldVehicleType:
		return s.VehicleType
	default:
		return nil
	}
}

// Allows reports whether a record passes every field of the selection.
func (s FilterSelection) Allows(r Record) bool {
	return contains(s.Weather, r.Weather) &&
		contains(s.TrafficLevel, r.TrafficLevel) &&
		contains(s.VehicleType, r.VehicleType)
}

// Selected reports whether value is allowed for field f.
func (s FilterSelection) Selected(f Field, value string) bool {
	return contains(s.Values(f), value)
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
