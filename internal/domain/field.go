package domain

// Field identifies one column of the delivery dataset.
type Field int

const (
	FieldOrderID Field = iota
	FieldDistanceKm
	FieldWeather
	FieldTrafficLevel
	FieldTimeOfDay
	FieldVehicleType
	FieldPreparationTimeMin
	FieldCourierExperienceYrs
	FieldDeliveryTimeMin
)

// Kind describes how a Field's values are stored and compared.
type Kind int

const (
	KindIdentifier Kind = iota
	KindNumeric
	KindCategorical
)

// Fields lists every known column in the order of the reference dataset.
var Fields = []Field{
	FieldOrderID,
	FieldDistanceKm,
	FieldWeather,
	FieldTrafficLevel,
	FieldTimeOfDay,
	FieldVehicleType,
	FieldPreparationTimeMin,
	FieldCourierExperienceYrs,
	FieldDeliveryTimeMin,
}

// NumericFields are the measures used for statistics and correlation.
var NumericFields = []Field{
	FieldDistanceKm,
	FieldPreparationTimeMin,
	FieldCourierExperienceYrs,
	FieldDeliveryTimeMin,
}

// FilterFields are the categorical fields a user can narrow the display by.
var FilterFields = []Field{
	FieldWeather,
	FieldTrafficLevel,
	FieldVehicleType,
}

var fieldNames = map[Field]string{
	FieldOrderID:              "Order_ID",
	FieldDistanceKm:           "Distance_km",
	FieldWeather:              "Weather",
	FieldTrafficLevel:         "Traffic_Level",
	FieldTimeOfDay:            "Time_of_Day",
	FieldVehicleType:          "Vehicle_Type",
	FieldPreparationTimeMin:   "Preparation_Time_min",
	FieldCourierExperienceYrs: "Courier_Experience_yrs",
	FieldDeliveryTimeMin:      "Delivery_Time_min",
}

// String returns the column header used in input files.
func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return "unknown"
}

func (f Field) Kind() Kind {
	switch f {
	case FieldOrderID:
		return KindIdentifier
	case FieldWeather, FieldTrafficLevel, FieldTimeOfDay, FieldVehicleType:
		return KindCategorical
	default:
		return KindNumeric
	}
}

// Required reports whether a Record missing this field is dropped by cleaning.
func (f Field) Required() bool {
	switch f {
	case FieldOrderID, FieldCourierExperienceYrs:
		return false
	default:
		return true
	}
}

// FieldByName resolves a column header to its Field.
func FieldByName(name string) (Field, bool) {
	for f, n := range fieldNames {
		if n == name {
			return f, true
		}
	}
	return 0, false
}

// RequiredFields returns the fields every cleaned Record must carry.
func RequiredFields() []Field {
	out := make([]Field, 0, len(Fields))
	for _, f := range Fields {
		if f.Required() {
			out = append(out, f)
		}
	}
	return out
}
