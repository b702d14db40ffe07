package handlers

import (
	"delivery-eda-service/internal/domain"
	"net/url"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Query parameters carrying the filter selection.
const (
	paramFiltered = "filtered"
	paramWeather  = "weather"
	paramTraffic  = "traffic"
	paramVehicle  = "vehicle"
)

var filterParams = []struct {
	field domain.Field
	param string
	title string
}{
	{domain.FieldWeather, paramWeather, "Weather"},
	{domain.FieldTrafficLevel, paramTraffic, "Traffic Level"},
	{domain.FieldVehicleType, paramVehicle, "Vehicle Type"},
}

// selectionFromQuery reads the selection from the query string. Without the
// filtered marker every observed value is selected; with it, a field with no
// values selects nothing.
func selectionFromQuery(q url.Values, observed domain.FilterSelection) domain.FilterSelection {
	if q.Get(paramFiltered) == "" {
		return observed
	}
	return domain.FilterSelection{
		Weather:      values(q, paramWeather),
		TrafficLevel: values(q, paramTraffic),
		VehicleType:  values(q, paramVehicle),
	}
}

func values(q url.Values, key string) []string {
	var out []string
	for _, v := range q[key] {
		if v = norm.NFC.String(strings.TrimSpace(v)); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// selectionQuery encodes sel so that selectionFromQuery reads it back.
func selectionQuery(sel domain.FilterSelection) string {
	q := url.Values{paramFiltered: {"1"}}
	for _, p := range filterParams {
		for _, v := range sel.Values(p.field) {
			q.Add(p.param, v)
		}
	}
	return q.Encode()
}
