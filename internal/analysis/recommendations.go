package analysis

// Recommendation is a fixed business takeaway shown under the charts.
type Recommendation struct {
	Title  string
	Detail string
}

var recommendations = []Recommendation{
	{
		Title:  "Bad weather and heavy traffic lengthen deliveries",
		Detail: "Add an extra buffer to the estimated arrival time under those conditions.",
	},
	{
		Title:  "Long restaurant preparation adds delay",
		Detail: "Prioritize orders with long preparation when the area or conditions are poor.",
	},
	{
		Title:  "Distance is close to linear with delivery time",
		Detail: "Route optimization matters most at peak hours and in extreme conditions.",
	},
	{
		Title:  "Courier experience has an effect",
		Detail: "Assign busy areas to experienced couriers first.",
	},
}

// Recommendations returns the static list; callers may not modify it.
func Recommendations() []Recommendation {
	return recommendations
}
