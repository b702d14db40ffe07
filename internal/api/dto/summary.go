package dto

import "time"

type MissingResponse struct {
	Column string `json:"column"`
	Count  int    `json:"count"`
}

type CategoryResponse struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// DescribeResponse is one describe-table row. Statistics that are undefined
// for the column, such as the std of a single value, are null.
type DescribeResponse struct {
	Column string   `json:"column"`
	Count  int      `json:"count"`
	Mean   *float64 `json:"mean"`
	Std    *float64 `json:"std"`
	Min    *float64 `json:"min"`
	Q25    *float64 `json:"25%"`
	Q50    *float64 `json:"50%"`
	Q75    *float64 `json:"75%"`
	Max    *float64 `json:"max"`
}

type SelectionResponse struct {
	Weather      []string `json:"weather"`
	TrafficLevel []string `json:"traffic_level"`
	VehicleType  []string `json:"vehicle_type"`
}

type SummaryResponse struct {
	FileName     string                        `json:"file_name"`
	UploadedAt   time.Time                     `json:"uploaded_at"`
	RawRows      int                           `json:"raw_rows"`
	CleanRows    int                           `json:"clean_rows"`
	DroppedRows  int                           `json:"dropped_rows"`
	FilteredRows int                           `json:"filtered_rows"`
	Missing      []MissingResponse             `json:"missing"`
	Describe     []DescribeResponse            `json:"describe"`
	Categories   map[string][]CategoryResponse `json:"categories"`
	Selection    SelectionResponse             `json:"selection"`
}
