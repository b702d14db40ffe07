// Package analysis computes the descriptive statistics shown for a cleaned
// dataset and the aggregates the charts are drawn from.
package analysis

import (
	"delivery-eda-service/internal/domain"
	"math"

	"github.com/go-gota/gota/series"
)

// Summary is one row of the describe table.
type Summary struct {
	Field domain.Field
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Q25   float64
	Q50   float64
	Q75   float64
	Max   float64
}

// Describe summarizes every numeric column present in d, skipping missing values.
func Describe(d domain.Dataset) []Summary {
	out := make([]Summary, 0, len(domain.NumericFields))
	for _, f := range domain.NumericFields {
		if !d.HasColumn(f) {
			continue
		}
		out = append(out, describe(f, d.Numbers(f)))
	}
	return out
}

func describe(f domain.Field, vals []float64) Summary {
	nan := math.NaN()
	s := Summary{Field: f, Count: len(vals), Mean: nan, Std: nan, Min: nan, Q25: nan, Q50: nan, Q75: nan, Max: nan}
	if len(vals) == 0 {
		return s
	}

	col := series.Floats(vals)
	s.Mean = col.Mean()
	if len(vals) > 1 {
		s.Std = col.StdDev()
	}
	s.Min = col.Min()
	s.Q25 = col.Quantile(0.25)
	s.Q50 = col.Median()
	s.Q75 = col.Quantile(0.75)
	s.Max = col.Max()
	return s
}

// Median returns the median of vals, NaN when empty.
func Median(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	return series.Floats(vals).Median()
}

// CategoryCount is the number of records carrying one categorical value.
type CategoryCount struct {
	Value string
	Count int
}

// Categories counts the values of f in order of first appearance.
func Categories(d domain.Dataset, f domain.Field) []CategoryCount {
	idx := make(map[string]int)
	var out []CategoryCount
	for _, r := range d.Records {
		v := r.Label(f)
		if v == "" {
			continue
		}
		i, ok := idx[v]
		if !ok {
			i = len(out)
			idx[v] = i
			out = append(out, CategoryCount{Value: v})
		}
		out[i].Count++
	}
	return out
}
