package domain

import (
	"strconv"
)

// Ordered collection of Records worked on by the preparation pipeline.
// Columns lists the fields present in the input header, in header order.
type Dataset struct {
	Columns []Field
	Records []Record
}

func (d Dataset) Len() int { return len(d.Records) }

// HasColumn reports whether the input carried the given field.
func (d Dataset) HasColumn(f Field) bool {
	for _, c := range d.Columns {
		if c == f {
			return true
		}
	}
	return false
}

// Head returns at most n leading records.
func (d Dataset) Head(n int) []Record {
	if n > len(d.Records) {
		n = len(d.Records)
	}
	return d.Records[:n]
}

// Numbers returns the non-missing values of a numeric field, in row order.
func (d Dataset) Numbers(f Field) []float64 {
	out := make([]float64, 0, len(d.Records))
	for _, r := range d.Records {
		if !r.Missing(f) {
			out = append(out, r.Number(f))
		}
	}
	return out
}

// Observed returns the distinct non-missing values of a categorical field
// in order of first appearance.
func (d Dataset) Observed(f Field) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range d.Records {
		v := r.Label(f)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// MissingReport holds the number of missing values per present field.
type MissingReport map[Field]int

// MissingCount pairs a field with its missing-value count.
type MissingCount struct {
	Field Field
	Count int
}

// Ordered returns the report in column order of the given dataset.
func (m MissingReport) Ordered(columns []Field) []MissingCount {
	out := make([]MissingCount, 0, len(columns))
	for _, c := range columns {
		if n, ok := m[c]; ok {
			out = append(out, MissingCount{Field: c, Count: n})
		}
	}
	return out
}

// Total sums the missing values across all fields.
func (m MissingReport) Total() int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
