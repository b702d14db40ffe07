package analysis

import (
	"delivery-eda-service/internal/domain"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Histogram holds equal-width bins shared by every group.
// Edges has one more element than each group's Counts.
type Histogram struct {
	Edges  []float64
	Groups []HistogramGroup
}

type HistogramGroup struct {
	Label  string
	Counts []float64
}

// MaxCount returns the tallest stacked bar.
func (h Histogram) MaxCount() float64 {
	if len(h.Groups) == 0 {
		return 0
	}
	var best float64
	for i := range h.Groups[0].Counts {
		var total float64
		for _, g := range h.Groups {
			total += g.Counts[i]
		}
		best = math.Max(best, total)
	}
	return best
}

// StackedHistogram bins value into the given number of bins, split by the
// categorical field by. Groups follow first-appearance order of by.
func StackedHistogram(d domain.Dataset, value, by domain.Field, bins int) Histogram {
	all := d.Numbers(value)
	if len(all) == 0 || bins < 1 {
		return Histogram{}
	}

	lo, hi := floats.Min(all), floats.Max(all)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	edges := floats.Span(make([]float64, bins+1), lo, hi)
	// stat.Histogram wants every value strictly below the last divider.
	dividers := append([]float64(nil), edges...)
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	grouped := make(map[string][]float64)
	for _, r := range d.Records {
		if r.Missing(value) {
			continue
		}
		grouped[r.Label(by)] = append(grouped[r.Label(by)], r.Number(value))
	}

	labels := d.Observed(by)
	if _, ok := grouped[""]; ok {
		labels = append(labels, "")
	}

	h := Histogram{Edges: edges}
	for _, label := range labels {
		xs := grouped[label]
		sort.Float64s(xs)
		h.Groups = append(h.Groups, HistogramGroup{
			Label:  label,
			Counts: stat.Histogram(nil, dividers, xs, nil),
		})
	}
	return h
}
