package analysis

import (
	"delivery-eda-service/internal/domain"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// BoxStats describes one box of a box plot. Whiskers reach the most extreme
// points within 1.5 IQR of the box; Points keeps every observation.
type BoxStats struct {
	Label        string
	N            int
	Q1           float64
	Median       float64
	Q3           float64
	LowerWhisker float64
	UpperWhisker float64
	Points       []float64
}

// Box computes the statistics of one sample.
func Box(label string, vals []float64) BoxStats {
	b := BoxStats{Label: label, N: len(vals)}
	if len(vals) == 0 {
		return b
	}

	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)

	b.Q1 = stat.Quantile(0.25, stat.Empirical, sorted, nil)
	b.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	b.Q3 = stat.Quantile(0.75, stat.Empirical, sorted, nil)

	iqr := b.Q3 - b.Q1
	lo, hi := b.Q1-1.5*iqr, b.Q3+1.5*iqr
	b.LowerWhisker, b.UpperWhisker = b.Q1, b.Q3
	for _, v := range sorted {
		if v >= lo {
			b.LowerWhisker = v
			break
		}
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i] <= hi {
			b.UpperWhisker = sorted[i]
			break
		}
	}

	b.Points = vals
	return b
}

// BoxPlot computes one box per value of the categorical field by,
// in first-appearance order.
func BoxPlot(d domain.Dataset, value, by domain.Field) []BoxStats {
	grouped := make(map[string][]float64)
	for _, r := range d.Records {
		if r.Missing(value) || r.Label(by) == "" {
			continue
		}
		grouped[r.Label(by)] = append(grouped[r.Label(by)], r.Number(value))
	}

	labels := d.Observed(by)
	out := make([]BoxStats, 0, len(labels))
	for _, label := range labels {
		out = append(out, Box(label, grouped[label]))
	}
	return out
}
