package analysis

import (
	"delivery-eda-service/internal/domain"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// CorrelationMatrix holds Pearson coefficients between Fields.
// Pairs without enough complete observations, or with a constant side, are NaN.
type CorrelationMatrix struct {
	Fields []domain.Field
	M      *mat.SymDense
}

func (c CorrelationMatrix) At(i, j int) float64 { return c.M.At(i, j) }

// Correlation computes pairwise-complete Pearson correlation between fields.
func Correlation(d domain.Dataset, fields []domain.Field) CorrelationMatrix {
	n := len(fields)
	m := mat.NewSymDense(n, nil)

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			m.SetSym(i, j, pearson(d, fields[i], fields[j]))
		}
	}
	return CorrelationMatrix{Fields: fields, M: m}
}

func pearson(d domain.Dataset, a, b domain.Field) float64 {
	xs := make([]float64, 0, d.Len())
	ys := make([]float64, 0, d.Len())
	for _, r := range d.Records {
		if r.Missing(a) || r.Missing(b) {
			continue
		}
		xs = append(xs, r.Number(a))
		ys = append(ys, r.Number(b))
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	if stat.Variance(xs, nil) == 0 || stat.Variance(ys, nil) == 0 {
		return math.NaN()
	}
	return stat.Correlation(xs, ys, nil)
}
