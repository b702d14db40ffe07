package loader

import (
	"delivery-eda-service/internal/domain"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/text/unicode/norm"
)

// nanValues are the cell spellings treated as missing, on top of blank cells.
var nanValues = []string{"", "NA", "N/A", "n/a", "NaN", "nan", "null", "NULL", "None", "none", "-"}

var missingValue = func() map[string]bool {
	m := make(map[string]bool, len(nanValues))
	for _, v := range nanValues {
		m[v] = true
	}
	return m
}()

// loadOptions keeps every column as text so numeric parsing can report
// the offending cell instead of silently turning it into NaN.
func loadOptions() []dataframe.LoadOption {
	return []dataframe.LoadOption{
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nanValues),
	}
}

// frame builds a Dataset from a header row followed by data rows.
// lines holds the source line of each data row for error reporting.
func frame(records [][]string, lines []int) (domain.Dataset, error) {
	records[0] = dedupeHeader(records[0])
	return toDataset(dataframe.LoadRecords(records, loadOptions()...), lines)
}

// dedupeHeader cleans the header names and renames repeats to Name.1,
// Name.2 and so on, which match no field, so the first occurrence is the
// one read.
func dedupeHeader(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, h := range header {
		name := clean(h)
		for n := 1; seen[name]; n++ {
			name = fmt.Sprintf("%s.%d", clean(h), n)
		}
		seen[name] = true
		out[i] = name
	}
	return out
}

// clean trims and NFC-normalizes a header or categorical cell.
func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// toDataset maps the frame's known columns onto typed Records.
// Unknown columns are ignored.
func toDataset(df dataframe.DataFrame, lines []int) (domain.Dataset, error) {
	if df.Err != nil {
		return domain.Dataset{}, df.Err
	}

	type column struct {
		field domain.Field
		name  string
		vals  []string
		nan   []bool
	}

	var (
		cols    []column
		present = make(map[domain.Field]bool)
	)
	for _, name := range df.Names() {
		f, ok := domain.FieldByName(clean(name))
		if !ok || present[f] {
			continue
		}
		present[f] = true
		s := df.Col(name)
		cols = append(cols, column{field: f, name: clean(name), vals: s.Records(), nan: s.IsNaN()})
	}

	for _, f := range domain.RequiredFields() {
		if !present[f] {
			return domain.Dataset{}, &domain.ParseError{Column: f.String(), Err: domain.ErrMissingColumn}
		}
	}

	ds := domain.Dataset{
		Columns: make([]domain.Field, 0, len(cols)),
		Records: make([]domain.Record, df.Nrow()),
	}
	for _, c := range cols {
		ds.Columns = append(ds.Columns, c.field)
	}

	for i := range ds.Records {
		rec := domain.NewRecord()
		for _, c := range cols {
			if c.nan[i] {
				continue
			}
			raw := clean(c.vals[i])
			if missingValue[raw] {
				continue
			}
			if c.field.Kind() != domain.KindNumeric {
				rec.SetLabel(c.field, raw)
				continue
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err == nil && math.IsInf(v, 0) {
				err = errors.New("infinite value")
			}
			if err != nil {
				var numErr *strconv.NumError
				if errors.As(err, &numErr) {
					err = numErr.Err
				}
				return domain.Dataset{}, &domain.ParseError{
					Line:   lines[i],
					Column: c.name,
					Err:    fmt.Errorf("not a number %q: %w", raw, err),
				}
			}
			rec.SetNumber(c.field, v)
		}
		ds.Records[i] = rec
	}

	return ds, nil
}
