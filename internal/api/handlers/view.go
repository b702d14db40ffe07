package handlers

import (
	"delivery-eda-service/internal/analysis"
	"delivery-eda-service/internal/ports"
	"delivery-eda-service/internal/services"
	"embed"
	"html/template"
	"math"
	"strconv"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"describeStats": func() []string { return describeStats },
}).ParseFS(templateFS, "templates/index.html"))

var chartTitles = map[ports.ChartKind]string{
	ports.ChartHistogram:   "Delivery time distribution (minutes)",
	ports.ChartCorrelation: "Correlation of numeric features",
	ports.ChartScatter:     "Distance vs delivery time (by traffic level)",
	ports.ChartBoxVehicle:  "Delivery time by vehicle type",
	ports.ChartBoxWeather:  "Delivery time by weather",
}

type pageView struct {
	Error   string
	Info    string
	MaxMB   int64
	HasData bool

	FileName     string
	RawRows      int
	CleanRows    int
	Dropped      int
	FilteredRows int

	Missing  []missingRow
	Headers  []string
	Preview  [][]string
	Describe []describeRow
	Filters  []filterGroup
	Charts   []chartView

	Recommendations []analysis.Recommendation
}

type missingRow struct {
	Column string
	Count  int
}

type describeRow struct {
	Column string
	Cells  []string
}

type filterGroup struct {
	Title   string
	Param   string
	Options []filterOption
}

type filterOption struct {
	Value   string
	Checked bool
}

type chartView struct {
	Title string
	URL   string
}

// describeStats names the describe-table columns in display order.
var describeStats = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}

func newPageView(ov services.Overview) pageView {
	v := pageView{
		HasData:         true,
		FileName:        ov.FileName,
		RawRows:         ov.RawRows,
		CleanRows:       ov.CleanRows,
		Dropped:         ov.Dropped,
		FilteredRows:    ov.Filtered.Len(),
		Recommendations: analysis.Recommendations(),
	}

	for _, m := range ov.Missing {
		v.Missing = append(v.Missing, missingRow{Column: m.Field.String(), Count: m.Count})
	}

	for _, c := range ov.Columns {
		v.Headers = append(v.Headers, c.String())
	}
	for _, r := range ov.Preview {
		cells := make([]string, 0, len(ov.Columns))
		for _, c := range ov.Columns {
			cells = append(cells, r.Format(c))
		}
		v.Preview = append(v.Preview, cells)
	}

	for _, s := range ov.Describe {
		v.Describe = append(v.Describe, describeRow{
			Column: s.Field.String(),
			Cells: []string{
				strconv.Itoa(s.Count),
				stat(s.Mean), stat(s.Std), stat(s.Min),
				stat(s.Q25), stat(s.Q50), stat(s.Q75), stat(s.Max),
			},
		})
	}

	for _, p := range filterParams {
		g := filterGroup{Title: p.title, Param: p.param}
		for _, val := range ov.Options.Values(p.field) {
			g.Options = append(g.Options, filterOption{Value: val, Checked: ov.Selection.Selected(p.field, val)})
		}
		v.Filters = append(v.Filters, g)
	}

	query := selectionQuery(ov.Selection)
	for _, k := range ports.ChartKinds {
		v.Charts = append(v.Charts, chartView{
			Title: chartTitles[k],
			URL:   "/charts/" + string(k) + ".svg?" + query,
		})
	}

	return v
}

func stat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

