package handlers

import (
	"delivery-eda-service/internal/analysis"
	"delivery-eda-service/internal/api/dto"
	"delivery-eda-service/internal/domain"
	"delivery-eda-service/internal/ports"
	"delivery-eda-service/internal/services"
	"math"
	"net/http"
)

// SummaryHandler exposes the session overview as JSON.
type SummaryHandler struct {
	Preparer *services.DatasetPreparer
	Store    ports.SessionStore
}

func (h *SummaryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r, h.Store)
	if !ok {
		return
	}

	sel := selectionFromQuery(r.URL.Query(), domain.ObservedSelection(sess.Clean))
	ov := h.Preparer.Overview(sess, sel)

	res := dto.SummaryResponse{
		FileName:     ov.FileName,
		UploadedAt:   sess.UploadedAt,
		RawRows:      ov.RawRows,
		CleanRows:    ov.CleanRows,
		DroppedRows:  ov.Dropped,
		FilteredRows: ov.Filtered.Len(),
		Missing:      make([]dto.MissingResponse, 0, len(ov.Missing)),
		Describe:     make([]dto.DescribeResponse, 0, len(ov.Describe)),
		Categories:   make(map[string][]dto.CategoryResponse, len(domain.FilterFields)),
		Selection: dto.SelectionResponse{
			Weather:      nonNil(sel.Weather),
			TrafficLevel: nonNil(sel.TrafficLevel),
			VehicleType:  nonNil(sel.VehicleType),
		},
	}

	for _, m := range ov.Missing {
		res.Missing = append(res.Missing, dto.MissingResponse{Column: m.Field.String(), Count: m.Count})
	}
	for _, s := range ov.Describe {
		res.Describe = append(res.Describe, dto.DescribeResponse{
			Column: s.Field.String(),
			Count:  s.Count,
			Mean:   finite(s.Mean),
			Std:    finite(s.Std),
			Min:    finite(s.Min),
			Q25:    finite(s.Q25),
			Q50:    finite(s.Q50),
			Q75:    finite(s.Q75),
			Max:    finite(s.Max),
		})
	}
	for _, f := range domain.FilterFields {
		counts := analysis.Categories(sess.Clean, f)
		out := make([]dto.CategoryResponse, 0, len(counts))
		for _, c := range counts {
			out = append(out, dto.CategoryResponse{Value: c.Value, Count: c.Count})
		}
		res.Categories[f.String()] = out
	}

	writeJSON(w, r, http.StatusOK, res)
}

// finite returns nil for values JSON cannot carry.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
