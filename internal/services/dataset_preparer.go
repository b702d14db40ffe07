package services

import (
	"context"
	"delivery-eda-service/internal/analysis"
	"delivery-eda-service/internal/domain"
	"delivery-eda-service/internal/platform/obs"
	"delivery-eda-service/internal/ports"
	"errors"
	"fmt"
	"io"
	"time"
)

// DatasetPreparer turns an uploaded file into a cleaned dataset and narrows
// it for display. Everything except Load is a pure function of its inputs.
type DatasetPreparer struct {
	loader ports.DatasetLoader
	now    func() time.Time
}

func NewDatasetPreparer(loader ports.DatasetLoader) *DatasetPreparer {
	return &DatasetPreparer{loader: loader, now: time.Now}
}

// Load parses the input. Malformed content fails with *domain.ParseError.
func (p *DatasetPreparer) Load(ctx context.Context, name string, r io.Reader) (domain.Dataset, error) {
	ds, err := p.loader.Load(ctx, name, r)
	if err != nil {
		var pe *domain.ParseError
		if errors.As(err, &pe) {
			return domain.Dataset{}, err
		}
		return domain.Dataset{}, fmt.Errorf("load dataset: %w", err)
	}
	return ds, nil
}

// ReportMissing counts missing values for every column present in d.
func (p *DatasetPreparer) ReportMissing(d domain.Dataset) domain.MissingReport {
	report := make(domain.MissingReport, len(d.Columns))
	for _, c := range d.Columns {
		report[c] = 0
	}
	for _, r := range d.Records {
		for _, c := range d.Columns {
			if r.Missing(c) {
				report[c]++
			}
		}
	}
	return report
}

// Clean drops records missing a required field, then fills missing courier
// experience with the median of the record's vehicle type among the kept
// records. A vehicle type with no observed experience stays missing.
// d is not modified.
func (p *DatasetPreparer) Clean(d domain.Dataset) domain.Dataset {
	out := domain.Dataset{
		Columns: append([]domain.Field(nil), d.Columns...),
		Records: make([]domain.Record, 0, len(d.Records)),
	}
	for _, r := range d.Records {
		if r.Complete() {
			out.Records = append(out.Records, r)
		}
	}

	byVehicle := make(map[string][]float64)
	for _, r := range out.Records {
		if !r.Missing(domain.FieldCourierExperienceYrs) {
			byVehicle[r.VehicleType] = append(byVehicle[r.VehicleType], r.CourierExperienceYrs)
		}
	}

	medians := make(map[string]float64, len(byVehicle))
	for vehicle, vals := range byVehicle {
		medians[vehicle] = analysis.Median(vals)
	}

	for i := range out.Records {
		r := &out.Records[i]
		if !r.Missing(domain.FieldCourierExperienceYrs) {
			continue
		}
		if m, ok := medians[r.VehicleType]; ok {
			r.CourierExperienceYrs = m
		}
	}

	return out
}

// Filter keeps, in order, the records whose weather, traffic level and
// vehicle type are all selected. An empty selection for a field keeps nothing.
func (p *DatasetPreparer) Filter(d domain.Dataset, sel domain.FilterSelection) domain.Dataset {
	out := domain.Dataset{
		Columns: append([]domain.Field(nil), d.Columns...),
		Records: make([]domain.Record, 0, len(d.Records)),
	}
	for _, r := range d.Records {
		if sel.Allows(r) {
			out.Records = append(out.Records, r)
		}
	}
	return out
}

// Prepare runs load, report and clean, returning a session ready to store.
func (p *DatasetPreparer) Prepare(ctx context.Context, name string, r io.Reader) (sess *domain.Session, err error) {
	defer obs.Time(ctx, "preparer.prepare")(&err)

	raw, err := p.Load(ctx, name, r)
	if err != nil {
		return nil, err
	}

	now := p.now()
	sess = &domain.Session{
		FileName:   name,
		UploadedAt: now,
		LastSeen:   now,
		Raw:        raw,
		Missing:    p.ReportMissing(raw),
		Clean:      p.Clean(raw),
	}
	obs.RecordDropped(sess.Dropped())

	return sess, nil
}
