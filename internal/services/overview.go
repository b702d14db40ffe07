package services

import (
	"delivery-eda-service/internal/analysis"
	"delivery-eda-service/internal/domain"
)

// PreviewRows is how many cleaned records the overview shows.
const PreviewRows = 10

// Overview is everything the dashboard shows for one session and selection.
type Overview struct {
	FileName  string
	RawRows   int
	CleanRows int
	Dropped   int

	Missing  []domain.MissingCount
	Columns  []domain.Field
	Preview  []domain.Record
	Describe []analysis.Summary

	// Options holds every observed value per filter field; Selection is what
	// the charts are currently narrowed to.
	Options   domain.FilterSelection
	Selection domain.FilterSelection
	Filtered  domain.Dataset
}

// Overview computes the dashboard contents. The statistics describe the
// cleaned dataset; only Filtered depends on the selection.
func (p *DatasetPreparer) Overview(sess *domain.Session, sel domain.FilterSelection) Overview {
	return Overview{
		FileName:  sess.FileName,
		RawRows:   sess.Raw.Len(),
		CleanRows: sess.Clean.Len(),
		Dropped:   sess.Dropped(),
		Missing:   sess.Missing.Ordered(sess.Raw.Columns),
		Columns:   sess.Clean.Columns,
		Preview:   sess.Clean.Head(PreviewRows),
		Describe:  analysis.Describe(sess.Clean),
		Options:   domain.ObservedSelection(sess.Clean),
		Selection: sel,
		Filtered:  p.Filter(sess.Clean, sel),
	}
}
