package domain

import "time"

// Session is the per-browser working context of the pipeline.
// Raw is the dataset as loaded, Clean is the result of cleaning it,
// and Missing is the report computed before any row was dropped.
type Session struct {
	ID         string
	FileName   string
	UploadedAt time.Time
	LastSeen   time.Time

	Raw     Dataset
	Missing MissingReport
	Clean   Dataset
}

// Dropped returns how many rows cleaning removed.
func (s *Session) Dropped() int {
	return s.Raw.Len() - s.Clean.Len()
}
