package models

import "time"

// IngestionResult summarizes one transform run.
type IngestionResult struct {
	InputPath   string
	OutputPath  string
	RecordCount int
	ObjectName  string
	CompletedAt time.Time
}

type LoadResult struct {
	InputPath  string
	DoctorID   string
	PatientIDs []string
	Linked     bool
}
