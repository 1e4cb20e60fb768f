package entity

import "github.com/fsun/ski-results/constants"

// EventRecord is the competition/event metadata extracted for one source file.
// It must be consistent across all extraction units of the file; disagreements
// are reconciled by the merger and surfaced through NeedsReview/ReviewNotes.
type EventRecord struct {
	Season      string
	Competition string
	Date        string
	Venue       string
	Discipline  string
	Gender      string
	AgeGroup    string
	RoundType   string
	SourceFile  string

	NeedsReview bool
	ReviewNotes []string
}

// ResultRow is one athlete's outcome within an event.
type ResultRow struct {
	Rank *int
	Bib  string
	Name string
	Team string

	Run1Time  string
	Run2Time  string
	TotalTime string
	TimeDiff  string

	Run1Seconds  *float64
	Run2Seconds  *float64
	TotalSeconds *float64

	Status constants.ResultStatus
}

// ProcessingRecord is the per-file outcome that makes runs resumable.
type ProcessingRecord struct {
	FileKey     string
	FileType    string
	Status      constants.ProcessingStatus
	ErrorReason string
}
