package vlm

// Payload is the structured event sheet the model is asked to produce:
// competition metadata plus the list of result entries.
type Payload struct {
	Competition string  `json:"competition"`
	Date        string  `json:"date"`
	Venue       string  `json:"venue"`
	Discipline  string  `json:"discipline"`
	Gender      string  `json:"gender"`
	AgeGroup    string  `json:"age_group"`
	RoundType   string  `json:"round_type"`
	Results     []Entry `json:"results"`
}

// Entry is one athlete's row as extracted, times kept in original format.
type Entry struct {
	Rank      *int   `json:"rank"`
	Bib       string `json:"bib"`
	Name      string `json:"name"`
	Team      string `json:"team"`
	Run1Time  string `json:"run1_time"`
	Run2Time  string `json:"run2_time"`
	TotalTime string `json:"total_time"`
	TimeDiff  string `json:"time_diff"`
	Status    string `json:"status"`
}
