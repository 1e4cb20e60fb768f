package constants

// ProcessingStatus is the canonical outcome for rows in processed_files.
type ProcessingStatus string

// Stable values (store these exact strings in DB).
const (
	ProcessingSuccess ProcessingStatus = "success"
	ProcessingFailed  ProcessingStatus = "failed"
	ProcessingSkipped ProcessingStatus = "skipped"
)

// ResultStatus is the per-athlete outcome on a result row.
type ResultStatus string

const (
	StatusOK  ResultStatus = "OK"
	StatusDNF ResultStatus = "DNF"
	StatusDNS ResultStatus = "DNS"
	StatusDQ  ResultStatus = "DQ"
)

// NormalizeResultStatus coerces arbitrary model output to a known status.
// Anything unrecognized is treated as a normal finish.
func NormalizeResultStatus(s string) ResultStatus {
	switch ResultStatus(s) {
	case StatusDNF, StatusDNS, StatusDQ:
		return ResultStatus(s)
	default:
		return StatusOK
	}
}
