package pipeline

import (
	"fmt"
	"sort"

	"github.com/fsun/ski-results/constants"
	"github.com/fsun/ski-results/internal/entity"
	"github.com/fsun/ski-results/internal/vlm"
)

// Merge combines per-page payloads for one source file into a single event
// and a deduplicated, ordered result list. Review notes flag data-quality
// signals (metadata disagreement, bib collisions, unparseable times) without
// failing the merge.
func Merge(units []vlm.Payload) (entity.EventRecord, []entity.ResultRow, []string) {
	var notes []string

	ev := reconcileMetadata(units, &notes)

	// Trailing summary pages commonly repeat earlier rows; dedupe by bib,
	// keeping the first occurrence in page order.
	seen := make(map[string]entity.ResultRow)
	var rows []entity.ResultRow
	for _, u := range units {
		for _, e := range u.Results {
			row := toResultRow(e, &notes)
			if row.Bib == "" {
				rows = append(rows, row)
				continue
			}
			if prev, dup := seen[row.Bib]; dup {
				if prev.Name != row.Name || prev.TotalTime != row.TotalTime {
					notes = append(notes, fmt.Sprintf("bib %s repeated with conflicting data; kept first occurrence", row.Bib))
				}
				continue
			}
			rows = append(rows, row)
			seen[row.Bib] = row
		}
	}

	orderRows(rows)

	if len(notes) > 0 {
		ev.NeedsReview = true
		ev.ReviewNotes = notes
	}
	return ev, rows, notes
}

// reconcileMetadata takes the first non-empty value per field. When two units
// disagree on a non-empty value the unit with the most result rows wins, on
// the heuristic that the richer page is more authoritative; the disagreement
// is recorded rather than trusted silently.
func reconcileMetadata(units []vlm.Payload, notes *[]string) entity.EventRecord {
	fields := []struct {
		name string
		get  func(p vlm.Payload) string
		set  func(ev *entity.EventRecord, v string)
	}{
		{"competition", func(p vlm.Payload) string { return p.Competition }, func(ev *entity.EventRecord, v string) { ev.Competition = v }},
		{"date", func(p vlm.Payload) string { return p.Date }, func(ev *entity.EventRecord, v string) { ev.Date = v }},
		{"venue", func(p vlm.Payload) string { return p.Venue }, func(ev *entity.EventRecord, v string) { ev.Venue = v }},
		{"discipline", func(p vlm.Payload) string { return p.Discipline }, func(ev *entity.EventRecord, v string) { ev.Discipline = v }},
		{"gender", func(p vlm.Payload) string { return p.Gender }, func(ev *entity.EventRecord, v string) { ev.Gender = v }},
		{"age_group", func(p vlm.Payload) string { return p.AgeGroup }, func(ev *entity.EventRecord, v string) { ev.AgeGroup = v }},
		{"round_type", func(p vlm.Payload) string { return p.RoundType }, func(ev *entity.EventRecord, v string) { ev.RoundType = v }},
	}

	var richest *vlm.Payload
	for i := range units {
		if richest == nil || len(units[i].Results) > len(richest.Results) {
			richest = &units[i]
		}
	}

	var ev entity.EventRecord
	for _, f := range fields {
		value := ""
		disagrees := false
		for i := range units {
			v := f.get(units[i])
			if v == "" {
				continue
			}
			if value == "" {
				value = v
			} else if v != value {
				disagrees = true
			}
		}
		if disagrees && richest != nil {
			if rv := f.get(*richest); rv != "" {
				value = rv
			}
			*notes = append(*notes, fmt.Sprintf("pages disagree on %s; kept value from richest page", f.name))
		}
		f.set(&ev, value)
	}
	return ev
}

// toResultRow converts one extracted entry, deriving canonical seconds for
// each time string. Unrecognized time values are reported, not zeroed.
func toResultRow(e vlm.Entry, notes *[]string) entity.ResultRow {
	row := entity.ResultRow{
		Rank:      e.Rank,
		Bib:       e.Bib,
		Name:      e.Name,
		Team:      e.Team,
		Run1Time:  e.Run1Time,
		Run2Time:  e.Run2Time,
		TotalTime: e.TotalTime,
		TimeDiff:  e.TimeDiff,
		Status:    constants.NormalizeResultStatus(e.Status),
	}
	// Sheets sometimes print a start-order number next to DNF/DNS/DQ rows;
	// a non-OK row never carries a rank.
	if row.Status != constants.StatusOK {
		row.Rank = nil
	}
	row.Run1Seconds = normalizeTime(e.Run1Time, "run1_time", e.Bib, notes)
	row.Run2Seconds = normalizeTime(e.Run2Time, "run2_time", e.Bib, notes)
	row.TotalSeconds = normalizeTime(e.TotalTime, "total_time", e.Bib, notes)
	return row
}

func normalizeTime(s, field, bib string, notes *[]string) *float64 {
	if v, ok := ToSeconds(s); ok {
		return &v
	}
	if !IsTimeMarker(s) {
		*notes = append(*notes, fmt.Sprintf("unrecognized %s %q for bib %s", field, s, bib))
	}
	return nil
}

// orderRows sorts ranked rows by ascending rank and appends rank-absent rows
// (DNF/DNS/DQ) after them, preserving their original relative order.
func orderRows(rows []entity.ResultRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		ri, rj := rows[i].Rank, rows[j].Rank
		switch {
		case ri != nil && rj != nil:
			return *ri < *rj
		case ri != nil:
			return true
		default:
			return false
		}
	})
}
