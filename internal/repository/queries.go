package repository

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/fsun/ski-results/gen/ent"
	"github.com/fsun/ski-results/gen/ent/competition"
	"github.com/fsun/ski-results/gen/ent/event"
	"github.com/fsun/ski-results/gen/ent/predicate"
	"github.com/fsun/ski-results/gen/ent/raceresult"
)

// ResultFilter narrows a result search. Empty fields match everything.
type ResultFilter struct {
	Season      string
	Competition string // substring match on competition name
	Discipline  string
	Gender      string
	AgeGroup    string
	Athlete     string // substring match, Chinese or pinyin
	Limit       int
}

// ResultDetail is one result row flattened with its event and competition
// context, the shape consumed by exports and athlete history.
type ResultDetail struct {
	Season      string
	Competition string
	Venue       string
	EventDate   string
	Discipline  string
	Gender      string
	AgeGroup    string
	RoundType   string
	Rank        *int
	Bib         string
	Name        string
	Team        string
	Run1Time    string
	Run2Time    string
	TotalTime   string
	TimeDiff    string
	TotalSec    *float64
	Status      string
}

// FilterOptions lists the distinct values available for each search facet,
// narrowed by whatever the caller has already selected.
type FilterOptions struct {
	Seasons      []string
	Competitions []string
	Disciplines  []string
	Genders      []string
	AgeGroups    []string
}

// Statistics is the aggregate view of everything ingested so far.
type Statistics struct {
	Competitions int
	Events       int
	Results      int
	Athletes     int
	ByDiscipline map[string]int
}

type QueryRepository interface {
	SearchResults(ctx context.Context, f ResultFilter) ([]ResultDetail, error)
	AthleteHistory(ctx context.Context, name string) ([]ResultDetail, error)
	FilterOptions(ctx context.Context, f ResultFilter) (*FilterOptions, error)
	Statistics(ctx context.Context) (*Statistics, error)
}

type queryRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewQueryRepository(client *ent.Client, logger *slog.Logger) QueryRepository {
	return &queryRepository{client: client, logger: logger}
}

func (r *queryRepository) SearchResults(ctx context.Context, f ResultFilter) ([]ResultDetail, error) {
	q := r.client.RaceResult.Query().
		Where(eventPredicates(f)...).
		WithEvent(func(eq *ent.EventQuery) { eq.WithCompetition() }).
		Order(ent.Asc(raceresult.FieldEventID), ent.Asc(raceresult.FieldRank))
	if f.Athlete != "" {
		q = q.Where(athletePredicate(f.Athlete))
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("repository.query.search_failed", "error", err)
		return nil, err
	}
	return toDetails(rows), nil
}

func (r *queryRepository) AthleteHistory(ctx context.Context, name string) ([]ResultDetail, error) {
	rows, err := r.client.RaceResult.Query().
		Where(athletePredicate(name)).
		WithEvent(func(eq *ent.EventQuery) { eq.WithCompetition() }).
		All(ctx)
	if err != nil {
		r.logger.Error("repository.query.history_failed", "athlete", name, "error", err)
		return nil, err
	}

	details := toDetails(rows)
	sort.SliceStable(details, func(i, j int) bool {
		if details[i].Season != details[j].Season {
			return details[i].Season < details[j].Season
		}
		return details[i].EventDate < details[j].EventDate
	})
	return details, nil
}

func (r *queryRepository) FilterOptions(ctx context.Context, f ResultFilter) (*FilterOptions, error) {
	seasons, err := r.client.Competition.Query().
		Unique(true).
		Select(competition.FieldSeason).
		Strings(ctx)
	if err != nil {
		return nil, err
	}

	compQ := r.client.Competition.Query()
	if f.Season != "" {
		compQ = compQ.Where(competition.Season(f.Season))
	}
	comps, err := compQ.Unique(true).Select(competition.FieldName).Strings(ctx)
	if err != nil {
		return nil, err
	}

	evQ := func() *ent.EventQuery {
		q := r.client.Event.Query()
		if f.Season != "" {
			q = q.Where(event.HasCompetitionWith(competition.Season(f.Season)))
		}
		if f.Discipline != "" {
			q = q.Where(event.Discipline(f.Discipline))
		}
		return q
	}
	disciplines, err := evQ().Unique(true).Select(event.FieldDiscipline).Strings(ctx)
	if err != nil {
		return nil, err
	}
	genders, err := evQ().Unique(true).Select(event.FieldGender).Strings(ctx)
	if err != nil {
		return nil, err
	}
	ageGroups, err := evQ().Unique(true).Select(event.FieldAgeGroup).Strings(ctx)
	if err != nil {
		return nil, err
	}

	return &FilterOptions{
		Seasons:      cleanSorted(seasons),
		Competitions: cleanSorted(comps),
		Disciplines:  cleanSorted(disciplines),
		Genders:      cleanSorted(genders),
		AgeGroups:    cleanSorted(ageGroups),
	}, nil
}

func (r *queryRepository) Statistics(ctx context.Context) (*Statistics, error) {
	comps, err := r.client.Competition.Query().Count(ctx)
	if err != nil {
		return nil, err
	}
	events, err := r.client.Event.Query().Count(ctx)
	if err != nil {
		return nil, err
	}
	results, err := r.client.RaceResult.Query().Count(ctx)
	if err != nil {
		return nil, err
	}
	names, err := r.client.RaceResult.Query().
		Unique(true).
		Select(raceresult.FieldName).
		Strings(ctx)
	if err != nil {
		return nil, err
	}

	var perDiscipline []struct {
		Discipline string `json:"discipline"`
		Count      int    `json:"count"`
	}
	err = r.client.Event.Query().
		GroupBy(event.FieldDiscipline).
		Aggregate(ent.Count()).
		Scan(ctx, &perDiscipline)
	if err != nil {
		return nil, err
	}
	byDiscipline := make(map[string]int, len(perDiscipline))
	for _, d := range perDiscipline {
		byDiscipline[d.Discipline] = d.Count
	}

	return &Statistics{
		Competitions: comps,
		Events:       events,
		Results:      results,
		Athletes:     len(names),
		ByDiscipline: byDiscipline,
	}, nil
}

// eventPredicates maps the event- and competition-level facets of a filter
// onto result predicates.
func eventPredicates(f ResultFilter) []predicate.RaceResult {
	var eventPreds []predicate.Event
	if f.Discipline != "" {
		eventPreds = append(eventPreds, event.Discipline(f.Discipline))
	}
	if f.Gender != "" {
		eventPreds = append(eventPreds, event.Gender(f.Gender))
	}
	if f.AgeGroup != "" {
		eventPreds = append(eventPreds, event.AgeGroup(f.AgeGroup))
	}

	var compPreds []predicate.Competition
	if f.Season != "" {
		compPreds = append(compPreds, competition.Season(f.Season))
	}
	if f.Competition != "" {
		compPreds = append(compPreds, competition.NameContains(f.Competition))
	}
	if len(compPreds) > 0 {
		eventPreds = append(eventPreds, event.HasCompetitionWith(compPreds...))
	}

	if len(eventPreds) == 0 {
		return nil
	}
	return []predicate.RaceResult{raceresult.HasEventWith(eventPreds...)}
}

// athletePredicate routes ASCII queries to the pinyin column and anything
// else to the raw name column.
func athletePredicate(q string) predicate.RaceResult {
	if looksLikePinyin(q) {
		return raceresult.NamePinyinContains(strings.ToLower(q))
	}
	return raceresult.NameContains(q)
}

func toDetails(rows []*ent.RaceResult) []ResultDetail {
	details := make([]ResultDetail, 0, len(rows))
	for _, row := range rows {
		d := ResultDetail{
			Rank:      row.Rank,
			Bib:       row.Bib,
			Name:      row.Name,
			Team:      row.Team,
			Run1Time:  row.Run1Time,
			Run2Time:  row.Run2Time,
			TotalTime: row.TotalTime,
			TimeDiff:  row.TimeDiff,
			TotalSec:  row.TotalSeconds,
			Status:    row.Status,
		}
		if ev := row.Edges.Event; ev != nil {
			d.Discipline = ev.Discipline
			d.Gender = ev.Gender
			d.AgeGroup = ev.AgeGroup
			d.RoundType = ev.RoundType
			d.EventDate = ev.EventDate
			if c := ev.Edges.Competition; c != nil {
				d.Season = c.Season
				d.Competition = c.Name
				d.Venue = c.Venue
			}
		}
		details = append(details, d)
	}
	return details
}

func cleanSorted(vals []string) []string {
	out := vals[:0]
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
