package repository

import (
	"context"
	"log/slog"

	"github.com/fsun/ski-results/gen/ent"
	"github.com/fsun/ski-results/internal/entity"
)

// IngestSink bundles the per-entity repositories behind the pipeline's
// persistence contract.
type IngestSink struct {
	competitions CompetitionRepository
	events       EventRepository
	results      ResultRepository
}

func NewIngestSink(client *ent.Client, logger *slog.Logger) *IngestSink {
	return &IngestSink{
		competitions: NewCompetitionRepository(client, logger),
		events:       NewEventRepository(client, logger),
		results:      NewResultRepository(client, logger),
	}
}

func (s *IngestSink) UpsertCompetition(ctx context.Context, season, name, venue, date string) (int, error) {
	return s.competitions.Upsert(ctx, season, name, venue, date)
}

func (s *IngestSink) UpsertEvent(ctx context.Context, competitionID int, ev entity.EventRecord) (int, error) {
	return s.events.Upsert(ctx, competitionID, ev)
}

func (s *IngestSink) ReplaceResults(ctx context.Context, eventID int, rows []entity.ResultRow) error {
	return s.results.Replace(ctx, eventID, rows)
}
