package repository

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fsun/ski-results/gen/ent"
	"github.com/fsun/ski-results/gen/ent/event"
	"github.com/fsun/ski-results/internal/entity"
)

type EventRepository interface {
	// Upsert creates or replaces the event keyed by its source file and
	// returns its id. Reprocessing a file lands on the same event row.
	Upsert(ctx context.Context, competitionID int, ev entity.EventRecord) (int, error)
}

type eventRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewEventRepository(client *ent.Client, logger *slog.Logger) EventRepository {
	return &eventRepository{client: client, logger: logger}
}

func (r *eventRepository) Upsert(ctx context.Context, competitionID int, ev entity.EventRecord) (int, error) {
	builder := r.client.Event.Create().
		SetCompetitionID(competitionID).
		SetDiscipline(ev.Discipline).
		SetSourceFile(ev.SourceFile).
		SetNeedsReview(ev.NeedsReview)
	if ev.Gender != "" {
		builder = builder.SetGender(ev.Gender)
	}
	if ev.AgeGroup != "" {
		builder = builder.SetAgeGroup(ev.AgeGroup)
	}
	if ev.RoundType != "" {
		builder = builder.SetRoundType(ev.RoundType)
	}
	if ev.Date != "" {
		builder = builder.SetEventDate(ev.Date)
	}
	if len(ev.ReviewNotes) > 0 {
		builder = builder.SetReviewNotes(strings.Join(ev.ReviewNotes, "; "))
	}

	id, err := builder.
		OnConflictColumns(event.FieldSourceFile).
		UpdateNewValues().
		ID(ctx)
	if err != nil {
		r.logger.Error("repository.event.upsert_failed", "source_file", ev.SourceFile, "error", err)
		return 0, err
	}
	return id, nil
}
