package repository

import (
	"context"
	"log/slog"

	"github.com/fsun/ski-results/gen/ent"
	"github.com/fsun/ski-results/gen/ent/competition"
)

type CompetitionRepository interface {
	// Upsert creates or refreshes the competition identified by
	// (season, name) and returns its id.
	Upsert(ctx context.Context, season, name, venue, startDate string) (int, error)
	ListSeasons(ctx context.Context) ([]string, error)
}

type competitionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCompetitionRepository(client *ent.Client, logger *slog.Logger) CompetitionRepository {
	return &competitionRepository{client: client, logger: logger}
}

func (r *competitionRepository) Upsert(ctx context.Context, season, name, venue, startDate string) (int, error) {
	builder := r.client.Competition.Create().
		SetSeason(season).
		SetName(name)
	if venue != "" {
		builder = builder.SetVenue(venue)
	}
	if startDate != "" {
		builder = builder.SetStartDate(startDate)
	}

	id, err := builder.
		OnConflictColumns(competition.FieldSeason, competition.FieldName).
		UpdateNewValues().
		ID(ctx)
	if err != nil {
		r.logger.Error("repository.competition.upsert_failed", "season", season, "name", name, "error", err)
		return 0, err
	}
	return id, nil
}

func (r *competitionRepository) ListSeasons(ctx context.Context) ([]string, error) {
	return r.client.Competition.Query().
		Unique(true).
		Order(ent.Desc(competition.FieldSeason)).
		Select(competition.FieldSeason).
		Strings(ctx)
}
