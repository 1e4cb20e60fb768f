package repository

import (
	"context"
	"log/slog"

	"github.com/fsun/ski-results/gen/ent"
	"github.com/fsun/ski-results/gen/ent/raceresult"
	"github.com/fsun/ski-results/internal/entity"
)

type ResultRepository interface {
	// Replace swaps out the full result set of an event. Per-event replace
	// plus the unique source_file key is what makes ingestion idempotent.
	Replace(ctx context.Context, eventID int, rows []entity.ResultRow) error
}

type resultRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewResultRepository(client *ent.Client, logger *slog.Logger) ResultRepository {
	return &resultRepository{client: client, logger: logger}
}

func (r *resultRepository) Replace(ctx context.Context, eventID int, rows []entity.ResultRow) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}

	if _, err := tx.RaceResult.Delete().
		Where(raceresult.EventID(eventID)).
		Exec(ctx); err != nil {
		return rollback(tx, err)
	}

	builders := make([]*ent.RaceResultCreate, len(rows))
	for i, row := range rows {
		b := tx.RaceResult.Create().
			SetEventID(eventID).
			SetName(row.Name).
			SetStatus(string(row.Status)).
			SetNillableRank(row.Rank).
			SetNillableRun1Seconds(row.Run1Seconds).
			SetNillableRun2Seconds(row.Run2Seconds).
			SetNillableTotalSeconds(row.TotalSeconds)
		if row.Bib != "" {
			b = b.SetBib(row.Bib)
		}
		if row.Team != "" {
			b = b.SetTeam(row.Team)
		}
		if row.Run1Time != "" {
			b = b.SetRun1Time(row.Run1Time)
		}
		if row.Run2Time != "" {
			b = b.SetRun2Time(row.Run2Time)
		}
		if row.TotalTime != "" {
			b = b.SetTotalTime(row.TotalTime)
		}
		if row.TimeDiff != "" {
			b = b.SetTimeDiff(row.TimeDiff)
		}
		if py := NamePinyin(row.Name); py != "" {
			b = b.SetNamePinyin(py)
		}
		builders[i] = b
	}
	if _, err := tx.RaceResult.CreateBulk(builders...).Save(ctx); err != nil {
		return rollback(tx, err)
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("repository.results.replace_failed", "event_id", eventID, "error", err)
		return err
	}
	return nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return rerr
	}
	return err
}
