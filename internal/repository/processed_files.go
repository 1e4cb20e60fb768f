package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/fsun/ski-results/constants"
	"github.com/fsun/ski-results/gen/ent"
	"github.com/fsun/ski-results/gen/ent/processedfile"
	"github.com/fsun/ski-results/internal/entity"
)

type ProcessedFileRepository interface {
	// IsProcessed reports whether the file's last recorded outcome was a
	// success. Failed and skipped files stay eligible for another run.
	IsProcessed(ctx context.Context, fileKey string) (bool, error)
	// RecordOutcome upserts the file's state row, keyed on its storage key.
	RecordOutcome(ctx context.Context, rec entity.ProcessingRecord) error
	ListFailures(ctx context.Context) ([]*ent.ProcessedFile, error)
}

type processedFileRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProcessedFileRepository(client *ent.Client, logger *slog.Logger) ProcessedFileRepository {
	return &processedFileRepository{client: client, logger: logger}
}

func (r *processedFileRepository) IsProcessed(ctx context.Context, fileKey string) (bool, error) {
	return r.client.ProcessedFile.Query().
		Where(
			processedfile.FileKey(fileKey),
			processedfile.Status(string(constants.ProcessingSuccess)),
		).
		Exist(ctx)
}

func (r *processedFileRepository) RecordOutcome(ctx context.Context, rec entity.ProcessingRecord) error {
	builder := r.client.ProcessedFile.Create().
		SetFileKey(rec.FileKey).
		SetStatus(string(rec.Status)).
		// always set, so a success clears the previous attempt's error
		SetErrorMessage(rec.ErrorReason).
		SetProcessedAt(time.Now())
	if rec.FileType != "" {
		builder = builder.SetFileType(rec.FileType)
	}

	err := builder.
		OnConflictColumns(processedfile.FieldFileKey).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		r.logger.Error("repository.processed_files.record_failed", "file_key", rec.FileKey, "error", err)
	}
	return err
}

func (r *processedFileRepository) ListFailures(ctx context.Context) ([]*ent.ProcessedFile, error) {
	return r.client.ProcessedFile.Query().
		Where(processedfile.Status(string(constants.ProcessingFailed))).
		Order(ent.Asc(processedfile.FieldFileKey)).
		All(ctx)
}
