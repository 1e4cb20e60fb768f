package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fsun/ski-results/constants"
	"github.com/fsun/ski-results/internal/common"
	"github.com/fsun/ski-results/internal/entity"
	"github.com/fsun/ski-results/internal/extract"
	"github.com/fsun/ski-results/internal/store"
	"github.com/fsun/ski-results/internal/vlm"
)

// Extractor produces extraction units for a cached source file.
type Extractor interface {
	Extract(ctx context.Context, path string) ([]extract.Unit, error)
}

// Sink is the persistence collaborator. All writes are upserts keyed by a
// natural key (season+name for competitions, source file key for events) so
// concurrent workers racing on the same key converge to one logical record.
type Sink interface {
	UpsertCompetition(ctx context.Context, season, name, venue, date string) (int, error)
	UpsertEvent(ctx context.Context, competitionID int, ev entity.EventRecord) (int, error)
	ReplaceResults(ctx context.Context, eventID int, rows []entity.ResultRow) error
}

// StateTracker records per-file outcomes, making runs resumable.
type StateTracker interface {
	IsProcessed(ctx context.Context, fileKey string) (bool, error)
	RecordOutcome(ctx context.Context, rec entity.ProcessingRecord) error
}

// RunStats accumulates batch counters. It is an explicit run context rather
// than ambient globals, so parallel batch runs in one process stay isolated.
type RunStats struct {
	Total       atomic.Int64
	Succeeded   atomic.Int64
	Failed      atomic.Int64
	Skipped     atomic.Int64
	DroppedRows atomic.Int64
}

// Summary is the operator-facing snapshot of one run.
type Summary struct {
	Total       int64
	Succeeded   int64
	Failed      int64
	Skipped     int64
	DroppedRows int64
}

func (s *RunStats) summary() Summary {
	return Summary{
		Total:       s.Total.Load(),
		Succeeded:   s.Succeeded.Load(),
		Failed:      s.Failed.Load(),
		Skipped:     s.Skipped.Load(),
		DroppedRows: s.DroppedRows.Load(),
	}
}

// Config holds orchestrator behavior knobs.
type Config struct {
	CacheDir    string
	Workers     int           // bounded file-parallelism, default 4
	MaxAttempts int           // retry ceiling for transient failures, default 3
	BackoffBase time.Duration // first backoff delay, doubled per attempt
	MaxFiles    int           // 0 = no limit
	Force       bool          // reprocess files already marked successful
}

// Orchestrator drives the pipeline end to end: enumerate, classify, extract,
// sanitize, merge, validate, persist, record state. One file's failure never
// aborts the batch.
type Orchestrator struct {
	cfg       Config
	store     store.Store
	extractor Extractor
	invoker   vlm.Invoker
	sink      Sink
	tracker   StateTracker
	logger    *slog.Logger
}

func NewOrchestrator(cfg Config, st store.Store, ex Extractor, inv vlm.Invoker, sink Sink, tracker StateTracker, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = time.Second
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = "./data/cache"
	}
	return &Orchestrator{
		cfg:       cfg,
		store:     st,
		extractor: ex,
		invoker:   inv,
		sink:      sink,
		tracker:   tracker,
		logger:    logger,
	}
}

// Run processes every eligible file under the store's prefix and returns the
// per-run summary. Cancelling ctx stops the batch between files; per-file
// state already committed is left intact.
func (o *Orchestrator) Run(ctx context.Context) (Summary, error) {
	keys, err := o.store.List(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("list source files: %w", err)
	}

	stats := &RunStats{}
	pending, err := o.selectPending(ctx, keys, stats)
	if err != nil {
		return stats.summary(), err
	}
	if o.cfg.MaxFiles > 0 && len(pending) > o.cfg.MaxFiles {
		pending = pending[:o.cfg.MaxFiles]
	}
	stats.Total.Store(int64(len(pending)) + stats.Skipped.Load())

	o.logger.Info("pipeline.run.start", "candidates", len(keys), "pending", len(pending), "workers", o.cfg.Workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.cfg.Workers)
	for _, key := range pending {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			o.processFile(gctx, key, stats)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return stats.summary(), err
	}

	sum := stats.summary()
	o.logger.Info("pipeline.run.done",
		"total", sum.Total,
		"succeeded", sum.Succeeded,
		"failed", sum.Failed,
		"skipped", sum.Skipped,
		"dropped_rows", sum.DroppedRows,
	)
	return sum, ctx.Err()
}

// selectPending applies the classification gate and the already-processed
// check before any extraction cost is incurred. Start-order and order-book
// files are recorded as skipped; successful files are silently left alone
// unless Force is set.
func (o *Orchestrator) selectPending(ctx context.Context, keys []string, stats *RunStats) ([]string, error) {
	var pending []string
	for _, key := range keys {
		if class := constants.Classify(key); class != constants.ClassResults {
			o.logger.Info("pipeline.file.skipped", "file_key", key, "classification", class)
			if err := o.tracker.RecordOutcome(ctx, entity.ProcessingRecord{
				FileKey:     key,
				FileType:    fileType(key),
				Status:      constants.ProcessingSkipped,
				ErrorReason: fmt.Sprintf("classified as %s", class),
			}); err != nil {
				return nil, fmt.Errorf("record skip for %s: %w", key, err)
			}
			stats.Skipped.Add(1)
			continue
		}
		if !o.cfg.Force {
			done, err := o.tracker.IsProcessed(ctx, key)
			if err != nil {
				return nil, fmt.Errorf("check state for %s: %w", key, err)
			}
			if done {
				continue
			}
		}
		pending = append(pending, key)
	}
	return pending, nil
}

// processFile runs one file through extract → sanitize → merge → validate →
// persist. Every non-success outcome is attributed to the file with a reason.
func (o *Orchestrator) processFile(ctx context.Context, key string, stats *RunStats) {
	start := time.Now()
	o.logger.Info("pipeline.file.start", "file_key", key)

	ev, rows, dropped, err := o.extractAndMerge(ctx, key)
	stats.DroppedRows.Add(int64(dropped))
	if err != nil {
		if errors.Is(err, errNoResults) {
			o.recordSkip(ctx, key, "no results found", stats)
			return
		}
		o.recordFailure(ctx, key, err, stats)
		return
	}

	if err := o.persist(ctx, key, ev, rows); err != nil {
		o.recordFailure(ctx, key, err, stats)
		return
	}

	if err := o.tracker.RecordOutcome(ctx, entity.ProcessingRecord{
		FileKey:  key,
		FileType: fileType(key),
		Status:   constants.ProcessingSuccess,
	}); err != nil {
		o.recordFailure(ctx, key, fmt.Errorf("record success: %w", err), stats)
		return
	}

	stats.Succeeded.Add(1)
	o.logger.Info("pipeline.file.done",
		"file_key", key,
		"discipline", ev.Discipline,
		"rows", len(rows),
		"needs_review", ev.NeedsReview,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
}

func (o *Orchestrator) extractAndMerge(ctx context.Context, key string) (entity.EventRecord, []entity.ResultRow, int, error) {
	var none entity.EventRecord

	path, err := o.cacheFile(ctx, key)
	if err != nil {
		return none, nil, 0, err
	}

	units, err := o.extractor.Extract(ctx, path)
	if err != nil {
		return none, nil, 0, err
	}
	if len(units) == 0 {
		return none, nil, 0, &common.ExtractionError{Key: key, Cause: fmt.Errorf("no extraction units produced")}
	}

	payloads, err := o.parseUnits(ctx, key, units)
	if err != nil {
		return none, nil, 0, err
	}

	ev, rows, _ := Merge(payloads)
	ev.SourceFile = key
	if season := constants.InferSeason(key); season != "" {
		ev.Season = season
	}

	rows, dropped, err := validateEvent(&ev, rows)
	if err != nil {
		return none, nil, dropped, err
	}
	return ev, rows, dropped, nil
}

// parseUnits turns each extraction unit into a structured payload. Model
// calls go through the retry policy; a unit whose response still cannot be
// sanitized fails that unit, and the file only fails when no unit parsed.
func (o *Orchestrator) parseUnits(ctx context.Context, key string, units []extract.Unit) ([]vlm.Payload, error) {
	var payloads []vlm.Payload
	var lastErr error
	for _, u := range units {
		var raw string
		err := o.withRetry(ctx, key, func(ctx context.Context) error {
			var ierr error
			switch u.Kind {
			case extract.TextNative:
				raw, ierr = o.invoker.InvokeText(ctx, vlm.BuildTextParsePrompt(u.Text))
			default:
				raw, ierr = o.invoker.Invoke(ctx, u.Image, u.MediaType, vlm.ExtractionPrompt)
			}
			return ierr
		})
		if err != nil {
			o.logger.Warn("pipeline.unit.invoke_failed", "file_key", key, "page", u.Page, "error", err)
			lastErr = err
			continue
		}

		p, serr := vlm.Sanitize(raw, o.logger)
		if serr != nil {
			o.logger.Warn("pipeline.unit.malformed_response", "file_key", key, "page", u.Page, "error", serr)
			lastErr = serr
			continue
		}
		payloads = append(payloads, p)
	}
	if len(payloads) == 0 {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, &common.MalformedResponseError{Cause: fmt.Errorf("no unit produced a payload")}
	}
	return payloads, nil
}

func (o *Orchestrator) persist(ctx context.Context, key string, ev entity.EventRecord, rows []entity.ResultRow) error {
	compID, err := o.sink.UpsertCompetition(ctx, ev.Season, ev.Competition, ev.Venue, ev.Date)
	if err != nil {
		return fmt.Errorf("upsert competition: %w", err)
	}
	eventID, err := o.sink.UpsertEvent(ctx, compID, ev)
	if err != nil {
		return fmt.Errorf("upsert event: %w", err)
	}
	if err := o.sink.ReplaceResults(ctx, eventID, rows); err != nil {
		return fmt.Errorf("store results: %w", err)
	}
	return nil
}

// cacheFile fetches the source bytes into the local cache, preserving the
// key's subdirectory structure. External binaries need a real path.
func (o *Orchestrator) cacheFile(ctx context.Context, key string) (string, error) {
	var data []byte
	err := o.withRetry(ctx, key, func(ctx context.Context) error {
		var ferr error
		data, ferr = o.store.Fetch(ctx, key)
		return ferr
	})
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", key, err)
	}

	path := filepath.Join(o.cfg.CacheDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// withRetry runs op, retrying transient failures with exponential backoff up
// to the attempt ceiling. Permanent failures return immediately.
func (o *Orchestrator) withRetry(ctx context.Context, key string, op func(ctx context.Context) error) error {
	delay := o.cfg.BackoffBase
	var err error
	for attempt := 1; attempt <= o.cfg.MaxAttempts; attempt++ {
		err = op(ctx)
		if err == nil {
			return nil
		}
		if !common.IsTransient(err) || attempt == o.cfg.MaxAttempts {
			return err
		}
		o.logger.Warn("pipeline.retry",
			"file_key", key,
			"attempt", attempt,
			"backoff", delay.String(),
			"error", err,
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return err
}

func (o *Orchestrator) recordSkip(ctx context.Context, key, reason string, stats *RunStats) {
	stats.Skipped.Add(1)
	o.logger.Info("pipeline.file.skipped", "file_key", key, "reason", reason)
	if err := o.tracker.RecordOutcome(ctx, entity.ProcessingRecord{
		FileKey:     key,
		FileType:    fileType(key),
		Status:      constants.ProcessingSkipped,
		ErrorReason: reason,
	}); err != nil {
		o.logger.Error("pipeline.file.record_failed", "file_key", key, "error", err)
	}
}

func (o *Orchestrator) recordFailure(ctx context.Context, key string, cause error, stats *RunStats) {
	stats.Failed.Add(1)
	o.logger.Error("pipeline.file.failed", "file_key", key, "error", cause)
	if err := o.tracker.RecordOutcome(ctx, entity.ProcessingRecord{
		FileKey:     key,
		FileType:    fileType(key),
		Status:      constants.ProcessingFailed,
		ErrorReason: cause.Error(),
	}); err != nil {
		o.logger.Error("pipeline.file.record_failed", "file_key", key, "error", err)
	}
}

func fileType(key string) string {
	return constants.NormalizeExt(filepath.Ext(key))
}
