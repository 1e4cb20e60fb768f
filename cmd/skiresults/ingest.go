package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/fsun/ski-results/gen/ent"
	"github.com/fsun/ski-results/internal/common"
	"github.com/fsun/ski-results/internal/extract"
	"github.com/fsun/ski-results/internal/pipeline"
	"github.com/fsun/ski-results/internal/repository"
	"github.com/fsun/ski-results/internal/store"
	"github.com/fsun/ski-results/internal/vlm"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Process source files into the results database",
	Long:  "Lists result sheets under the configured bucket prefix (or a local directory), extracts each through text or vision routing, and persists competitions, events and results. Already-successful files are skipped unless --force is given.",
	RunE:  runIngest,
}

var (
	ingestRoot     string
	ingestMaxFiles int
	ingestWorkers  int
	ingestForce    bool
	ingestInMem    bool
)

func init() {
	ingestCmd.Flags().StringVar(&ingestRoot, "root", "", "Local directory to ingest instead of the configured bucket")
	ingestCmd.Flags().IntVar(&ingestMaxFiles, "max-files", 0, "Cap the number of files processed this run (0 = no cap)")
	ingestCmd.Flags().IntVar(&ingestWorkers, "workers", 0, "Concurrent file workers (0 = configured default)")
	ingestCmd.Flags().BoolVar(&ingestForce, "force", false, "Reprocess files already marked successful")
	ingestCmd.Flags().BoolVar(&ingestInMem, "inmem", false, "Use an in-memory SQLite database instead of DB_URL")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	logger := slog.Default()
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, pool, err := openDatabase(ctx, cfg, ingestInMem, logger)
	if err != nil {
		return err
	}
	defer repository.Close(client, pool, logger)

	src, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}

	extractor := extract.NewExtractor(extract.Config{
		Pdftotext:     cfg.Extract.Pdftotext,
		Pdftoppm:      cfg.Extract.Pdftoppm,
		HeicConverter: cfg.Extract.HeicConverter,
		DPI:           cfg.Extract.DPI,
		MaxImageBytes: int64(cfg.Extract.MaxImageMB) << 20,
	}, logger)

	invoker := vlm.NewClient(vlm.Config{
		BaseURL:     cfg.VLM.BaseURL,
		APIKey:      cfg.VLM.APIKey,
		Model:       cfg.VLM.Model,
		Temperature: cfg.VLM.Temperature,
		MaxTokens:   cfg.VLM.MaxTokens,
		Timeout:     cfg.VLM.Timeout,
	}, logger)

	workers := cfg.Pipeline.Workers
	if ingestWorkers > 0 {
		workers = ingestWorkers
	}
	orch := pipeline.NewOrchestrator(
		pipeline.Config{
			CacheDir:    cfg.Storage.CacheDir,
			Workers:     workers,
			MaxAttempts: cfg.Pipeline.MaxAttempts,
			BackoffBase: cfg.Pipeline.BackoffBase,
			MaxFiles:    ingestMaxFiles,
			Force:       ingestForce,
		},
		src,
		extractor,
		invoker,
		repository.NewIngestSink(client, logger),
		repository.NewProcessedFileRepository(client, logger),
		logger,
	)

	sum, err := orch.Run(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("processed %d files: %d succeeded, %d failed, %d skipped\n",
		sum.Total, sum.Succeeded, sum.Failed, sum.Skipped)
	return nil
}

func openDatabase(ctx context.Context, cfg *common.Config, inMem bool, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	if inMem || cfg.Database.DSN == "" {
		client, err := repository.OpenSQLite(ctx, "", logger)
		return client, nil, err
	}
	return repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
}

func openStore(ctx context.Context, cfg *common.Config, logger *slog.Logger) (store.Store, error) {
	if ingestRoot != "" {
		return store.NewFSStore(ingestRoot), nil
	}
	return store.NewGCSStore(ctx, cfg.Storage.Bucket, cfg.Storage.Prefix, logger)
}
