package main

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/spf13/cobra"

	"github.com/fsun/ski-results/internal/common"
	"github.com/fsun/ski-results/internal/repository"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate counts of everything ingested",
	RunE:  runStats,
}

var statsFailures bool

func init() {
	statsCmd.Flags().BoolVar(&statsFailures, "failures", false, "Also list files whose last run failed")

	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	logger := slog.Default()
	cfg := common.LoadConfig()

	ctx := cmd.Context()
	client, pool, err := openDatabase(ctx, cfg, false, logger)
	if err != nil {
		return err
	}
	defer repository.Close(client, pool, logger)

	stats, err := repository.NewQueryRepository(client, logger).Statistics(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("competitions: %d\n", stats.Competitions)
	fmt.Printf("events:       %d\n", stats.Events)
	fmt.Printf("results:      %d\n", stats.Results)
	fmt.Printf("athletes:     %d\n", stats.Athletes)

	disciplines := make([]string, 0, len(stats.ByDiscipline))
	for d := range stats.ByDiscipline {
		disciplines = append(disciplines, d)
	}
	sort.Strings(disciplines)
	for _, d := range disciplines {
		fmt.Printf("  %s: %d events\n", d, stats.ByDiscipline[d])
	}

	if statsFailures {
		failures, err := repository.NewProcessedFileRepository(client, logger).ListFailures(ctx)
		if err != nil {
			return err
		}
		for _, f := range failures {
			fmt.Printf("failed: %s (%s)\n", f.FileKey, f.ErrorMessage)
		}
	}
	return nil
}
