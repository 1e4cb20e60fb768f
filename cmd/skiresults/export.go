package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fsun/ski-results/internal/common"
	"github.com/fsun/ski-results/internal/export"
	"github.com/fsun/ski-results/internal/repository"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export results to an XLSX workbook",
	RunE:  runExport,
}

var (
	exportOut         string
	exportSeason      string
	exportCompetition string
	exportDiscipline  string
	exportGender      string
	exportAgeGroup    string
	exportAthlete     string
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "results.xlsx", "Output file path")
	exportCmd.Flags().StringVar(&exportSeason, "season", "", "Filter by season (e.g. 24-25雪季)")
	exportCmd.Flags().StringVar(&exportCompetition, "competition", "", "Filter by competition name substring")
	exportCmd.Flags().StringVar(&exportDiscipline, "discipline", "", "Filter by discipline")
	exportCmd.Flags().StringVar(&exportGender, "gender", "", "Filter by gender")
	exportCmd.Flags().StringVar(&exportAgeGroup, "age-group", "", "Filter by age group")
	exportCmd.Flags().StringVar(&exportAthlete, "athlete", "", "Filter by athlete name (Chinese or pinyin)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	logger := slog.Default()
	cfg := common.LoadConfig()

	ctx := cmd.Context()
	client, pool, err := openDatabase(ctx, cfg, false, logger)
	if err != nil {
		return err
	}
	defer repository.Close(client, pool, logger)

	svc := export.NewService(repository.NewQueryRepository(client, logger), logger)
	data, err := svc.ExportResultsXLSX(ctx, repository.ResultFilter{
		Season:      exportSeason,
		Competition: exportCompetition,
		Discipline:  exportDiscipline,
		Gender:      exportGender,
		AgeGroup:    exportAgeGroup,
		Athlete:     exportAthlete,
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(exportOut, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	fmt.Printf("wrote %s (%d bytes)\n", exportOut, len(data))
	return nil
}
