// Package process implements the main conversion command: one SIIGO export
// in, the Balance General and Estado de Resultados datasets out.
package process

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"oxynia/siigo-balance/cmd/root"
	"oxynia/siigo-balance/internal/config"
	"oxynia/siigo-balance/internal/logging"
	"oxynia/siigo-balance/internal/models"
	"oxynia/siigo-balance/internal/pipeline"
	"oxynia/siigo-balance/internal/report"
	"oxynia/siigo-balance/internal/siigoparser"
)

var (
	mes          string
	estado       string
	anio         string
	centroCostos string
	format       string
	bundle       bool
)

// Cmd is the process command
var Cmd = &cobra.Command{
	Use:   "process",
	Short: "Classify a SIIGO export and write both statement datasets",
	Long: `Process reads the SIIGO Excel export (header on row 8), classifies every
account-level row into the PUC taxonomy and writes datos_balance_general and
datos_estado_resultados, optionally bundled into resultados.zip.`,
	Run: processFunc,
}

func init() {
	Cmd.Flags().StringVar(&mes, "mes", "", "Reporting month label, e.g. Enero (required)")
	Cmd.Flags().StringVar(&estado, "estado", "", "Income statement label, e.g. Acumulado (required)")
	Cmd.Flags().StringVar(&anio, "anio", "", "Reporting year label, e.g. 2026 (required)")
	Cmd.Flags().StringVar(&centroCostos, "centro-costos", "", "Cost center label (required)")
	Cmd.Flags().StringVarP(&format, "format", "f", "xlsx", "Output format: xlsx or csv")
	Cmd.Flags().BoolVarP(&bundle, "zip", "z", false, "Bundle both datasets into a zip archive")
}

func processFunc(cmd *cobra.Command, args []string) {
	logger := logging.NewLogrusAdapterFromLogger(root.Log)

	opts := Options{
		Input:  root.SharedFlags.Input,
		OutDir: root.SharedFlags.Output,
		Format: format,
		Bundle: bundle,
		Params: models.ReportParams{
			Mes:          mes,
			Estado:       estado,
			Anio:         anio,
			CentroCostos: centroCostos,
		},
	}

	if err := Run(opts, logger); err != nil {
		logger.Fatalf("Error processing SIIGO export: %v", err)
	}
	logger.Info("SIIGO export processed successfully!")
}

// Options collects everything one processing run needs.
type Options struct {
	Input  string
	OutDir string
	Format string
	Bundle bool
	Params models.ReportParams
}

// Run executes the whole pipeline for one export. Parameters are validated
// before the file is even opened; classification failures inside the data
// are counted, not fatal. Either both datasets are written or neither.
func Run(opts Options, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	if err := opts.Params.Validate(); err != nil {
		return err
	}
	if opts.Input == "" {
		return fmt.Errorf("input file is required")
	}
	if opts.Format != "xlsx" && opts.Format != "csv" {
		return fmt.Errorf("unsupported output format: %s (use 'xlsx' or 'csv')", opts.Format)
	}
	if opts.OutDir == "" {
		opts.OutDir = "."
	}

	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}

	rows, err := siigoparser.ParseFile(opts.Input, logger)
	if err != nil {
		return err
	}

	accounts, stats := pipeline.Shape(rows, logger)
	logger.Info("Classification summary",
		logging.Field{Key: "total_rows", Value: stats.TotalRows},
		logging.Field{Key: "kept", Value: stats.Kept},
		logging.Field{Key: "transactional", Value: stats.Transactional},
		logging.Field{Key: "duplicates", Value: stats.Duplicates},
		logging.Field{Key: "invalid_codes", Value: stats.InvalidCodes},
		logging.Field{Key: "unclassified", Value: stats.Unclassified},
		logging.Field{Key: "short_codes", Value: stats.ShortCodes})

	balance, resultados, err := pipeline.Partition(accounts, opts.Params)
	if err != nil {
		return err
	}

	ext := "." + opts.Format
	bgPath := filepath.Join(opts.OutDir, cfg.Output.BalanceFile+ext)
	erPath := filepath.Join(opts.OutDir, cfg.Output.ResultadosFile+ext)

	switch opts.Format {
	case "xlsx":
		if err := report.WriteBalanceXLSX(balance, bgPath, logger); err != nil {
			return err
		}
		if err := report.WriteResultadosXLSX(resultados, erPath, logger); err != nil {
			removeQuietly(bgPath, logger)
			return err
		}
	case "csv":
		if err := report.WriteBalanceCSV(balance, bgPath, cfg.Delimiter(), logger); err != nil {
			return err
		}
		if err := report.WriteResultadosCSV(resultados, erPath, cfg.Delimiter(), logger); err != nil {
			removeQuietly(bgPath, logger)
			return err
		}
	}

	if opts.Bundle {
		zipPath := filepath.Join(opts.OutDir, cfg.Output.ArchiveFile)
		if err := report.BundleZip(zipPath, []string{bgPath, erPath}, logger); err != nil {
			return err
		}
	}

	logger.Info("Datasets written",
		logging.Field{Key: "balance_rows", Value: len(balance)},
		logging.Field{Key: "resultados_rows", Value: len(resultados)},
		logging.Field{Key: logging.FieldOutputFile, Value: opts.OutDir})
	return nil
}

// removeQuietly deletes a half-produced output so a failed run leaves
// neither dataset behind.
func removeQuietly(path string, logger logging.Logger) {
	if err := os.Remove(path); err != nil {
		logger.WithError(err).Warn("Failed to remove partial output",
			logging.Field{Key: logging.FieldOutputFile, Value: path})
	}
}
