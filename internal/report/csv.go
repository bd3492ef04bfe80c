package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"oxynia/siigo-balance/internal/fileutils"
	"oxynia/siigo-balance/internal/logging"
	"oxynia/siigo-balance/internal/models"
)

// WriteBalanceCSV writes the Balance General dataset as CSV.
func WriteBalanceCSV(rows []models.BalanceRow, path string, delimiter rune, logger logging.Logger) error {
	return writeCSV(&rows, path, SheetBalance, len(rows), delimiter, logger)
}

// WriteResultadosCSV writes the Estado de Resultados dataset as CSV.
func WriteResultadosCSV(rows []models.ResultadosRow, path string, delimiter rune, logger logging.Logger) error {
	return writeCSV(&rows, path, SheetResultados, len(rows), delimiter, logger)
}

func writeCSV(rows interface{}, path, name string, count int, delimiter rune, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if delimiter == 0 {
		delimiter = ','
	}

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(path)); err != nil {
		return err
	}

	file, err := os.Create(path) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	writer := csv.NewWriter(file)
	writer.Comma = delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return fmt.Errorf("error writing CSV: %w", err)
	}

	logger.Info("Wrote dataset CSV",
		logging.Field{Key: logging.FieldSheet, Value: name},
		logging.Field{Key: logging.FieldCount, Value: count},
		logging.Field{Key: logging.FieldOutputFile, Value: path})
	return nil
}
