// Package report writes the Balance General and Estado de Resultados
// datasets as Excel or CSV files and bundles the pair into a zip archive.
// Column order is a compatibility contract for downstream consumers and is
// reproduced exactly.
package report

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"oxynia/siigo-balance/internal/fileutils"
	"oxynia/siigo-balance/internal/logging"
	"oxynia/siigo-balance/internal/models"
)

// Dataset sheet names, identical to the file stems the original workflow
// delivered.
const (
	SheetBalance    = "datos_balance_general"
	SheetResultados = "datos_estado_resultados"
)

// WriteBalanceXLSX writes the Balance General dataset to an xlsx file with
// a single sheet named after the dataset.
func WriteBalanceXLSX(rows []models.BalanceRow, path string, logger logging.Logger) error {
	values := make([][]interface{}, len(rows))
	for i, r := range rows {
		values[i] = r.Values()
	}
	return writeXLSX(path, SheetBalance, models.BalanceHeaders, values, logger)
}

// WriteResultadosXLSX writes the Estado de Resultados dataset to an xlsx
// file with a single sheet named after the dataset.
func WriteResultadosXLSX(rows []models.ResultadosRow, path string, logger logging.Logger) error {
	values := make([][]interface{}, len(rows))
	for i, r := range rows {
		values[i] = r.Values()
	}
	return writeXLSX(path, SheetResultados, models.ResultadosHeaders, values, logger)
}

func writeXLSX(path, sheetName string, headers []string, rows [][]interface{}, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(path)); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close workbook")
		}
	}()

	sheet := f.GetSheetList()[0]
	if err := f.SetSheetName(sheet, sheetName); err != nil {
		return fmt.Errorf("error naming sheet %q: %w", sheetName, err)
	}

	headerCells := make([]interface{}, len(headers))
	for i, h := range headers {
		headerCells[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &headerCells); err != nil {
		return fmt.Errorf("error writing header row: %w", err)
	}

	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("error computing cell reference: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cellRef, &row); err != nil {
			return fmt.Errorf("error writing row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("error saving workbook: %w", err)
	}

	logger.Info("Wrote dataset workbook",
		logging.Field{Key: logging.FieldSheet, Value: sheetName},
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
		logging.Field{Key: logging.FieldOutputFile, Value: path})
	return nil
}
