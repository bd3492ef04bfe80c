// Package siigoparser reads the monthly SIIGO Excel export into account
// rows. The export carries a seven-row preamble; the real header sits on
// physical row 8 and data starts on row 9.
package siigoparser

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"oxynia/siigo-balance/internal/logging"
	"oxynia/siigo-balance/internal/models"
	"oxynia/siigo-balance/internal/parsererror"
)

// headerRowIndex is the 0-based index of the header row (physical row 8).
const headerRowIndex = 7

// Column names as they appear in the SIIGO export header.
const (
	ColTransaccional  = "Transaccional"
	ColSaldoInicial   = "Saldo inicial"
	ColMovimientoDeb  = "Movimiento débito"
	ColMovimientoCred = "Movimiento crédito"
	ColSucursal       = "Sucursal"
	ColIdentificacion = "Identificación"
	ColCodigoCuenta   = "Código cuenta contable"
	ColNombreCuenta   = "Nombre cuenta contable"
	ColSaldoFinal     = "Saldo final"
	ColNombreTercero  = "Nombre tercero"
)

// requiredColumns must all be present on the header row. Nombre tercero is
// optional and backfilled with empty strings when absent.
var requiredColumns = []string{
	ColTransaccional,
	ColSaldoInicial,
	ColMovimientoDeb,
	ColMovimientoCred,
	ColSucursal,
	ColIdentificacion,
	ColCodigoCuenta,
	ColNombreCuenta,
	ColSaldoFinal,
}

// Parse reads a SIIGO export from a reader and returns its account rows.
// Only the columns classification needs are carried forward; opening
// balance, period movements, branch and tax ID are dropped here.
func Parse(r io.Reader, logger logging.Logger) ([]models.AccountRow, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.Info("Reading SIIGO export from reader")

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath: "(from reader)",
			Msg:      "cannot open workbook",
			Err:      err,
		}
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close workbook")
		}
	}()

	return parseWorkbook(f, "(from reader)", logger)
}

// ParseFile reads a SIIGO export from disk.
func ParseFile(filePath string, logger logging.Logger) ([]models.AccountRow, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.Info("Reading SIIGO export",
		logging.Field{Key: logging.FieldFile, Value: filePath})

	f, err := excelize.OpenFile(filePath) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath: filePath,
			Msg:      "cannot open workbook",
			Err:      err,
		}
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close workbook")
		}
	}()

	return parseWorkbook(f, filePath, logger)
}

// ValidateFormat checks that the export's header row carries every required
// column. On missing columns the returned error is a *parsererror.SchemaError
// listing their exact names.
func ValidateFormat(r io.Reader, logger logging.Logger) (bool, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.Info("Validating SIIGO export format from reader")

	f, err := excelize.OpenReader(r)
	if err != nil {
		return false, &parsererror.InvalidFormatError{
			FilePath: "(from reader)",
			Msg:      "cannot open workbook",
			Err:      err,
		}
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close workbook")
		}
	}()

	header, err := headerRow(f, "(from reader)")
	if err != nil {
		return false, err
	}
	if err := checkRequiredColumns(header, "(from reader)"); err != nil {
		return false, err
	}

	logger.Debug("SIIGO export format validation successful")
	return true, nil
}

func parseWorkbook(f *excelize.File, filePath string, logger logging.Logger) ([]models.AccountRow, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &parsererror.InvalidFormatError{
			FilePath: filePath,
			Msg:      "workbook has no sheets",
		}
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %q: %w", sheet, err)
	}
	if len(rows) <= headerRowIndex {
		return nil, &parsererror.InvalidFormatError{
			FilePath: filePath,
			Msg:      fmt.Sprintf("header row %d not found, sheet has only %d rows", headerRowIndex+1, len(rows)),
		}
	}

	header := rows[headerRowIndex]
	if err := checkRequiredColumns(header, filePath); err != nil {
		return nil, err
	}

	cols := columnIndex(header)
	terceroIdx, hasTercero := cols[ColNombreTercero]
	if !hasTercero {
		logger.Warn("Column 'Nombre tercero' not found, TERCERO will be empty")
	}

	var accounts []models.AccountRow
	for _, row := range rows[headerRowIndex+1:] {
		transaccional := cell(row, cols[ColTransaccional])
		codigo := cell(row, cols[ColCodigoCuenta])
		if transaccional == "" && codigo == "" {
			continue // trailing blank row
		}

		account := models.AccountRow{
			Transaccional: transaccional,
			Codigo:        codigo,
			Nombre:        cell(row, cols[ColNombreCuenta]),
			SaldoFinal:    parseSaldo(cell(row, cols[ColSaldoFinal]), codigo, logger),
		}
		if hasTercero {
			account.NombreTercero = cell(row, terceroIdx)
		}
		accounts = append(accounts, account)
	}

	logger.Info("Successfully read SIIGO export",
		logging.Field{Key: logging.FieldSheet, Value: sheet},
		logging.Field{Key: logging.FieldCount, Value: len(accounts)})
	return accounts, nil
}

func headerRow(f *excelize.File, filePath string) ([]string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &parsererror.InvalidFormatError{
			FilePath: filePath,
			Msg:      "workbook has no sheets",
		}
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) <= headerRowIndex {
		return nil, &parsererror.InvalidFormatError{
			FilePath: filePath,
			Msg:      fmt.Sprintf("header row %d not found, sheet has only %d rows", headerRowIndex+1, len(rows)),
		}
	}
	return rows[headerRowIndex], nil
}

// columnIndex maps header names to column positions, first occurrence wins.
func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := cols[name]; !ok {
			cols[name] = i
		}
	}
	return cols
}

func checkRequiredColumns(header []string, filePath string) error {
	cols := columnIndex(header)
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &parsererror.SchemaError{FilePath: filePath, Missing: missing}
	}
	return nil
}

// cell returns the trimmed cell at idx; excelize trims trailing empty cells
// per row, so short rows are expected.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseSaldo reads the closing balance. Thousand separators and currency
// markers from cell formatting are stripped. Unparseable balances degrade to
// zero with a warning rather than aborting the run.
func parseSaldo(raw, codigo string, logger logging.Logger) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}
	cleaned := strings.NewReplacer(",", "", "$", "", " ", "").Replace(raw)
	saldo, err := decimal.NewFromString(cleaned)
	if err != nil {
		logger.WithError(err).Warn("Unparseable closing balance, using zero",
			logging.Field{Key: logging.FieldCodigo, Value: codigo},
			logging.Field{Key: "saldo", Value: raw})
		return decimal.Zero
	}
	return saldo
}
