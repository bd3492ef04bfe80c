package process

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"oxynia/siigo-balance/internal/fileutils"
	"oxynia/siigo-balance/internal/logging"
	"oxynia/siigo-balance/internal/models"
	"oxynia/siigo-balance/internal/parsererror"
)

var testParams = models.ReportParams{
	Mes:          "Enero",
	Estado:       "Acumulado",
	Anio:         "2026",
	CentroCostos: "Principal",
}

// writeExport builds a SIIGO-shaped xlsx on disk: seven preamble rows,
// header on row 8, data from row 9.
func writeExport(t *testing.T, dir string, dataRows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetList()[0]
	require.NoError(t, f.SetCellValue(sheet, "A1", "BALANCE DE PRUEBA"))

	header := []interface{}{
		"Transaccional", "Saldo inicial", "Movimiento débito", "Movimiento crédito",
		"Sucursal", "Identificación", "Código cuenta contable", "Nombre cuenta contable",
		"Saldo final", "Nombre tercero",
	}
	require.NoError(t, f.SetSheetRow(sheet, "A8", &header))
	for i, row := range dataRows {
		require.NoError(t, f.SetSheetRow(sheet, fmt.Sprintf("A%d", 9+i), &row))
	}

	path := filepath.Join(dir, "export.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func exportRow(transaccional, codigo, nombre string, saldo float64) []interface{} {
	return []interface{}{transaccional, 0, 0, 0, "Principal", "900123456", codigo, nombre, saldo, ""}
}

func TestRunWritesBothDatasets(t *testing.T) {
	dir := t.TempDir()
	input := writeExport(t, dir, [][]interface{}{
		exportRow("No", "110501", "CAJA GENERAL", 1500),
		exportRow("No", "413501", "COMERCIO", 2000),
		exportRow("Sí", "110501", "CAJA GENERAL", 10),
	})

	err := Run(Options{
		Input:  input,
		OutDir: filepath.Join(dir, "out"),
		Format: "xlsx",
		Params: testParams,
	}, &logging.MockLogger{})
	require.NoError(t, err)

	bgPath := filepath.Join(dir, "out", "datos_balance_general.xlsx")
	erPath := filepath.Join(dir, "out", "datos_estado_resultados.xlsx")
	require.True(t, fileutils.FileExists(bgPath))
	require.True(t, fileutils.FileExists(erPath))

	f, err := excelize.OpenFile(bgPath)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows("datos_balance_general")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, models.BalanceHeaders, rows[0])
	assert.Equal(t, "110501 - CAJA GENERAL", rows[1][6])
}

func TestRunWithZipBundle(t *testing.T) {
	dir := t.TempDir()
	input := writeExport(t, dir, [][]interface{}{
		exportRow("No", "110501", "CAJA GENERAL", 1500),
	})

	err := Run(Options{
		Input:  input,
		OutDir: dir,
		Format: "xlsx",
		Bundle: true,
		Params: testParams,
	}, &logging.MockLogger{})
	require.NoError(t, err)
	assert.True(t, fileutils.FileExists(filepath.Join(dir, "resultados.zip")))
}

func TestRunCSVFormat(t *testing.T) {
	dir := t.TempDir()
	input := writeExport(t, dir, [][]interface{}{
		exportRow("No", "413501", "COMERCIO", 2000),
	})

	err := Run(Options{
		Input:  input,
		OutDir: dir,
		Format: "csv",
		Params: testParams,
	}, &logging.MockLogger{})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "datos_estado_resultados.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "413501 - COMERCIO")
	assert.Contains(t, string(data), "Acumulado")
}

func TestRunRejectsBlankParameters(t *testing.T) {
	err := Run(Options{
		Input:  "whatever.xlsx",
		Format: "xlsx",
		Params: models.ReportParams{Mes: "Enero"},
	}, &logging.MockLogger{})
	require.Error(t, err)
	var missingErr *parsererror.MissingParameterError
	assert.ErrorAs(t, err, &missingErr)
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	err := Run(Options{
		Input:  "whatever.xlsx",
		Format: "pdf",
		Params: testParams,
	}, &logging.MockLogger{})
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestRunSchemaErrorProducesNoOutput(t *testing.T) {
	dir := t.TempDir()

	// Export missing the Saldo final column.
	f := excelize.NewFile()
	sheet := f.GetSheetList()[0]
	header := []interface{}{
		"Transaccional", "Saldo inicial", "Movimiento débito", "Movimiento crédito",
		"Sucursal", "Identificación", "Código cuenta contable", "Nombre cuenta contable",
	}
	require.NoError(t, f.SetSheetRow(sheet, "A8", &header))
	input := filepath.Join(dir, "bad.xlsx")
	require.NoError(t, f.SaveAs(input))
	require.NoError(t, f.Close())

	outDir := filepath.Join(dir, "out")
	err := Run(Options{
		Input:  input,
		OutDir: outDir,
		Format: "xlsx",
		Params: testParams,
	}, &logging.MockLogger{})
	require.Error(t, err)
	var schemaErr *parsererror.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"Saldo final"}, schemaErr.Missing)

	assert.False(t, fileutils.FileExists(filepath.Join(outDir, "datos_balance_general.xlsx")))
	assert.False(t, fileutils.FileExists(filepath.Join(outDir, "datos_estado_resultados.xlsx")))
}
