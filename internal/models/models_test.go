package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oxynia/siigo-balance/internal/parsererror"
)

func TestReportParamsValidate(t *testing.T) {
	params := ReportParams{
		Mes:          "Enero",
		Estado:       "Acumulado",
		Anio:         "2026",
		CentroCostos: "Principal",
	}
	assert.NoError(t, params.Validate())
}

func TestReportParamsValidateListsEveryBlankField(t *testing.T) {
	err := ReportParams{Mes: "Enero"}.Validate()
	require.Error(t, err)
	var missingErr *parsererror.MissingParameterError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"ESTADO", "AÑO", "CENTRO DE COSTOS"}, missingErr.Missing)
}

func TestBalanceRowValuesMatchHeaderOrder(t *testing.T) {
	row := BalanceRow{
		Mes:          "Enero",
		Anio:         "2026",
		CentroCostos: "Principal",
		Clase:        "ACTIVO",
		Grupo:        "ACTIVO CORRIENTE",
		Subgrupo:     "DISPONIBLE",
		Cuenta:       "110501 - CAJA GENERAL",
		Tercero:      "",
		Valor:        decimal.RequireFromString("1500.50"),
	}
	values := row.Values()
	require.Len(t, values, len(BalanceHeaders))
	assert.Equal(t, "Enero", values[0])
	assert.Equal(t, "2026", values[1])
	assert.Equal(t, "Principal", values[2])
	assert.Equal(t, "ACTIVO", values[3])
	assert.Equal(t, 1500.50, values[8])
}

func TestResultadosRowValuesMatchHeaderOrder(t *testing.T) {
	row := ResultadosRow{
		Mes:          "Enero",
		Estado:       "Acumulado",
		Anio:         "2026",
		CentroCostos: "Principal",
		Clase:        "INGRESOS",
		Grupo:        "CUENTA DE RESULTADOS",
		Subgrupo:     "OPERACIONALES",
		Cuenta:       "413501 - VENTAS",
		Tercero:      "Cliente SA",
		Valor:        decimal.NewFromInt(2000),
	}
	values := row.Values()
	require.Len(t, values, len(ResultadosHeaders))
	assert.Equal(t, "Acumulado", values[1])
	assert.Equal(t, "2026", values[2])
	assert.Equal(t, "Cliente SA", values[8])
	assert.Equal(t, 2000.0, values[9])
}
