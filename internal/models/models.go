// Package models defines the data types that flow through the
// classification pipeline, from raw SIIGO export rows to the two report
// datasets.
package models

import (
	"github.com/shopspring/decimal"

	"oxynia/siigo-balance/internal/parsererror"
)

// TransaccionalNo is the exact cell text marking an account-level summary
// row in the SIIGO export. Only these rows are eligible for classification;
// the comparison is string equality, never boolean coercion.
const TransaccionalNo = "No"

// AccountRow is one ledger line from the SIIGO export, already stripped of
// the administrative columns (Saldo inicial, movements, Sucursal,
// Identificación) that classification never uses.
type AccountRow struct {
	Transaccional string
	Codigo        string // account code as written in the cell, may carry a ".0" artifact
	Nombre        string
	NombreTercero string
	SaldoFinal    decimal.Decimal
}

// ClassifiedAccount is one unique account after deduplication and
// classification. Codigo is canonical (all digits) and is dropped from the
// emitted datasets; it only drives the statement split.
type ClassifiedAccount struct {
	Codigo   string
	Clase    string
	Grupo    string
	Subgrupo string
	Cuenta   string
	Tercero  string
	Valor    decimal.Decimal
}

// ReportParams are the caller-supplied period and cost-center labels
// prepended to every output row. All four are required before processing;
// ESTADO only appears on the Estado de Resultados dataset.
type ReportParams struct {
	Mes          string
	Estado       string
	Anio         string
	CentroCostos string
}

// Validate reports every blank parameter at once.
func (p ReportParams) Validate() error {
	var missing []string
	if p.Mes == "" {
		missing = append(missing, "MES")
	}
	if p.Estado == "" {
		missing = append(missing, "ESTADO")
	}
	if p.Anio == "" {
		missing = append(missing, "AÑO")
	}
	if p.CentroCostos == "" {
		missing = append(missing, "CENTRO DE COSTOS")
	}
	if len(missing) > 0 {
		return &parsererror.MissingParameterError{Missing: missing}
	}
	return nil
}

// BalanceRow is one row of the Balance General dataset. Field order is the
// column order contract for downstream consumers.
type BalanceRow struct {
	Mes          string          `csv:"MES"`
	Anio         string          `csv:"AÑO"`
	CentroCostos string          `csv:"CENTRO DE COSTOS"`
	Clase        string          `csv:"CLASE"`
	Grupo        string          `csv:"GRUPO"`
	Subgrupo     string          `csv:"SUBGRUPO"`
	Cuenta       string          `csv:"CUENTA"`
	Tercero      string          `csv:"TERCERO"`
	Valor        decimal.Decimal `csv:"VALOR"`
}

// ResultadosRow is one row of the Estado de Resultados dataset. It carries
// the extra ESTADO column between MES and AÑO.
type ResultadosRow struct {
	Mes          string          `csv:"MES"`
	Estado       string          `csv:"ESTADO"`
	Anio         string          `csv:"AÑO"`
	CentroCostos string          `csv:"CENTRO DE COSTOS"`
	Clase        string          `csv:"CLASE"`
	Grupo        string          `csv:"GRUPO"`
	Subgrupo     string          `csv:"SUBGRUPO"`
	Cuenta       string          `csv:"CUENTA"`
	Tercero      string          `csv:"TERCERO"`
	Valor        decimal.Decimal `csv:"VALOR"`
}

// BalanceHeaders is the exact column order of the Balance General dataset.
var BalanceHeaders = []string{
	"MES", "AÑO", "CENTRO DE COSTOS",
	"CLASE", "GRUPO", "SUBGRUPO", "CUENTA", "TERCERO", "VALOR",
}

// ResultadosHeaders is the exact column order of the Estado de Resultados
// dataset.
var ResultadosHeaders = []string{
	"MES", "ESTADO", "AÑO", "CENTRO DE COSTOS",
	"CLASE", "GRUPO", "SUBGRUPO", "CUENTA", "TERCERO", "VALOR",
}

// Values returns the row's cells in BalanceHeaders order.
func (r BalanceRow) Values() []interface{} {
	valor, _ := r.Valor.Float64()
	return []interface{}{
		r.Mes, r.Anio, r.CentroCostos,
		r.Clase, r.Grupo, r.Subgrupo, r.Cuenta, r.Tercero, valor,
	}
}

// Values returns the row's cells in ResultadosHeaders order.
func (r ResultadosRow) Values() []interface{} {
	valor, _ := r.Valor.Float64()
	return []interface{}{
		r.Mes, r.Estado, r.Anio, r.CentroCostos,
		r.Clase, r.Grupo, r.Subgrupo, r.Cuenta, r.Tercero, valor,
	}
}
