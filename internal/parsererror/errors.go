package parsererror

import (
	"fmt"
	"strings"
)

// ParseError represents an error while parsing a single cell value.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError reports required columns that are absent from the export's
// header row. It is raised before any transformation takes place.
type SchemaError struct {
	FilePath string
	Missing  []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("faltan columnas requeridas en el archivo Excel '%s': %s",
		e.FilePath, strings.Join(e.Missing, ", "))
}

// MissingParameterError reports report parameters (MES, ESTADO, AÑO,
// CENTRO DE COSTOS) that were left blank by the caller.
type MissingParameterError struct {
	Missing []string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("parámetros requeridos sin valor: %s",
		strings.Join(e.Missing, ", "))
}

// PartitionError reports an account that survived filtering but whose
// leading digit belongs to neither statement. This indicates a bug in the
// classification tables or filters, not bad input data.
type PartitionError struct {
	Codigo string
}

func (e *PartitionError) Error() string {
	return fmt.Sprintf("cuenta '%s' con dígito inicial fuera del PUC tras el filtrado", e.Codigo)
}

// InvalidFormatError represents an input file that is not a readable SIIGO
// Excel export.
type InvalidFormatError struct {
	FilePath string
	Msg      string
	Err      error
}

func (e *InvalidFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid format in file '%s': %s: %v", e.FilePath, e.Msg, e.Err)
	}
	return fmt.Sprintf("invalid format in file '%s': %s", e.FilePath, e.Msg)
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}
