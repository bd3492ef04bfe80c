package logging

// Standardized field names for structured logging. Using the same keys
// everywhere keeps the run summary greppable.
const (
	FieldFile       = "file_path"
	FieldSheet      = "sheet"
	FieldCount      = "count"
	FieldCodigo     = "codigo"
	FieldClase      = "clase"
	FieldSubgrupo   = "subgrupo"
	FieldGrupo      = "grupo"
	FieldError      = "error"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldDropped    = "dropped"
	FieldReason     = "reason"
)
