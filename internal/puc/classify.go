package puc

// Classification holds the three taxonomy labels derived from an account
// code. All three are pure functions of the code; recomputing them for the
// same code always yields the same labels.
type Classification struct {
	Clase    string
	Subgrupo string
	Grupo    string
}

// Clase returns the PUC class label for the first digit of a canonical
// account code, or ClaseNoDefinida when the digit is not in the table.
func Clase(code string) string {
	if code == "" {
		return ClaseNoDefinida
	}
	if label, ok := claseMap[code[:1]]; ok {
		return label
	}
	return ClaseNoDefinida
}

// Subgrupo returns the PUC subgroup label for the first two digits of a
// canonical account code. Unmapped prefixes return SubgrupoNoDefinido,
// which downstream filtering treats as "unclassified, discard".
func Subgrupo(code string) string {
	if len(code) < 2 {
		return SubgrupoNoDefinido
	}
	if label, ok := subgrupoMap[code[:2]]; ok {
		return label
	}
	return SubgrupoNoDefinido
}

// Grupo assigns the current/non-current bucket from the class digit and
// subgroup prefix. Class 1 and 2 codes whose subgroup falls outside the
// listed ranges fall through to GrupoNoClasificado, mirroring the SIIGO
// worksheet rules this tool replaces.
func Grupo(code string) string {
	if code == "" {
		return GrupoNoClasificado
	}
	sub := code
	if len(code) >= 2 {
		sub = code[:2]
	}
	switch code[:1] {
	case "1":
		switch sub {
		case "11", "12", "13", "14":
			return GrupoActivoCorriente
		case "15", "16", "17", "18", "19":
			return GrupoActivoNoCorriente
		}
	case "2":
		switch sub {
		case "21", "22", "23", "24", "25", "26", "28":
			return GrupoPasivoCorriente
		case "27", "29":
			return GrupoPasivoNoCorriente
		}
	case "3":
		// Equity is non-current by definition.
		return GrupoPatrimonio
	case "4", "5", "6", "7":
		return GrupoCuentaResultados
	case "8", "9":
		return GrupoCuentaOrden
	}
	return GrupoNoClasificado
}

// Classify derives all three labels for a canonical account code.
func Classify(code string) Classification {
	return Classification{
		Clase:    Clase(code),
		Subgrupo: Subgrupo(code),
		Grupo:    Grupo(code),
	}
}
