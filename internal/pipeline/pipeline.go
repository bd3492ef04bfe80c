// Package pipeline turns raw SIIGO export rows into the two statement
// datasets. The flow is strictly linear: filter, deduplicate, classify,
// shape, then partition by leading digit.
package pipeline

import (
	"oxynia/siigo-balance/internal/logging"
	"oxynia/siigo-balance/internal/models"
	"oxynia/siigo-balance/internal/puc"
)

// Codes shorter than this are summary/header accounts in the chart of
// accounts, not leaf postable accounts.
const minCodeLength = 6

// Stats counts every exclusion bucket of a run. Unclassifiable rows are not
// errors, but silent data loss would be a correctness risk for a financial
// tool, so every drop is accounted for.
type Stats struct {
	TotalRows     int
	Transactional int // rows where Transaccional != "No"
	InvalidCodes  int // account codes that do not canonicalize to digits
	Duplicates    int // later rows sharing an already seen account code
	Unclassified  int // GRUPO == NO CLASIFICADO or SUBGRUPO == NO DEFINIDO
	ShortCodes    int // canonical code length < 6
	Kept          int
}

// Dropped returns the total number of excluded rows.
func (s Stats) Dropped() int {
	return s.Transactional + s.InvalidCodes + s.Duplicates + s.Unclassified + s.ShortCodes
}

// Shape filters, deduplicates and classifies the loaded rows. Order is
// preserved; for duplicate account codes the first occurrence wins. Rows
// that cannot be classified are excluded and counted, never errored.
func Shape(rows []models.AccountRow, logger logging.Logger) ([]models.ClassifiedAccount, Stats) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	stats := Stats{TotalRows: len(rows)}
	seen := make(map[string]struct{}, len(rows))
	accounts := make([]models.ClassifiedAccount, 0, len(rows))

	for _, row := range rows {
		if row.Transaccional != models.TransaccionalNo {
			stats.Transactional++
			continue
		}

		code, err := puc.CanonicalCode(row.Codigo)
		if err != nil {
			stats.InvalidCodes++
			logger.WithError(err).Debug("skipping row with unparsable account code",
				logging.Field{Key: logging.FieldCodigo, Value: row.Codigo})
			continue
		}

		if _, dup := seen[code]; dup {
			stats.Duplicates++
			continue
		}
		seen[code] = struct{}{}

		c := puc.Classify(code)
		if c.Grupo == puc.GrupoNoClasificado || c.Subgrupo == puc.SubgrupoNoDefinido {
			stats.Unclassified++
			logger.Debug("skipping unclassifiable account",
				logging.Field{Key: logging.FieldCodigo, Value: code},
				logging.Field{Key: logging.FieldGrupo, Value: c.Grupo},
				logging.Field{Key: logging.FieldSubgrupo, Value: c.Subgrupo})
			continue
		}

		if len(code) < minCodeLength {
			stats.ShortCodes++
			logger.Debug("skipping summary account with short code",
				logging.Field{Key: logging.FieldCodigo, Value: code})
			continue
		}

		accounts = append(accounts, models.ClassifiedAccount{
			Codigo:   code,
			Clase:    c.Clase,
			Grupo:    c.Grupo,
			Subgrupo: c.Subgrupo,
			Cuenta:   code + " - " + row.Nombre,
			Tercero:  row.NombreTercero,
			Valor:    row.SaldoFinal,
		})
	}

	stats.Kept = len(accounts)
	logger.Info("shaped account rows",
		logging.Field{Key: logging.FieldCount, Value: stats.Kept},
		logging.Field{Key: logging.FieldDropped, Value: stats.Dropped()})
	return accounts, stats
}
