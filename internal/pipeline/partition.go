package pipeline

import (
	"oxynia/siigo-balance/internal/models"
	"oxynia/siigo-balance/internal/parsererror"
)

// Partition splits the shaped accounts into the Balance General and Estado
// de Resultados datasets by leading code digit and prepends the caller's
// period metadata. After Shape every surviving leading digit is 1-9; hitting
// anything else means a classification-table or filter bug, so it is a hard
// error and neither dataset is returned.
func Partition(accounts []models.ClassifiedAccount, params models.ReportParams) ([]models.BalanceRow, []models.ResultadosRow, error) {
	balance := make([]models.BalanceRow, 0, len(accounts))
	resultados := make([]models.ResultadosRow, 0, len(accounts))

	for _, acc := range accounts {
		switch acc.Codigo[0] {
		case '1', '2', '3':
			balance = append(balance, models.BalanceRow{
				Mes:          params.Mes,
				Anio:         params.Anio,
				CentroCostos: params.CentroCostos,
				Clase:        acc.Clase,
				Grupo:        acc.Grupo,
				Subgrupo:     acc.Subgrupo,
				Cuenta:       acc.Cuenta,
				Tercero:      acc.Tercero,
				Valor:        acc.Valor,
			})
		case '4', '5', '6', '7', '8', '9':
			resultados = append(resultados, models.ResultadosRow{
				Mes:          params.Mes,
				Estado:       params.Estado,
				Anio:         params.Anio,
				CentroCostos: params.CentroCostos,
				Clase:        acc.Clase,
				Grupo:        acc.Grupo,
				Subgrupo:     acc.Subgrupo,
				Cuenta:       acc.Cuenta,
				Tercero:      acc.Tercero,
				Valor:        acc.Valor,
			})
		default:
			return nil, nil, &parsererror.PartitionError{Codigo: acc.Codigo}
		}
	}

	return balance, resultados, nil
}
