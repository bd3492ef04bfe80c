package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunClassifiesBalanceCode(t *testing.T) {
	result, err := Run("110501")
	require.NoError(t, err)
	assert.Equal(t, "110501", result.Codigo)
	assert.Equal(t, "ACTIVO", result.Clase)
	assert.Equal(t, "DISPONIBLE", result.Subgrupo)
	assert.Equal(t, "ACTIVO CORRIENTE", result.Grupo)
}

func TestRunCanonicalizesBeforeClassifying(t *testing.T) {
	result, err := Run("413501.0")
	require.NoError(t, err)
	assert.Equal(t, "413501", result.Codigo)
	assert.Equal(t, "INGRESOS", result.Clase)
	assert.Equal(t, "CUENTA DE RESULTADOS", result.Grupo)
}

func TestRunRejectsNonNumericCode(t *testing.T) {
	_, err := Run("caja")
	assert.Error(t, err)
}
