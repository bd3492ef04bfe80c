package puc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClase(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"110501", "ACTIVO"},
		{"210501", "PASIVO"},
		{"310501", "PATRIMONIO"},
		{"413501", "INGRESOS"},
		{"510501", "GASTOS"},
		{"610501", "COSTOS DE VENTAS"},
		{"710501", "COSTOS DE PRODUCCIÓN O DE OPERACIÓN"},
		{"810501", "CUENTAS DE ORDEN DEUDORAS"},
		{"910501", "CUENTAS DE ORDEN ACREEDORAS"},
		{"010501", ClaseNoDefinida},
		{"", ClaseNoDefinida},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clase(tt.code), "code %q", tt.code)
	}
}

func TestSubgrupo(t *testing.T) {
	assert.Equal(t, "DISPONIBLE", Subgrupo("110501"))
	assert.Equal(t, "OPERACIONALES", Subgrupo("413501"))
	assert.Equal(t, "GANANCIAS Y PÉRDIDAS", Subgrupo("590501"))
	assert.Equal(t, "ACREEDORAS DE CONTROL", Subgrupo("930101"))
}

func TestSubgrupoUnmappedPrefix(t *testing.T) {
	// Many two-digit prefixes are intentionally absent from the table.
	assert.Equal(t, SubgrupoNoDefinido, Subgrupo("990501"))
	assert.Equal(t, SubgrupoNoDefinido, Subgrupo("450501"))
	assert.Equal(t, SubgrupoNoDefinido, Subgrupo("1"))
	assert.Equal(t, SubgrupoNoDefinido, Subgrupo(""))
}

func TestGrupo(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"110501", GrupoActivoCorriente},
		{"125501", GrupoActivoCorriente},
		{"130505", GrupoActivoCorriente},
		{"143501", GrupoActivoCorriente},
		{"150401", GrupoActivoNoCorriente},
		{"162501", GrupoActivoNoCorriente},
		{"171001", GrupoActivoNoCorriente},
		{"189501", GrupoActivoNoCorriente},
		{"191001", GrupoActivoNoCorriente},
		{"210501", GrupoPasivoCorriente},
		{"220501", GrupoPasivoCorriente},
		{"233501", GrupoPasivoCorriente},
		{"240401", GrupoPasivoCorriente},
		{"250501", GrupoPasivoCorriente},
		{"261001", GrupoPasivoCorriente},
		{"280501", GrupoPasivoCorriente},
		{"271001", GrupoPasivoNoCorriente},
		{"290501", GrupoPasivoNoCorriente},
		{"310501", GrupoPatrimonio},
		{"413501", GrupoCuentaResultados},
		{"510501", GrupoCuentaResultados},
		{"613501", GrupoCuentaResultados},
		{"710501", GrupoCuentaResultados},
		{"810501", GrupoCuentaOrden},
		{"910501", GrupoCuentaOrden},
		{"010501", GrupoNoClasificado},
		{"", GrupoNoClasificado},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Grupo(tt.code), "code %q", tt.code)
	}
}

func TestGrupoAssetSubgroupOutsideRanges(t *testing.T) {
	// Class 1/2 codes with a subgroup outside all listed ranges carry no
	// bucket and fall through to NO CLASIFICADO.
	assert.Equal(t, GrupoNoClasificado, Grupo("100501"))
	assert.Equal(t, GrupoNoClasificado, Grupo("200501"))
}

func TestClassifyBalanceAccount(t *testing.T) {
	c := Classify("110501")
	assert.Equal(t, "ACTIVO", c.Clase)
	assert.Equal(t, "DISPONIBLE", c.Subgrupo)
	assert.Equal(t, GrupoActivoCorriente, c.Grupo)
}

func TestClassifyIncomeAccount(t *testing.T) {
	c := Classify("413501")
	assert.Equal(t, "INGRESOS", c.Clase)
	assert.Equal(t, "OPERACIONALES", c.Subgrupo)
	assert.Equal(t, GrupoCuentaResultados, c.Grupo)
}

func TestClassifyIsDeterministic(t *testing.T) {
	first := Classify("261001")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify("261001"))
	}
}
