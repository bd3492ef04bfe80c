// Package puc implements the account classification rules of the Colombian
// chart of accounts (Plan Único de Cuentas). The first digit of an account
// code selects its class, the first two digits its subgroup, and a fixed
// decision table assigns the current/non-current bucket.
package puc

// Labels returned when a code has no entry in the lookup tables.
const (
	ClaseNoDefinida    = "NO DEFINIDA"
	SubgrupoNoDefinido = "NO DEFINIDO"
)

// Grupo labels.
const (
	GrupoActivoCorriente   = "ACTIVO CORRIENTE"
	GrupoActivoNoCorriente = "ACTIVO NO CORRIENTE"
	GrupoPasivoCorriente   = "PASIVO CORRIENTE"
	GrupoPasivoNoCorriente = "PASIVO NO CORRIENTE"
	GrupoPatrimonio        = "PATRIMONIO"
	GrupoCuentaResultados  = "CUENTA DE RESULTADOS"
	GrupoCuentaOrden       = "CUENTA DE ORDEN"
	GrupoNoClasificado     = "NO CLASIFICADO"
)

// claseMap maps the first digit of an account code to its PUC class.
// Read-only after package init; never mutated at runtime.
var claseMap = map[string]string{
	"1": "ACTIVO",
	"2": "PASIVO",
	"3": "PATRIMONIO",
	"4": "INGRESOS",
	"5": "GASTOS",
	"6": "COSTOS DE VENTAS",
	"7": "COSTOS DE PRODUCCIÓN O DE OPERACIÓN",
	"8": "CUENTAS DE ORDEN DEUDORAS",
	"9": "CUENTAS DE ORDEN ACREEDORAS",
}

// subgrupoMap maps the first two digits of an account code to its PUC
// subgroup. Two-digit prefixes absent from this table are intentionally
// unmapped and classify as NO DEFINIDO.
var subgrupoMap = map[string]string{
	"11": "DISPONIBLE",
	"12": "INVERSIONES",
	"13": "DEUDORES",
	"14": "INVENTARIOS",
	"15": "PROPIEDADES, PLANTA Y EQUIPO",
	"16": "INTANGIBLES",
	"17": "DIFERIDOS",
	"18": "OTROS ACTIVOS",
	"19": "VALORIZACIONES",
	"21": "OBLIGACIONES FINANCIERAS",
	"22": "PROVEEDORES",
	"23": "CUENTAS POR PAGAR",
	"24": "IMPUESTOS, GRAVÁMENES Y TASAS",
	"25": "OBLIGACIONES LABORALES",
	"26": "PASIVOS ESTIMADOS Y PROVISIONES",
	"27": "DIFERIDOS",
	"28": "OTROS PASIVOS",
	"29": "BONOS Y PAPELES COMERCIALES",
	"31": "CAPITAL SOCIAL",
	"32": "SUPERÁVIT DE CAPITAL",
	"33": "RESERVAS",
	"34": "REVALORIZACIÓN DEL PATRIMONIO",
	"35": "DIVIDENDOS O PARTICIPACIONES DECRETADOS EN ACCIONES",
	"36": "RESULTADOS DEL EJERCICIO",
	"37": "RESULTADOS DE EJERCICIOS ANTERIORES",
	"38": "SUPERÁVIT POR VALORIZACIONES",
	"41": "OPERACIONALES",
	"42": "NO OPERACIONALES",
	"47": "AJUSTES POR INFLACIÓN",
	"51": "OPERACIONALES DE ADMINISTRACIÓN",
	"52": "OPERACIONALES DE VENTAS",
	"53": "NO OPERACIONALES",
	"54": "IMPUESTO DE RENTA Y COMPLEMENTARIOS",
	"59": "GANANCIAS Y PÉRDIDAS",
	"61": "COSTO DE VENTAS Y DE PRESTACIÓN DE SERVICIOS",
	"62": "COMPRAS",
	"71": "MATERIA PRIMA",
	"72": "MANO DE OBRA DIRECTA",
	"73": "COSTOS INDIRECTOS",
	"74": "CONTRATOS DE SERVICIOS",
	"81": "DERECHOS CONTINGENTES",
	"82": "DEUDORAS FISCALES",
	"83": "DEUDORAS DE CONTROL",
	"91": "RESPONSABILIDADES CONTINGENTES",
	"92": "ACREEDORAS FISCALES",
	"93": "ACREEDORAS DE CONTROL",
}
