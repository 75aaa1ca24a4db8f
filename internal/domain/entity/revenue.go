package entity

// Revenue ingreso mensual agregado (solo lectura, alimenta el gráfico del dashboard).
type Revenue struct {
	Month   string // etiqueta corta: "Jan", "Feb", ...
	Revenue int64  // centavos
}
