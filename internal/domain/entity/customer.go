package entity

// Customer representa un cliente del dashboard.
// ImageURL es opcional: nil se persiste como NULL (nunca string vacío).
type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL *string
}
