package entity

import "time"

// User usuario del dashboard (solo lo consume la capa de autenticación).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Status       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
