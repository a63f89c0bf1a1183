package entity

import "time"

// Roles de usuario del terminal.
const (
	RoleAdmin  = "admin"
	RoleCajero = "cajero"
)

// User es un operador del punto de venta.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // "admin" | "cajero"
	Status       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
