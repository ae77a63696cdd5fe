package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin    = "admin"
	RolVendedor = "vendedor"
)

// Usuario representa un usuario del portal (personal de una Ferretería).
// Distinto de Cliente, que es el comprador final.
type Usuario struct {
	ID           string
	FerreteriaID string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Nombre       string
	Rol          string // admin, vendedor
	Estado       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
