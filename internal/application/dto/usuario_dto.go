package dto

import "time"

// RegisterRequest entrada para registro (auth): nombre, email, password y ferretería.
type RegisterRequest struct {
	Nombre       string `json:"nombre" validate:"required,min=1,max=200"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	FerreteriaID string `json:"ferreteria_id" validate:"required,uuid"`
	Rol          string `json:"rol" validate:"omitempty,oneof=admin vendedor"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UsuarioResponse salida de un usuario (sin password).
type UsuarioResponse struct {
	ID           string    `json:"id"`
	FerreteriaID string    `json:"ferreteria_id"`
	Email        string    `json:"email"`
	Nombre       string    `json:"nombre"`
	Rol          string    `json:"rol"`
	Estado       string    `json:"estado"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string          `json:"token"`
	User  UsuarioResponse `json:"user"`
}
