package entity

import "time"

// Cliente representa un comprador final de la app, separado de los usuarios
// del portal.
type Cliente struct {
	ID        string
	Nombre    string
	Email     string
	Telefono  string
	Direccion string
	CreatedAt time.Time
	UpdatedAt time.Time
}
