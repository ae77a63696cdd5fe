package dto

import (
	"encoding/json"
	"time"
)

// CreateFerreteriaRequest entrada para crear una ferretería.
// El RUT se valida con dígito verificador antes de persistir; APIKey la genera el servidor.
type CreateFerreteriaRequest struct {
	RUT         string          `json:"rut" validate:"required"`
	RazonSocial string          `json:"razon_social" validate:"required,min=1,max=200"`
	Direccion   string          `json:"direccion" validate:"required"`
	Lat         float64         `json:"lat" validate:"omitempty,latitude"`
	Lng         float64         `json:"lng" validate:"omitempty,longitude"`
	Telefono    string          `json:"telefono"`
	Horario     json.RawMessage `json:"horario"`
	Descripcion string          `json:"descripcion"`
}

// UpdateFerreteriaRequest entrada para actualización parcial.
type UpdateFerreteriaRequest struct {
	RazonSocial *string         `json:"razon_social" validate:"omitempty,min=1,max=200"`
	Direccion   *string         `json:"direccion"`
	Lat         *float64        `json:"lat" validate:"omitempty,latitude"`
	Lng         *float64        `json:"lng" validate:"omitempty,longitude"`
	Telefono    *string         `json:"telefono"`
	Horario     json.RawMessage `json:"horario"`
	Descripcion *string         `json:"descripcion"`
	Estado      *string         `json:"estado" validate:"omitempty,oneof=active suspended inactive"`
}

// FerreteriaResponse salida de una ferretería. APIKey solo se expone al crearla.
type FerreteriaResponse struct {
	ID          string          `json:"id"`
	RUT         string          `json:"rut"`
	RazonSocial string          `json:"razon_social"`
	Direccion   string          `json:"direccion"`
	Lat         float64         `json:"lat"`
	Lng         float64         `json:"lng"`
	Telefono    string          `json:"telefono"`
	APIKey      string          `json:"api_key,omitempty"`
	Horario     json.RawMessage `json:"horario,omitempty"`
	Descripcion string          `json:"descripcion"`
	Estado      string          `json:"estado"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// FerreteriaListResponse lista paginada de ferreterías.
type FerreteriaListResponse struct {
	Items []FerreteriaResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
