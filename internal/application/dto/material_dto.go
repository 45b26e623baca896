package dto

import "time"

// CreateMaterialRequest entrada para crear un material. Solo name es obligatorio;
// quantity y min_stock inician en 0 si no se envían.
type CreateMaterialRequest struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
	MinStock int64  `json:"min_stock"`
}

// UpdateMaterialRequest actualización parcial: los campos nil conservan su valor anterior.
type UpdateMaterialRequest struct {
	Name     *string `json:"name,omitempty"`
	Quantity *int64  `json:"quantity,omitempty"`
	MinStock *int64  `json:"min_stock,omitempty"`
}

// MaterialResponse salida de un material. BelowMinimum se recalcula en cada lectura.
type MaterialResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Quantity     int64     `json:"quantity"`
	MinStock     int64     `json:"min_stock"`
	BelowMinimum bool      `json:"below_minimum"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
