package dto

import "time"

// RecordMovementRequest body para POST /api/movements.
// moved_at por defecto es el instante actual; status por defecto depende de kind.
type RecordMovementRequest struct {
	MaterialID       int64      `json:"material_id"`
	UserID           int64      `json:"user_id"`
	Kind             string     `json:"kind"`
	Quantity         int64      `json:"quantity"`
	MovedAt          *time.Time `json:"moved_at,omitempty"`
	ExpectedReturnAt *time.Time `json:"expected_return_at,omitempty"`
	Status           string     `json:"status,omitempty"`
}

// MovementResponse salida de un movimiento registrado.
type MovementResponse struct {
	ID               int64      `json:"id"`
	MaterialID       int64      `json:"material_id"`
	UserID           int64      `json:"user_id"`
	Kind             string     `json:"kind"`
	Quantity         int64      `json:"quantity"`
	MovedAt          time.Time  `json:"moved_at"`
	ExpectedReturnAt *time.Time `json:"expected_return_at,omitempty"`
	Status           string     `json:"status"`
}

// RecordMovementResponse respuesta de registrar un movimiento: el movimiento creado
// más el material actualizado, para que el cliente avise de stock bajo sin otra consulta.
type RecordMovementResponse struct {
	Movement MovementResponse `json:"movement"`
	Material MaterialResponse `json:"material"`
}

// MovementWithRefsResponse fila del historial, enriquecida con los nombres referenciados.
type MovementWithRefsResponse struct {
	ID               int64      `json:"id"`
	MaterialID       int64      `json:"material_id"`
	MaterialName     string     `json:"material_name"`
	UserID           int64      `json:"user_id"`
	UserName         string     `json:"user_name"`
	Kind             string     `json:"kind"`
	Quantity         int64      `json:"quantity"`
	MovedAt          time.Time  `json:"moved_at"`
	ExpectedReturnAt *time.Time `json:"expected_return_at,omitempty"`
	Status           string     `json:"status"`
}
