package repository

import "github.com/jhoicas/sport-stock-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para movimientos de material.
// Los movimientos son inmutables: no existe Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// ListWithRefs devuelve los movimientos enriquecidos con nombre de material y
	// de responsable, ordenados por fecha de movimiento y luego id, descendente.
	// materialID 0 = sin filtro.
	ListWithRefs(materialID int64) ([]*entity.MovementWithRefs, error)
}
