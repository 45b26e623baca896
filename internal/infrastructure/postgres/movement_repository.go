package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/sport-stock-api/internal/domain/entity"
	"github.com/jhoicas/sport-stock-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento y asigna el ID generado. Los movimientos son inmutables.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (material_id, user_id, kind, quantity, moved_at, expected_return_at, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		movement.MaterialID, movement.UserID, movement.Kind, movement.Quantity,
		movement.MovedAt, movement.ExpectedReturnAt, movement.Status, movement.CreatedAt,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListWithRefs lista movimientos con los nombres del material y del responsable,
// ordenados por fecha de movimiento y luego id, descendente (empates con el mismo
// instante resuelven al insertado más reciente). materialID 0 = sin filtro.
func (r *MovementRepo) ListWithRefs(materialID int64) ([]*entity.MovementWithRefs, error) {
	query := `
		SELECT m.id, m.material_id, mat.name, m.user_id, u.name,
		       m.kind, m.quantity, m.moved_at, m.expected_return_at, m.status, m.created_at
		FROM movements m
		JOIN materials mat ON mat.id = m.material_id
		JOIN users u ON u.id = m.user_id`
	args := []any{}
	if materialID != 0 {
		query += ` WHERE m.material_id = $1`
		args = append(args, materialID)
	}
	query += ` ORDER BY m.moved_at DESC, m.id DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementWithRefs
	for rows.Next() {
		var m entity.MovementWithRefs
		if err := rows.Scan(&m.ID, &m.MaterialID, &m.MaterialName, &m.UserID, &m.UserName,
			&m.Kind, &m.Quantity, &m.MovedAt, &m.ExpectedReturnAt, &m.Status, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
