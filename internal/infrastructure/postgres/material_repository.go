package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/sport-stock-api/internal/domain"
	"github.com/jhoicas/sport-stock-api/internal/domain/entity"
	"github.com/jhoicas/sport-stock-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementación del puerto MaterialRepository sobre PostgreSQL (usable con pool o tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador de persistencia para materiales. Pasar pool o tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

// Create persiste un nuevo material y asigna el ID generado.
func (r *MaterialRepo) Create(material *entity.Material) error {
	query := `
		INSERT INTO materials (name, quantity, min_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		material.Name, material.Quantity, material.MinStock, material.CreatedAt, material.UpdatedAt,
	).Scan(&material.ID)
	if err != nil {
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByID obtiene un material por ID. Devuelve nil si no existe.
func (r *MaterialRepo) GetByID(id int64) (*entity.Material, error) {
	query := `
		SELECT id, name, quantity, min_stock, created_at, updated_at
		FROM materials WHERE id = $1`
	var m entity.Material
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Name, &m.Quantity, &m.MinStock, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return &m, nil
}

// List lista materiales ordenados alfabéticamente; nameFilter aplica ILIKE sobre el nombre.
func (r *MaterialRepo) List(nameFilter string) ([]*entity.Material, error) {
	query := `
		SELECT id, name, quantity, min_stock, created_at, updated_at
		FROM materials`
	args := []any{}
	if nameFilter != "" {
		query += ` WHERE name ILIKE $1`
		args = append(args, "%"+nameFilter+"%")
	}
	query += ` ORDER BY name ASC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(&m.ID, &m.Name, &m.Quantity, &m.MinStock, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update actualiza un material existente (fila completa; el merge parcial lo hace el use case).
func (r *MaterialRepo) Update(material *entity.Material) error {
	query := `
		UPDATE materials SET name = $2, quantity = $3, min_stock = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		material.ID, material.Name, material.Quantity, material.MinStock, material.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update material: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ApplyDelta suma delta al saldo en una sola sentencia (quantity = quantity + $1) y
// devuelve la fila actualizada, o nil si el material no existe. El read-modify-write
// ocurre dentro del UPDATE, nunca en dos viajes al servidor.
func (r *MaterialRepo) ApplyDelta(id, delta int64) (*entity.Material, error) {
	query := `
		UPDATE materials SET quantity = quantity + $1, updated_at = now()
		WHERE id = $2
		RETURNING id, name, quantity, min_stock, created_at, updated_at`
	var m entity.Material
	err := r.q.QueryRow(context.Background(), query, delta, id).Scan(
		&m.ID, &m.Name, &m.Quantity, &m.MinStock, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("apply delta: %w", err)
	}
	return &m, nil
}

// Delete elimina un material por ID. La FK de movements es RESTRICT: si existen
// movimientos que lo referencian devuelve ErrConflict.
func (r *MaterialRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete material: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
