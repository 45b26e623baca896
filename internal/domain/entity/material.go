package entity

import "time"

// Material representa un artículo deportivo rastreable con saldo actual y umbral mínimo.
type Material struct {
	ID        int64
	Name      string
	Quantity  int64
	MinStock  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BelowMinimum indica si el saldo está por debajo del umbral mínimo.
// Derivado, se recalcula en cada lectura; nunca se persiste.
func (m *Material) BelowMinimum() bool {
	return m.Quantity < m.MinStock
}
