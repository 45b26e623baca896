package stock

import (
	"context"

	"github.com/jhoicas/sport-stock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que la actualización del saldo y el alta del movimiento se confirmen como una sola unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		materialRepo repository.MaterialRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
