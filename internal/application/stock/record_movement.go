package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/sport-stock-api/internal/application/dto"
	"github.com/jhoicas/sport-stock-api/internal/domain"
	"github.com/jhoicas/sport-stock-api/internal/domain/entity"
	"github.com/jhoicas/sport-stock-api/internal/domain/repository"
	"github.com/jhoicas/sport-stock-api/pkg/logger"
)

// RecordMovementUseCase registra movimientos de material (préstamo/devolución) de forma
// transaccional: aplica el delta al saldo y persiste el movimiento con Commit/Rollback.
type RecordMovementUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewRecordMovementUseCase construye el caso de uso.
func NewRecordMovementUseCase(txRunner TxRunner, log *logger.Logger) *RecordMovementUseCase {
	return &RecordMovementUseCase{txRunner: txRunner, log: log}
}

// Record valida la entrada, calcula el delta según el tipo y ejecuta en una transacción:
// UPDATE del saldo (una sola sentencia quantity = quantity + delta) + INSERT del movimiento.
// Si el material no existe la transacción aborta sin dejar movimiento registrado.
// Devuelve el movimiento creado y el material actualizado con BelowMinimum recalculado.
func (uc *RecordMovementUseCase) Record(ctx context.Context, in dto.RecordMovementRequest) (*dto.RecordMovementResponse, error) {
	if in.MaterialID <= 0 || in.UserID <= 0 || in.Kind == "" || in.Quantity == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 {
		// Los callers deben rechazar cantidades no positivas; aquí no se interpreta el signo.
		return nil, domain.ErrInvalidInput
	}
	kind, ok := entity.NormalizeKind(in.Kind)
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	// préstamo = disminuye saldo, devolución = aumenta saldo; se guarda la magnitud sin signo
	qty := in.Quantity
	if qty < 0 {
		qty = -qty
	}
	delta := qty
	if kind == entity.KindLoan {
		delta = -qty
	}

	movedAt := time.Now()
	if in.MovedAt != nil {
		movedAt = *in.MovedAt
	}
	status := in.Status
	if status == "" {
		status = entity.DefaultStatus(kind)
	}

	opID := uuid.New().String()

	var out dto.RecordMovementResponse
	err := uc.txRunner.Run(ctx, func(
		materialRepo repository.MaterialRepository,
		movementRepo repository.MovementRepository,
	) error {
		material, err := materialRepo.ApplyDelta(in.MaterialID, delta)
		if err != nil {
			return err
		}
		if material == nil {
			return domain.ErrNotFound
		}
		mov := &entity.Movement{
			MaterialID:       in.MaterialID,
			UserID:           in.UserID,
			Kind:             kind,
			Quantity:         qty,
			MovedAt:          movedAt,
			ExpectedReturnAt: in.ExpectedReturnAt,
			Status:           status,
			CreatedAt:        time.Now(),
		}
		if err := movementRepo.Create(mov); err != nil {
			return err
		}
		out = dto.RecordMovementResponse{
			Movement: toMovementResponse(mov),
			Material: toMaterialResponse(material),
		}
		return nil
	})
	if err != nil {
		if err != domain.ErrNotFound && err != domain.ErrInvalidInput {
			uc.log.Error().Err(err).Str("op_id", opID).Int64("material_id", in.MaterialID).Msg("registrar movimiento")
		}
		return nil, err
	}

	uc.log.Info().
		Str("op_id", opID).
		Int64("material_id", in.MaterialID).
		Str("kind", kind).
		Int64("quantity", qty).
		Int64("new_balance", out.Material.Quantity).
		Msg("movimiento registrado")
	return &out, nil
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:               m.ID,
		MaterialID:       m.MaterialID,
		UserID:           m.UserID,
		Kind:             m.Kind,
		Quantity:         m.Quantity,
		MovedAt:          m.MovedAt,
		ExpectedReturnAt: m.ExpectedReturnAt,
		Status:           m.Status,
	}
}

func toMaterialResponse(m *entity.Material) dto.MaterialResponse {
	return dto.MaterialResponse{
		ID:           m.ID,
		Name:         m.Name,
		Quantity:     m.Quantity,
		MinStock:     m.MinStock,
		BelowMinimum: m.BelowMinimum(),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
