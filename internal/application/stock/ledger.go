package stock

import (
	"github.com/jhoicas/sport-stock-api/internal/application/dto"
	"github.com/jhoicas/sport-stock-api/internal/domain/entity"
	"github.com/jhoicas/sport-stock-api/internal/domain/repository"
)

// LedgerUseCase consulta de solo lectura del historial de movimientos,
// enriquecido con el nombre del material y del responsable.
type LedgerUseCase struct {
	movementRepo repository.MovementRepository
}

// NewLedgerUseCase construye el caso de uso con un repositorio atado al pool (sin tx).
func NewLedgerUseCase(movementRepo repository.MovementRepository) *LedgerUseCase {
	return &LedgerUseCase{movementRepo: movementRepo}
}

// List devuelve el historial completo o filtrado por material (materialID 0 = todos),
// ordenado por fecha de movimiento descendente y luego id descendente.
func (uc *LedgerUseCase) List(materialID int64) ([]dto.MovementWithRefsResponse, error) {
	list, err := uc.movementRepo.ListWithRefs(materialID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementWithRefsResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMovementWithRefsResponse(m))
	}
	return items, nil
}

func toMovementWithRefsResponse(m *entity.MovementWithRefs) dto.MovementWithRefsResponse {
	return dto.MovementWithRefsResponse{
		ID:               m.ID,
		MaterialID:       m.MaterialID,
		MaterialName:     m.MaterialName,
		UserID:           m.UserID,
		UserName:         m.UserName,
		Kind:             m.Kind,
		Quantity:         m.Quantity,
		MovedAt:          m.MovedAt,
		ExpectedReturnAt: m.ExpectedReturnAt,
		Status:           m.Status,
	}
}
