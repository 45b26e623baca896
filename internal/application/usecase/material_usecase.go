package usecase

import (
	"time"

	"github.com/jhoicas/sport-stock-api/internal/application/dto"
	"github.com/jhoicas/sport-stock-api/internal/domain"
	"github.com/jhoicas/sport-stock-api/internal/domain/entity"
	"github.com/jhoicas/sport-stock-api/internal/domain/repository"
)

// MaterialUseCase casos de uso CRUD para materiales. El saldo solo debería
// mutarse vía movimientos o edición directa; nunca se persiste BelowMinimum.
type MaterialUseCase struct {
	repo repository.MaterialRepository
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(repo repository.MaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo}
}

// Create crea un material. Name es obligatorio; quantity y min_stock inician en 0.
func (uc *MaterialUseCase) Create(in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	material := &entity.Material{
		Name:      in.Name,
		Quantity:  in.Quantity,
		MinStock:  in.MinStock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(material); err != nil {
		return nil, err
	}
	out := toMaterialResponse(material)
	return &out, nil
}

// GetByID obtiene un material por ID.
func (uc *MaterialUseCase) GetByID(id int64) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	out := toMaterialResponse(material)
	return &out, nil
}

// List lista materiales ordenados por nombre, con filtro opcional por subcadena
// del nombre (sin distinguir mayúsculas).
func (uc *MaterialUseCase) List(nameFilter string) ([]dto.MaterialResponse, error) {
	list, err := uc.repo.List(nameFilter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMaterialResponse(m))
	}
	return items, nil
}

// Update actualización parcial: los campos no enviados conservan su valor anterior.
func (uc *MaterialUseCase) Update(id int64, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		material.Name = *in.Name
	}
	if in.Quantity != nil {
		material.Quantity = *in.Quantity
	}
	if in.MinStock != nil {
		material.MinStock = *in.MinStock
	}
	material.UpdatedAt = time.Now()
	if err := uc.repo.Update(material); err != nil {
		return nil, err
	}
	out := toMaterialResponse(material)
	return &out, nil
}

// Delete elimina un material por ID. Devuelve ErrConflict si existen movimientos
// que lo referencian (la FK es RESTRICT) y ErrNotFound si no existe.
func (uc *MaterialUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
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
