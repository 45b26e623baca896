package stock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sport-stock-api/internal/application/stock"
	"github.com/jhoicas/sport-stock-api/internal/domain/entity"
)

// fakeLedgerRepo devuelve el historial sembrado, respetando el filtro por material.
type fakeLedgerRepo struct {
	rows []*entity.MovementWithRefs
}

func (r *fakeLedgerRepo) Create(*entity.Movement) error { return nil }

func (r *fakeLedgerRepo) ListWithRefs(materialID int64) ([]*entity.MovementWithRefs, error) {
	if materialID == 0 {
		return r.rows, nil
	}
	var out []*entity.MovementWithRefs
	for _, m := range r.rows {
		if m.MaterialID == materialID {
			out = append(out, m)
		}
	}
	return out, nil
}

func ledgerRow(id, materialID int64, materialName string, movedAt time.Time) *entity.MovementWithRefs {
	return &entity.MovementWithRefs{
		Movement: entity.Movement{
			ID: id, MaterialID: materialID, UserID: 7, Kind: entity.KindLoan,
			Quantity: 1, MovedAt: movedAt, Status: entity.StatusLoaned,
		},
		MaterialName: materialName,
		UserName:     "Ana",
	}
}

func TestLedger_ListaEnriquecida(t *testing.T) {
	now := time.Now()
	repo := &fakeLedgerRepo{rows: []*entity.MovementWithRefs{
		ledgerRow(3, 1, "Cone", now),
		ledgerRow(2, 2, "Ball", now.Add(-time.Hour)),
	}}
	uc := stock.NewLedgerUseCase(repo)

	items, err := uc.List(0)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Cone", items[0].MaterialName)
	assert.Equal(t, "Ana", items[0].UserName)
	assert.Equal(t, "loan", items[0].Kind)
	assert.Equal(t, int64(1), items[0].Quantity)
}

func TestLedger_FiltroPorMaterial(t *testing.T) {
	now := time.Now()
	repo := &fakeLedgerRepo{rows: []*entity.MovementWithRefs{
		ledgerRow(3, 1, "Cone", now),
		ledgerRow(2, 2, "Ball", now),
		ledgerRow(1, 1, "Cone", now.Add(-time.Minute)),
	}}
	uc := stock.NewLedgerUseCase(repo)

	items, err := uc.List(1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, it := range items {
		assert.Equal(t, int64(1), it.MaterialID)
	}
}

// Listar dos veces sin mutaciones intermedias produce resultados idénticos.
func TestLedger_ListadoIdempotente(t *testing.T) {
	repo := &fakeLedgerRepo{rows: []*entity.MovementWithRefs{
		ledgerRow(2, 1, "Cone", time.Now()),
		ledgerRow(1, 1, "Cone", time.Now().Add(-time.Minute)),
	}}
	uc := stock.NewLedgerUseCase(repo)

	first, err := uc.List(0)
	require.NoError(t, err)
	second, err := uc.List(0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
