package http_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sport-stock-api/internal/application/usecase"
	"github.com/jhoicas/sport-stock-api/internal/domain"
	"github.com/jhoicas/sport-stock-api/internal/domain/entity"
	apphttp "github.com/jhoicas/sport-stock-api/internal/interfaces/http"
)

// stubMaterialRepo fake con errores configurables para probar el mapeo handler → status.
type stubMaterialRepo struct {
	material  *entity.Material
	deleteErr error
}

func (r *stubMaterialRepo) Create(*entity.Material) error           { return nil }
func (r *stubMaterialRepo) List(string) ([]*entity.Material, error) { return nil, nil }
func (r *stubMaterialRepo) Update(*entity.Material) error           { return nil }

func (r *stubMaterialRepo) GetByID(int64) (*entity.Material, error) {
	if r.material == nil {
		return nil, nil
	}
	cp := *r.material
	return &cp, nil
}

func (r *stubMaterialRepo) ApplyDelta(int64, int64) (*entity.Material, error) {
	return r.GetByID(0)
}

func (r *stubMaterialRepo) Delete(int64) error { return r.deleteErr }

func newMaterialApp(repo *stubMaterialRepo) *fiber.App {
	handler := apphttp.NewMaterialHandler(usecase.NewMaterialUseCase(repo), testLogger())

	app := fiber.New()
	app.Get("/api/materials/:id", handler.GetByID)
	app.Delete("/api/materials/:id", handler.Delete)
	return app
}

func doDelete(t *testing.T, app *fiber.App, path string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("DELETE", path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode, decodeBody(t, resp)
}

// Un material con movimientos no se elimina: la FK RESTRICT llega como
// ErrConflict y el handler responde 409 para que el historial nunca quede colgando.
func TestMaterialDelete_ConMovimientosResponde409(t *testing.T) {
	app := newMaterialApp(&stubMaterialRepo{deleteErr: domain.ErrConflict})

	status, body := doDelete(t, app, "/api/materials/1")
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "CONFLICT", body["code"])
}

func TestMaterialDelete_NoEncontradoResponde404(t *testing.T) {
	app := newMaterialApp(&stubMaterialRepo{deleteErr: domain.ErrNotFound})

	status, body := doDelete(t, app, "/api/materials/1")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestMaterialDelete_OK(t *testing.T) {
	app := newMaterialApp(&stubMaterialRepo{})

	status, _ := doDelete(t, app, "/api/materials/1")
	assert.Equal(t, fiber.StatusOK, status)
}

func TestMaterialDelete_IDInvalido(t *testing.T) {
	app := newMaterialApp(&stubMaterialRepo{})

	status, body := doDelete(t, app, "/api/materials/abc")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "INVALID_ID", body["code"])
}

func TestMaterialGet_NoEncontradoResponde404(t *testing.T) {
	app := newMaterialApp(&stubMaterialRepo{})

	req := httptest.NewRequest("GET", "/api/materials/1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeBody(t, resp)["code"])
}

func TestMaterialGet_OK(t *testing.T) {
	now := time.Now()
	app := newMaterialApp(&stubMaterialRepo{material: &entity.Material{
		ID: 1, Name: "Cone", Quantity: 1, MinStock: 2, CreatedAt: now, UpdatedAt: now,
	}})

	req := httptest.NewRequest("GET", "/api/materials/1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Cone", body["name"])
	assert.Equal(t, true, body["below_minimum"])
}
