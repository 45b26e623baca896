package http_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sport-stock-api/internal/application/auth"
	"github.com/jhoicas/sport-stock-api/internal/domain/entity"
	apphttp "github.com/jhoicas/sport-stock-api/internal/interfaces/http"
)

// stubUserRepo cuenta los Create para verificar qué capa corta la validación.
type stubUserRepo struct {
	created int
	byEmail map[string]*entity.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *stubUserRepo) Create(u *entity.User) error {
	r.created++
	u.ID = int64(r.created)
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *stubUserRepo) GetByID(int64) (*entity.User, error) { return nil, nil }

func (r *stubUserRepo) GetByEmail(email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func newAuthApp(repo *stubUserRepo) *fiber.App {
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "sport-stock-api"})
	handler := apphttp.NewAuthHandler(uc, testLogger())

	app := fiber.New()
	app.Post("/api/auth/register", handler.Register)
	return app
}

func doRegister(t *testing.T, app *fiber.App, payload map[string]interface{}) (int, map[string]interface{}) {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode, decodeBody(t, resp)
}

func TestAuthRegister_OK(t *testing.T) {
	repo := newStubUserRepo()
	app := newAuthApp(repo)

	status, body := doRegister(t, app, map[string]interface{}{
		"name": "Ana", "email": "ana@example.com", "password": "secreto123",
	})
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "Ana", body["name"])
	assert.Equal(t, entity.RoleStudent, body["role"])
	assert.Equal(t, 1, repo.created)
}

// El handler es el único dueño de la regla "name obligatorio": corta con 400
// antes de llegar al caso de uso, que persiste el nombre tal cual lo recibe.
func TestAuthRegister_NombreVacio(t *testing.T) {
	repo := newStubUserRepo()
	app := newAuthApp(repo)

	status, body := doRegister(t, app, map[string]interface{}{
		"email": "ana@example.com", "password": "secreto123",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Zero(t, repo.created, "no debe llegar al repositorio")
}

func TestAuthRegister_PasswordCorta(t *testing.T) {
	repo := newStubUserRepo()
	app := newAuthApp(repo)

	status, body := doRegister(t, app, map[string]interface{}{
		"name": "Ana", "email": "ana@example.com", "password": "corta",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Zero(t, repo.created)
}

func TestAuthRegister_EmailDuplicado(t *testing.T) {
	repo := newStubUserRepo()
	app := newAuthApp(repo)

	status, _ := doRegister(t, app, map[string]interface{}{
		"name": "Ana", "email": "ana@example.com", "password": "secreto123",
	})
	require.Equal(t, fiber.StatusCreated, status)

	status, body := doRegister(t, app, map[string]interface{}{
		"name": "Otra Ana", "email": "ana@example.com", "password": "secreto123",
	})
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "EMAIL_EXISTS", body["code"])
}
