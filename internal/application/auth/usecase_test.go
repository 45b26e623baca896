package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/sport-stock-api/internal/application/auth"
	"github.com/jhoicas/sport-stock-api/internal/application/dto"
	"github.com/jhoicas/sport-stock-api/internal/domain"
	"github.com/jhoicas/sport-stock-api/internal/domain/entity"
	"github.com/jhoicas/sport-stock-api/pkg/jwt"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.nextID++
	u.ID = r.nextID
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

var testJWTCfg = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "sport-stock-api"}

func TestRegister_HasheaPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secreto123",
	})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	assert.Equal(t, entity.RoleStudent, out.Role, "rol por defecto")

	stored, err := repo.GetByEmail("ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTCfg)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_RolInvalido(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTCfg)

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "secreto123",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_TokenValido(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTCfg)

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secreto123",
		Role:     entity.RoleTeacher,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", out.User.Email)

	userID, role, err := jwt.Parse(testJWTCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "1", userID)
	assert.Equal(t, entity.RoleTeacher, role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTCfg)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTCfg)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
