package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/cafetero-api/internal/application/auth"
	"github.com/jhoicas/cafetero-api/internal/application/dto"
	"github.com/jhoicas/cafetero-api/internal/domain"
	"github.com/jhoicas/cafetero-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio de usuarios (en memoria, indexado por teléfono)
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byPhone map[string]*entity.User
	created []*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{byPhone: make(map[string]*entity.User)}
	for _, u := range users {
		r.byPhone[u.Phone] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.byPhone[user.Phone] = user
	r.created = append(r.created, user)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.byPhone {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByPhone(_ context.Context, phone string) (*entity.User, error) {
	return r.byPhone[phone], nil
}

func (r *fakeUserRepo) GetSellerByID(ctx context.Context, id string) (*entity.User, error) {
	u, _ := r.GetByID(ctx, id)
	if u == nil || !u.IsSeller() {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) ListSellers(_ context.Context, _ string, _, _ int) ([]*entity.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) CountSellers(_ context.Context, _ string) (int, error) {
	return 0, nil
}

func sellerWithPassword(t *testing.T, phone, password string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		ID:           "00000000-0000-0000-0000-000000000001",
		Name:         "María Cardona",
		Phone:        phone,
		Location:     "Chinchiná",
		PasswordHash: string(hash),
		Role:         entity.RoleSeller,
		CreatedAt:    time.Now(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas(t *testing.T) {
	repo := newFakeUserRepo(sellerWithPassword(t, "3001234567", "cafe-secreto"))
	uc := auth.NewAuthUseCase(repo, bcrypt.MinCost)

	sctx, err := uc.Login(context.Background(), "3001234567", "cafe-secreto")
	require.NoError(t, err)

	assert.Equal(t, "María Cardona", sctx.Name)
	assert.Equal(t, entity.RoleSeller, sctx.Role)
	assert.True(t, sctx.IsActive())
	assert.WithinDuration(t, time.Now(), sctx.LoginTime, 2*time.Second,
		"login_time debe ser el momento del login")
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	repo := newFakeUserRepo(sellerWithPassword(t, "3001234567", "cafe-secreto"))
	uc := auth.NewAuthUseCase(repo, bcrypt.MinCost)

	_, err := uc.Login(context.Background(), "3001234567", "otra-clave")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_TelefonoDesconocido_MismoError(t *testing.T) {
	// Teléfono inexistente y password incorrecto deben ser indistinguibles
	// para el llamador: mismo error genérico.
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, bcrypt.MinCost)

	_, err := uc.Login(context.Background(), "3009999999", "lo-que-sea")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RegisterSeller
// ──────────────────────────────────────────────────────────────────────────────

func validRegistration() dto.RegisterSellerRequest {
	return dto.RegisterSellerRequest{
		Name:            "Pedro Gómez",
		Phone:           "3107654321",
		Location:        "Salento",
		Password:        "granos123",
		PasswordConfirm: "granos123",
	}
}

func TestRegisterSeller_CreaCuentaConHash(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, bcrypt.MinCost)

	out, err := uc.RegisterSeller(context.Background(), validRegistration())
	require.NoError(t, err)

	assert.Equal(t, entity.RoleSeller, out.Role, "el auto-registro siempre crea vendedores")
	assert.NotEmpty(t, out.ID)

	require.Len(t, repo.created, 1)
	stored := repo.created[0]
	assert.NotEqual(t, "granos123", stored.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("granos123")))
}

func TestRegisterSeller_ConfirmacionNoCoincide(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, bcrypt.MinCost)

	in := validRegistration()
	in.PasswordConfirm = "distinta"
	_, err := uc.RegisterSeller(context.Background(), in)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "password_confirm")
	assert.Empty(t, repo.created, "no debe persistirse nada ante la validación fallida")
}

func TestRegisterSeller_TelefonoDuplicado(t *testing.T) {
	repo := newFakeUserRepo(sellerWithPassword(t, "3107654321", "x"))
	uc := auth.NewAuthUseCase(repo, bcrypt.MinCost)

	_, err := uc.RegisterSeller(context.Background(), validRegistration())
	assert.ErrorIs(t, err, domain.ErrPhoneAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SessionContext — vencimiento del lado del servidor
// ──────────────────────────────────────────────────────────────────────────────

func TestSessionContext_Vencimiento(t *testing.T) {
	now := time.Now()
	sctx := auth.SessionContext{UserID: "u1", Role: entity.RoleSeller, LoginTime: now.Add(-59 * time.Minute)}

	assert.False(t, sctx.IsExpired(now, time.Hour), "a los 59 minutos la sesión sigue viva")

	sctx.LoginTime = now.Add(-61 * time.Minute)
	assert.True(t, sctx.IsExpired(now, time.Hour), "pasada la hora la sesión vence")
}

func TestSessionContext_InvitadoNuncaVence(t *testing.T) {
	sctx := auth.SessionContext{}
	assert.False(t, sctx.IsExpired(time.Now(), time.Hour))
	assert.False(t, sctx.HasRole(entity.RoleAdmin))
}
