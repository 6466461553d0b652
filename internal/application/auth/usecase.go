package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/cafetero-api/internal/application/dto"
	"github.com/jhoicas/cafetero-api/internal/domain"
	"github.com/jhoicas/cafetero-api/internal/domain/entity"
	"github.com/jhoicas/cafetero-api/internal/domain/repository"
)

// dummyHash es un hash bcrypt válido contra el que se compara cuando el
// teléfono no existe, para que el costo del login no delate si la cuenta
// existe. El password que responde a este hash no se acepta en ningún caso.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthUseCase casos de uso de autenticación: login y registro de vendedores.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	bcryptCost int
}

// NewAuthUseCase construye el caso de uso de auth. cost <= 0 usa bcrypt.DefaultCost.
func NewAuthUseCase(userRepo repository.UserRepository, bcryptCost int) *AuthUseCase {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthUseCase{userRepo: userRepo, bcryptCost: bcryptCost}
}

// Login verifica teléfono/password y devuelve el contexto de sesión.
// Teléfono desconocido y password incorrecto retornan el mismo
// domain.ErrUnauthorized: el llamador nunca puede distinguirlos.
func (uc *AuthUseCase) Login(ctx context.Context, phone, password string) (*SessionContext, error) {
	user, err := uc.userRepo.GetByPhone(ctx, strings.TrimSpace(phone))
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Comparación contra el hash dummy: mismo costo que un login real.
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return &SessionContext{
		UserID:    user.ID,
		Name:      user.Name,
		Phone:     user.Phone,
		Location:  user.Location,
		Role:      user.Role,
		LoginTime: time.Now(),
	}, nil
}

// RegisterSeller crea una cuenta de vendedor: valida, hashea el password con
// bcrypt y persiste. El rol es siempre seller; el admin se aprovisiona fuera
// de banda. Devuelve domain.ErrPhoneAlreadyExists si el teléfono ya existe.
func (uc *AuthUseCase) RegisterSeller(ctx context.Context, in dto.RegisterSellerRequest) (*dto.UserResponse, error) {
	if in.Password != in.PasswordConfirm {
		return nil, domain.NewValidationError("password_confirm", "las contraseñas no coinciden")
	}

	existing, err := uc.userRepo.GetByPhone(ctx, strings.TrimSpace(in.Phone))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrPhoneAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.bcryptCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Phone:        strings.TrimSpace(in.Phone),
		Location:     strings.TrimSpace(in.Location),
		PasswordHash: string(hash),
		Role:         entity.RoleSeller,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// ToUserResponse mapea la entidad a su DTO de salida (sin hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Phone:     u.Phone,
		Location:  u.Location,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
