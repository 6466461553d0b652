package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cafetero-api/internal/application/auth"
	"github.com/jhoicas/cafetero-api/internal/application/dto"
	"github.com/jhoicas/cafetero-api/pkg/logger"
)

// AuthHandler maneja login, registro de vendedores, logout y estado de sesión.
type AuthHandler struct {
	uc       *auth.AuthUseCase
	sessions *SessionManager
	log      *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, sessions *SessionManager, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, sessions: sessions, log: log}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "phone, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := validateBody(c, &in); err != nil {
		return err
	}
	sctx, err := h.uc.Login(c.Context(), in.Phone, in.Password)
	if err != nil {
		return respondError(c, h.log, err)
	}
	token, err := h.sessions.Establish(c, sctx)
	if err != nil {
		return respondError(c, h.log, err)
	}
	h.log.Info().Str("user_id", sctx.UserID).Str("role", sctx.Role).Msg("login")
	return c.JSON(dto.LoginResponse{
		User: dto.UserResponse{
			ID:       sctx.UserID,
			Name:     sctx.Name,
			Phone:    sctx.Phone,
			Location: sctx.Location,
			Role:     sctx.Role,
		},
		CSRFToken: token,
		Message:   "sesión iniciada",
	})
}

// Register godoc
// @Summary      Registrar vendedor
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterSellerRequest  true  "name, phone, location, password, password_confirm"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterSellerRequest
	if err := validateBody(c, &in); err != nil {
		return err
	}
	user, err := h.uc.RegisterSeller(c.Context(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	h.log.Info().Str("user_id", user.ID).Msg("vendedor registrado")
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.Destroy(c); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "sesión cerrada"})
}

// Me godoc
// @Summary      Sesión actual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	sctx := CurrentContext(c)
	if !sctx.IsActive() {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
	}
	return c.JSON(dto.SessionResponse{
		UserID:    sctx.UserID,
		Name:      sctx.Name,
		Phone:     sctx.Phone,
		Location:  sctx.Location,
		Role:      sctx.Role,
		LoginTime: sctx.LoginTime,
	})
}

// CSRFToken godoc
// @Summary      Obtener token CSRF de la sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/csrf [get]
func (h *AuthHandler) CSRFToken(c *fiber.Ctx) error {
	token, err := h.sessions.EnsureCSRFToken(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"csrf_token": token})
}
