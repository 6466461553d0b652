package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/cafetero-api/internal/application/auth"
	"github.com/jhoicas/cafetero-api/internal/application/dto"
	"github.com/jhoicas/cafetero-api/pkg/config"
)

// Llaves individuales dentro de la sesión. La identidad se guarda campo por
// campo, no como un blob serializado.
const (
	keyUserID       = "user_id"
	keyUserName     = "user_name"
	keyUserPhone    = "user_phone"
	keyUserLocation = "user_location"
	keyUserRole     = "user_role"
	keyLoginTime    = "login_time"
)

// LocalSession llave de c.Locals donde LoadSession deja el SessionContext.
const LocalSession = "session_ctx"

// SessionManager administra la sesión de cookie: alta en login (con
// regeneración de ID), lectura por request con vencimiento del lado del
// servidor, y destrucción en logout.
type SessionManager struct {
	store      *session.Store
	lifetime   time.Duration
	csrfMaxAge time.Duration
}

// NewSessionManager construye el manejador de sesiones. storage nil usa el
// almacenamiento en memoria de Fiber.
func NewSessionManager(cfg config.SessionConfig, storage fiber.Storage) *SessionManager {
	lifetime := cfg.Lifetime
	if lifetime <= 0 {
		lifetime = auth.DefaultSessionLifetime
	}
	csrfMaxAge := cfg.CSRFMaxAge
	if csrfMaxAge <= 0 {
		csrfMaxAge = lifetime
	}
	store := session.New(session.Config{
		KeyLookup:      "cookie:" + cfg.CookieName,
		Storage:        storage,
		Expiration:     lifetime,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	return &SessionManager{store: store, lifetime: lifetime, csrfMaxAge: csrfMaxAge}
}

// Establish inicia sesión para el contexto dado: regenera el ID de sesión
// (contra fijación), guarda la identidad llave por llave y emite un token
// CSRF nuevo. Devuelve el token.
func (m *SessionManager) Establish(c *fiber.Ctx, sctx *auth.SessionContext) (string, error) {
	sess, err := m.store.Get(c)
	if err != nil {
		return "", err
	}
	if err := sess.Regenerate(); err != nil {
		return "", err
	}
	sess.Set(keyUserID, sctx.UserID)
	sess.Set(keyUserName, sctx.Name)
	sess.Set(keyUserPhone, sctx.Phone)
	sess.Set(keyUserLocation, sctx.Location)
	sess.Set(keyUserRole, sctx.Role)
	sess.Set(keyLoginTime, sctx.LoginTime.Unix())

	token, err := issueCSRFToken(sess)
	if err != nil {
		return "", err
	}
	return token, sess.Save()
}

// Destroy cierra la sesión actual (logout).
func (m *SessionManager) Destroy(c *fiber.Ctx) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// Current lee el contexto de sesión del request. Una sesión vencida se
// destruye aquí mismo y se reporta como invitado: el vencimiento se decide
// siempre del lado del servidor, contra login_time.
func (m *SessionManager) Current(c *fiber.Ctx) (auth.SessionContext, error) {
	sess, err := m.store.Get(c)
	if err != nil {
		return auth.SessionContext{}, err
	}
	sctx := contextFromSession(sess)
	if sctx.IsExpired(time.Now(), m.lifetime) {
		if err := sess.Destroy(); err != nil {
			return auth.SessionContext{}, err
		}
		return auth.SessionContext{}, nil
	}
	return sctx, nil
}

func contextFromSession(sess *session.Session) auth.SessionContext {
	id, _ := sess.Get(keyUserID).(string)
	if id == "" {
		return auth.SessionContext{}
	}
	name, _ := sess.Get(keyUserName).(string)
	phone, _ := sess.Get(keyUserPhone).(string)
	location, _ := sess.Get(keyUserLocation).(string)
	role, _ := sess.Get(keyUserRole).(string)
	loginUnix, _ := sess.Get(keyLoginTime).(int64)
	return auth.SessionContext{
		UserID:    id,
		Name:      name,
		Phone:     phone,
		Location:  location,
		Role:      role,
		LoginTime: time.Unix(loginUnix, 0),
	}
}

// LoadSession middleware que resuelve el SessionContext una vez por request
// y lo deja en c.Locals. Corre antes que cualquier guardia de rol.
func (m *SessionManager) LoadSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sctx, err := m.Current(c)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo leer la sesión"})
		}
		c.Locals(LocalSession, sctx)
		return c.Next()
	}
}

// CurrentContext devuelve el SessionContext dejado por LoadSession.
func CurrentContext(c *fiber.Ctx) auth.SessionContext {
	v := c.Locals(LocalSession)
	if v == nil {
		return auth.SessionContext{}
	}
	sctx, _ := v.(auth.SessionContext)
	return sctx
}

// RequireRole exige sesión activa con el rol dado: 401 sin sesión (o sesión
// vencida), 403 con sesión de otro rol.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sctx := CurrentContext(c)
		if !sctx.IsActive() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		}
		if !sctx.HasRole(role) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol insuficiente"})
		}
		return c.Next()
	}
}
