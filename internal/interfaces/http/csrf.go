package http

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/cafetero-api/internal/application/dto"
)

// Llaves del token CSRF dentro de la sesión y canales por los que el cliente
// lo presenta.
const (
	keyCSRFToken    = "csrf_token"
	keyCSRFIssuedAt = "csrf_issued_at"

	headerCSRF = "X-CSRF-Token"
	formCSRF   = "csrf_token"
)

// issueCSRFToken genera un token nuevo (32 bytes aleatorios en hex) y lo
// guarda en la sesión con su hora de emisión. No hace Save.
func issueCSRFToken(sess *session.Session) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)
	sess.Set(keyCSRFToken, token)
	sess.Set(keyCSRFIssuedAt, time.Now().Unix())
	return token, nil
}

// EnsureCSRFToken devuelve el token CSRF de la sesión, reutilizando el
// vigente si existe. Requests concurrentes convergen así en un mismo token;
// solo se emite uno nuevo cuando no hay o ya venció.
func (m *SessionManager) EnsureCSRFToken(c *fiber.Ctx) (string, error) {
	sess, err := m.store.Get(c)
	if err != nil {
		return "", err
	}
	token, _ := sess.Get(keyCSRFToken).(string)
	issuedUnix, _ := sess.Get(keyCSRFIssuedAt).(int64)
	if token != "" && time.Since(time.Unix(issuedUnix, 0)) <= m.csrfMaxAge {
		return token, nil
	}
	token, err = issueCSRFToken(sess)
	if err != nil {
		return "", err
	}
	return token, sess.Save()
}

// RequireCSRF middleware para mutaciones: el token presentado (header
// X-CSRF-Token o campo de formulario csrf_token) debe coincidir con el de la
// sesión, en comparación de tiempo constante, y estar dentro de su vigencia.
func (m *SessionManager) RequireCSRF() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := m.store.Get(c)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo leer la sesión"})
		}
		stored, _ := sess.Get(keyCSRFToken).(string)
		issuedUnix, _ := sess.Get(keyCSRFIssuedAt).(int64)

		presented := c.Get(headerCSRF)
		if presented == "" {
			presented = c.FormValue(formCSRF)
		}

		valid := stored != "" && presented != "" &&
			time.Since(time.Unix(issuedUnix, 0)) <= m.csrfMaxAge &&
			subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
		if !valid {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "INVALID_REQUEST", Message: "token CSRF inválido o vencido"})
		}
		return c.Next()
	}
}
