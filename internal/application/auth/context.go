package auth

import "time"

// DefaultSessionLifetime vigencia de la sesión desde el login.
const DefaultSessionLifetime = time.Hour

// SessionContext es el valor de sesión que se crea al inicio del request y se
// pasa explícitamente a cada operación. Nunca se lee de estado global dentro
// de la lógica de negocio.
type SessionContext struct {
	UserID    string
	Name      string
	Phone     string
	Location  string
	Role      string
	LoginTime time.Time
}

// IsActive indica si el contexto corresponde a una sesión iniciada.
func (c SessionContext) IsActive() bool {
	return c.UserID != ""
}

// IsExpired indica si la sesión superó su vigencia. Un lifetime <= 0 usa
// DefaultSessionLifetime.
func (c SessionContext) IsExpired(now time.Time, lifetime time.Duration) bool {
	if !c.IsActive() {
		return false
	}
	if lifetime <= 0 {
		lifetime = DefaultSessionLifetime
	}
	return now.Sub(c.LoginTime) > lifetime
}

// HasRole compara el rol del contexto.
func (c SessionContext) HasRole(role string) bool {
	return c.IsActive() && c.Role == role
}
