package dto

import "time"

// LoginRequest entrada para login: teléfono + password.
type LoginRequest struct {
	Phone    string `json:"phone" validate:"required,numeric,min=10,max=15"`
	Password string `json:"password" validate:"required"`
}

// RegisterSellerRequest entrada de auto-registro de vendedores.
// El password se hashea en el caso de uso; la confirmación debe coincidir.
type RegisterSellerRequest struct {
	Name            string `json:"name" validate:"required,min=3,max=200"`
	Phone           string `json:"phone" validate:"required,numeric,min=10,max=15"`
	Location        string `json:"location" validate:"required,min=3,max=200"`
	Password        string `json:"password" validate:"required,min=6"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
}

// UserResponse salida de una cuenta (sin hash de password).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse salida de login: la cuenta más el token CSRF de la sesión.
type LoginResponse struct {
	User      UserResponse `json:"user"`
	CSRFToken string       `json:"csrf_token"`
	Message   string       `json:"message"`
}

// SessionResponse estado de la sesión actual (GET /api/auth/me).
type SessionResponse struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	Role      string    `json:"role"`
	LoginTime time.Time `json:"login_time"`
}
