package dto

// LoginRequest credenciales de acceso al dashboard.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest alta de usuario. El rol no viaja en el request: el alta
// pública siempre crea auditores.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// AuthResponse token emitido tras login/registro.
type AuthResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}
