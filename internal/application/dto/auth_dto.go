package dto

// LoginRequest credenciales de login (demo: cualquier par no vacío es válido).
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse usuario de la sesión.
type UserResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginResponse token JWT + usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
