package dto

import (
	"time"

	"github.com/jhoicas/sweetshop-api/internal/domain/entity"
)

// RegisterRequest entrada para registro (password en texto, se hashea en la entidad).
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse salida de un usuario (sin password hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthData payload de register/login: token + usuario.
type AuthData struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ToUserResponse proyecta la entidad a DTO, excluyendo el hash.
func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
