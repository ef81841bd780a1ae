package repository

import "github.com/jhoicas/sweetshop-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* retornan (nil, nil) cuando no existe el registro.
type UserRepository interface {
	Create(user *entity.User) error
	FindByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
}
