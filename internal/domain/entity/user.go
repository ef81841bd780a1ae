package entity

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role es el rol de un usuario. Se usa un tipo propio en lugar de strings
// sueltos para que las comprobaciones RBAC queden acotadas al enum.
type Role string

// Roles válidos para User.
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid indica si el rol es uno de los conocidos.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// User representa un usuario de la tienda. PasswordHash es bcrypt,
// nunca el password plano después de SetPassword.
type User struct {
	ID           string
	Username     string // único
	Email        string // único
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SetPassword hashea el password con bcrypt y lo guarda en PasswordHash.
// Es el único punto donde se hashea: un update que no toque el password
// no vuelve a pasar por aquí, así que el hash no se re-hashea.
func (u *User) SetPassword(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// ComparePassword devuelve true si el password plano corresponde al hash almacenado.
func (u *User) ComparePassword(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plaintext)) == nil
}
