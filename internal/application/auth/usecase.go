package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/sweetshop-api/internal/application/dto"
	"github.com/jhoicas/sweetshop-api/internal/domain"
	"github.com/jhoicas/sweetshop-api/internal/domain/entity"
	"github.com/jhoicas/sweetshop-api/internal/domain/repository"
	"github.com/jhoicas/sweetshop-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario con rol "user", hashea el password en la entidad
// y devuelve token + usuario. Retorna ErrDuplicate si el email o el username
// ya están registrados.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AuthData, error) {
	if existing, err := uc.userRepo.FindByEmail(in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if existing, err := uc.userRepo.FindByUsername(in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	user := &entity.User{
		ID:        uuid.New().String(),
		Username:  in.Username,
		Email:     in.Email,
		Role:      entity.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := user.SetPassword(in.Password); err != nil {
		return nil, err
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role.String(), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthData{Token: token, User: dto.ToUserResponse(user)}, nil
}

// Login verifica email/password y devuelve token + usuario.
// Email desconocido y password incorrecto retornan ambos ErrUnauthorized
// para no revelar cuál de los dos falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthData, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.ComparePassword(in.Password) {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role.String(), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthData{Token: token, User: dto.ToUserResponse(user)}, nil
}
