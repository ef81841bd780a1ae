package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sweetshop-api/internal/application/dto"
	"github.com/jhoicas/sweetshop-api/internal/domain/entity"
	"github.com/jhoicas/sweetshop-api/internal/domain/repository"
	"github.com/jhoicas/sweetshop-api/pkg/jwt"
)

// LocalUser key del usuario autenticado en c.Locals.
const LocalUser = "current_user"

// AuthMiddleware valida el Bearer Token JWT, resuelve el usuario contra la DB
// y lo deja en c.Locals. Un token firmado cuyo usuario ya no existe también
// se rechaza con 401; así un usuario dado de baja pierde acceso aunque su
// token siga vigente.
func AuthMiddleware(jwtSecret string, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if authHeader == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Not authorized, no token"))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Not authorized, no token"))
		}

		userID, _, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Not authorized, token failed"))
		}

		user, err := users.FindByID(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Server error"))
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("User not found"))
		}

		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// RequireRole autoriza por rol. Debe usarse DESPUÉS de AuthMiddleware:
// lee el usuario ya resuelto del contexto y responde 403 si su rol no está
// en el conjunto permitido.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Not authorized, no token"))
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("Not authorized to access this route"))
	}
}

// CurrentUser devuelve el usuario del contexto (después del middleware de auth).
func CurrentUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
