package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sweetshop-api/internal/application/dto"
)

// internalError responde 500 con el envelope estándar. El detalle del error
// solo se expone en development.
func internalError(c *fiber.Ctx, dev bool, err error) error {
	resp := dto.Fail("Something went wrong!")
	if dev && err != nil {
		resp.Error = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(resp)
}

// ErrorHandler construye el error handler global de Fiber: errores de fiber
// conservan su código; todo lo demás es 500 con detalle solo en development.
func ErrorHandler(dev bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(dto.Fail(fiberErr.Message))
		}
		return internalError(c, dev, err)
	}
}

// NotFoundHandler responde 404 con el envelope estándar para rutas no registradas.
// Debe montarse al final, después de todas las rutas.
func NotFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Route not found"))
}
