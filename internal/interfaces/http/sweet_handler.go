package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sweetshop-api/internal/application/dto"
	"github.com/jhoicas/sweetshop-api/internal/application/inventory"
	"github.com/jhoicas/sweetshop-api/internal/application/usecase"
	"github.com/jhoicas/sweetshop-api/internal/domain"
	"github.com/jhoicas/sweetshop-api/internal/domain/repository"
)

// SweetHandler maneja las peticiones HTTP del catálogo de dulces.
type SweetHandler struct {
	uc     *usecase.SweetUseCase
	stock  *inventory.StockUseCase
	report *usecase.ReportUseCase
	dev    bool
}

// NewSweetHandler construye el handler.
func NewSweetHandler(uc *usecase.SweetUseCase, stock *inventory.StockUseCase, report *usecase.ReportUseCase, dev bool) *SweetHandler {
	return &SweetHandler{uc: uc, stock: stock, report: report, dev: dev}
}

// Create godoc
// @Summary      Crear dulce
// @Tags         sweets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSweetRequest  true  "Datos del dulce"
// @Success      201   {object}  dto.DataResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/sweets [post]
func (h *SweetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSweetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Please provide all required fields"))
	}
	if in.Name == "" || in.Category == "" || in.Price == nil || in.Quantity == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Please provide all required fields"))
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid sweet data"))
		}
		return internalError(c, h.dev, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(dto.SweetData{Sweet: *out}))
}

// List godoc
// @Summary      Listar dulces
// @Tags         sweets
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DataResponse
// @Router       /api/sweets [get]
func (h *SweetHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return internalError(c, h.dev, err)
	}
	return c.JSON(dto.OKCount(len(out.Sweets), *out))
}

// Search godoc
// @Summary      Buscar dulces
// @Tags         sweets
// @Security     Bearer
// @Produce      json
// @Param        name      query  string  false  "Substring del nombre (case-insensitive)"
// @Param        category  query  string  false  "Substring de la categoría (case-insensitive)"
// @Param        minPrice  query  number  false  "Precio mínimo inclusivo"
// @Param        maxPrice  query  number  false  "Precio máximo inclusivo"
// @Success      200  {object}  dto.DataResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sweets/search [get]
func (h *SweetHandler) Search(c *fiber.Ctx) error {
	filter := repository.SweetFilter{
		Name:     c.Query("name"),
		Category: c.Query("category"),
	}
	var err error
	if filter.MinPrice, err = parsePriceQuery(c, "minPrice"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid price filter"))
	}
	if filter.MaxPrice, err = parsePriceQuery(c, "maxPrice"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid price filter"))
	}

	out, err := h.uc.Search(filter)
	if err != nil {
		return internalError(c, h.dev, err)
	}
	return c.JSON(dto.OKCount(len(out.Sweets), *out))
}

// Report godoc
// @Summary      Reporte de inventario en PDF
// @Tags         sweets
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/sweets/report [get]
func (h *SweetHandler) Report(c *fiber.Ctx) error {
	pdf, err := h.report.StockReport(c.Context())
	if err != nil {
		return internalError(c, h.dev, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock-report.pdf"`)
	return c.Send(pdf)
}

// GetByID godoc
// @Summary      Obtener dulce por ID
// @Tags         sweets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del dulce"
// @Success      200  {object}  dto.DataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sweets/{id} [get]
func (h *SweetHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Sweet not found"))
		}
		return internalError(c, h.dev, err)
	}
	return c.JSON(dto.OK(dto.SweetData{Sweet: *out}))
}

// Update godoc
// @Summary      Actualizar dulce
// @Tags         sweets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del dulce"
// @Param        body  body  dto.UpdateSweetRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.DataResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sweets/{id} [put]
func (h *SweetHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSweetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Sweet not found"))
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid sweet data"))
		}
		return internalError(c, h.dev, err)
	}
	return c.JSON(dto.OK(dto.SweetData{Sweet: *out}))
}

// Delete godoc
// @Summary      Eliminar dulce
// @Tags         sweets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del dulce"
// @Success      200  {object}  dto.DataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sweets/{id} [delete]
func (h *SweetHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Sweet not found"))
		}
		return internalError(c, h.dev, err)
	}
	return c.JSON(dto.OKMessage("Sweet deleted successfully"))
}

// Purchase godoc
// @Summary      Comprar dulce
// @Tags         sweets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del dulce"
// @Param        body  body  dto.QuantityRequest  true  "Cantidad a comprar"
// @Success      200   {object}  dto.DataResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sweets/{id}/purchase [post]
func (h *SweetHandler) Purchase(c *fiber.Ctx) error {
	var in dto.QuantityRequest
	if err := c.BodyParser(&in); err != nil || in.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Please provide a valid quantity"))
	}
	out, err := h.stock.Purchase(c.Context(), c.Params("id"), in.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Sweet not found"))
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Insufficient quantity"))
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Please provide a valid quantity"))
		}
		return internalError(c, h.dev, err)
	}
	return c.JSON(dto.OK(dto.SweetData{Sweet: *out}))
}

// Restock godoc
// @Summary      Reabastecer dulce
// @Tags         sweets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del dulce"
// @Param        body  body  dto.QuantityRequest  true  "Cantidad a reabastecer"
// @Success      200   {object}  dto.DataResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/sweets/{id}/restock [post]
func (h *SweetHandler) Restock(c *fiber.Ctx) error {
	var in dto.QuantityRequest
	if err := c.BodyParser(&in); err != nil || in.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Please provide a valid quantity"))
	}
	out, err := h.stock.Restock(c.Context(), c.Params("id"), in.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Sweet not found"))
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Please provide a valid quantity"))
		}
		return internalError(c, h.dev, err)
	}
	return c.JSON(dto.OK(dto.SweetData{Sweet: *out}))
}

// parsePriceQuery lee un query param de precio como decimal; nil si está ausente.
func parsePriceQuery(c *fiber.Ctx, key string) (*decimal.Decimal, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
