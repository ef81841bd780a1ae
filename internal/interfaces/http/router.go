package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sweetshop-api/internal/application/auth"
	"github.com/jhoicas/sweetshop-api/internal/application/inventory"
	"github.com/jhoicas/sweetshop-api/internal/application/usecase"
	"github.com/jhoicas/sweetshop-api/internal/domain/entity"
	"github.com/jhoicas/sweetshop-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	SweetUC     *usecase.SweetUseCase
	StockUC     *inventory.StockUseCase
	ReportUC    *usecase.ReportUseCase
	UserRepo    repository.UserRepository
	JWTSecret   string
	Development bool
}

// Router registra las rutas de la API.
// Orden de middlewares: autenticación primero (resuelve el usuario),
// autorización por rol después (lee ese usuario).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Development)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Sweets (protegido: requiere Bearer Token; escritura solo admin)
	protect := AuthMiddleware(deps.JWTSecret, deps.UserRepo)
	adminOnly := RequireRole(entity.RoleAdmin)

	sweets := api.Group("/sweets", protect)
	sweetHandler := NewSweetHandler(deps.SweetUC, deps.StockUC, deps.ReportUC, deps.Development)

	sweets.Post("/", adminOnly, sweetHandler.Create)
	sweets.Get("/", sweetHandler.List)
	sweets.Get("/search", sweetHandler.Search)
	sweets.Get("/report", adminOnly, sweetHandler.Report)
	sweets.Get("/:id", sweetHandler.GetByID)
	sweets.Put("/:id", adminOnly, sweetHandler.Update)
	sweets.Delete("/:id", adminOnly, sweetHandler.Delete)
	sweets.Post("/:id/purchase", sweetHandler.Purchase)
	sweets.Post("/:id/restock", adminOnly, sweetHandler.Restock)

	// Rutas no registradas: 404 con envelope estándar
	app.Use(NotFoundHandler)
}
