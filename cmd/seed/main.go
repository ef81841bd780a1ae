// seed puebla la base con un usuario admin y un catálogo de ejemplo para
// desarrollo local.
//
// Uso: go run ./cmd/seed
// Variables: las mismas de la API (DATABASE_URL o DB_*), más opcionalmente
// SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD.
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sweetshop-api/internal/domain/entity"
	"github.com/jhoicas/sweetshop-api/internal/infrastructure/postgres"
	"github.com/jhoicas/sweetshop-api/pkg/config"
	"github.com/jhoicas/sweetshop-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(cfg.DB); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	sweetRepo := postgres.NewSweetRepository(pool)

	adminEmail := envOr("SEED_ADMIN_EMAIL", "admin@sweetshop.local")
	adminPassword := envOr("SEED_ADMIN_PASSWORD", "admin12345")

	existing, err := userRepo.FindByEmail(adminEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar admin")
	}
	if existing == nil {
		now := time.Now()
		admin := &entity.User{
			ID:        uuid.New().String(),
			Username:  "admin",
			Email:     adminEmail,
			Role:      entity.RoleAdmin,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := admin.SetPassword(adminPassword); err != nil {
			log.Fatal().Err(err).Msg("hashear password del admin")
		}
		if err := userRepo.Create(admin); err != nil {
			log.Fatal().Err(err).Msg("crear admin")
		}
		log.Info().Str("email", adminEmail).Msg("admin creado")
	} else {
		log.Info().Str("email", adminEmail).Msg("admin ya existe, no se toca")
	}

	type item struct {
		name, category, description string
		price                       string
		quantity                    int
	}
	catalogue := []item{
		{"Chocolate Bar", "chocolate", "Barra de chocolate con leche", "2.99", 100},
		{"Dark Truffle", "chocolate", "Trufa de chocolate amargo 70%", "4.50", 40},
		{"Gummy Bears", "gummy bears", "Ositos de goma surtidos", "1.75", 250},
		{"Sour Worms", "gummy", "Gusanos ácidos", "2.10", 180},
		{"Caramel Fudge", "caramel", "Fudge de caramelo artesanal", "3.25", 60},
		{"Lollipop Mix", "hard candy", "Paletas de sabores surtidos", "0.99", 500},
	}

	for _, it := range catalogue {
		now := time.Now()
		sweet := &entity.Sweet{
			ID:          uuid.New().String(),
			Name:        it.name,
			Category:    it.category,
			Price:       decimal.RequireFromString(it.price),
			Quantity:    it.quantity,
			Description: it.description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := sweetRepo.Create(sweet); err != nil {
			log.Fatal().Err(err).Str("sweet", it.name).Msg("crear dulce")
		}
	}
	log.Info().Int("sweets", len(catalogue)).Msg("catálogo de ejemplo creado")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
