// cmd/seedadmin crea o actualiza la cuenta del administrador. El admin no se
// registra por la API: se aprovisiona con esta herramienta.
//
// Uso:
//
//	ADMIN_PHONE=3001234567 ADMIN_PASSWORD=secreto go run ./cmd/seedadmin
package main

import (
	"context"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/cafetero-api/internal/domain/entity"
	"github.com/jhoicas/cafetero-api/internal/infrastructure/postgres"
	"github.com/jhoicas/cafetero-api/pkg/config"
	"github.com/jhoicas/cafetero-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	phone := os.Getenv("ADMIN_PHONE")
	password := os.Getenv("ADMIN_PASSWORD")
	if phone == "" || password == "" {
		log.Fatal().Msg("ADMIN_PHONE y ADMIN_PASSWORD son requeridos")
	}
	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Administrador"
	}
	location := os.Getenv("ADMIN_LOCATION")
	if location == "" {
		location = "Oficina central"
	}

	cost := cfg.Session.BcryptCost
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, name, phone, location, password_hash, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (phone) DO UPDATE
		SET password_hash = EXCLUDED.password_hash,
		    name = EXCLUDED.name,
		    location = EXCLUDED.location,
		    role = EXCLUDED.role`,
		uuid.New().String(), name, phone, location, string(hash), entity.RoleAdmin,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("crear/actualizar admin")
	}

	log.Info().Str("phone", phone).Msg("cuenta de administrador lista")
}
