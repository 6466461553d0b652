// cmd/migrate aplica los scripts SQL de migrations/ en orden, registrando
// cada uno en schema_migrations para no re-aplicarlo.
//
// Uso: go run ./cmd/migrate [dir]
// Por defecto lee ./migrations.
package main

import (
	"context"
	"os"
	"path/filepath"
	"sort"

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

	dir := "migrations"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		log.Fatal().Err(err).Msg("crear schema_migrations")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", dir).Msg("leer directorio de migraciones")
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	applied := 0
	for _, name := range files {
		var exists bool
		err := pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)`, name,
		).Scan(&exists)
		if err != nil {
			log.Fatal().Err(err).Str("migration", name).Msg("verificar migración")
		}
		if exists {
			continue
		}

		sqlBytes, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Fatal().Err(err).Str("migration", name).Msg("leer migración")
		}

		// Script + registro en una misma transacción.
		tx, err := pool.Begin(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("begin tx")
		}
		if _, err := tx.Exec(ctx, string(sqlBytes)); err != nil {
			_ = tx.Rollback(ctx)
			log.Fatal().Err(err).Str("migration", name).Msg("aplicar migración")
		}
		if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, name); err != nil {
			_ = tx.Rollback(ctx)
			log.Fatal().Err(err).Str("migration", name).Msg("registrar migración")
		}
		if err := tx.Commit(ctx); err != nil {
			log.Fatal().Err(err).Str("migration", name).Msg("commit migración")
		}

		log.Info().Str("migration", name).Msg("migración aplicada")
		applied++
	}

	log.Info().Int("applied", applied).Int("total", len(files)).Msg("migraciones al día")
}
