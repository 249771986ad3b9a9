// migrate aplica o revierte las migraciones embebidas del esquema.
//
// Uso: go run ./cmd/migrate [up|down|version]
// La conexión se toma de DATABASE_URL o de DB_* (igual que cmd/api).
package main

import (
	"os"

	"github.com/jhoicas/Proyectos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Proyectos-api/pkg/config"
	"github.com/jhoicas/Proyectos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}).Named("migrate")

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	dsn := cfg.DB.ConnectionString()

	switch cmd {
	case "up":
		if err := postgres.Migrate(dsn); err != nil {
			log.Fatal().Err(err).Msg("migrate up")
		}
	case "down":
		if err := postgres.MigrateDown(dsn); err != nil {
			log.Fatal().Err(err).Msg("migrate down")
		}
	case "version":
	default:
		log.Fatal().Str("cmd", cmd).Msg("comando desconocido (up|down|version)")
	}

	version, dirty, err := postgres.MigrationVersion(dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("leer versión")
	}
	log.Info().Str("cmd", cmd).Uint("version", version).Bool("dirty", dirty).Msg("listo")
}
