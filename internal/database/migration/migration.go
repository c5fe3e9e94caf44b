package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"huntapi/internal/database"
)

type migrationStep struct {
	Name string
	SQL  string
}

// Site-keyed tables are shared between dialects; only the auto-increment
// key syntax differs.
const (
	createSites = `CREATE TABLE IF NOT EXISTS sites (
  site_id          VARCHAR(63)  PRIMARY KEY,
  full_name        VARCHAR(127) NOT NULL,
  abbreviated_name VARCHAR(127) NOT NULL,
  site_type        VARCHAR(63)  NOT NULL
);`
	createDocuments = `CREATE TABLE IF NOT EXISTS documents (
  site_id       VARCHAR(63)  PRIMARY KEY REFERENCES sites (site_id),
  site_markdown TEXT         NOT NULL,
  url           VARCHAR(255) NOT NULL
);`
	createGeography = `CREATE TABLE IF NOT EXISTS geography (
  site_id        VARCHAR(63)      PRIMARY KEY REFERENCES sites (site_id),
  region         VARCHAR(63)      NOT NULL,
  county         VARCHAR(63)      NOT NULL,
  huntable_acres INTEGER          NOT NULL,
  address        VARCHAR(255)     NOT NULL,
  latitude       DOUBLE PRECISION NOT NULL,
  longitude      DOUBLE PRECISION NOT NULL
);`
	createIndexHuntableSite    = `CREATE INDEX IF NOT EXISTS idx_huntable_species_site_id ON huntable_species (site_id);`
	createIndexHuntableSpecies = `CREATE INDEX IF NOT EXISTS idx_huntable_species_species ON huntable_species (species);`
	createIndexHarvestSite     = `CREATE INDEX IF NOT EXISTS idx_harvest_site_id ON harvest (site_id);`
	createIndexHarvestCounty   = `CREATE INDEX IF NOT EXISTS idx_harvest_is_county ON harvest (is_county);`
)

var sqliteSteps = []migrationStep{
	{Name: "create_table_sites", SQL: createSites},
	{
		Name: "create_table_huntable_species",
		SQL: `CREATE TABLE IF NOT EXISTS huntable_species (
  record_id   INTEGER      PRIMARY KEY AUTOINCREMENT,
  site_id     VARCHAR(63)  NOT NULL REFERENCES sites (site_id),
  species     VARCHAR(127) NOT NULL,
  season      VARCHAR(127) NOT NULL DEFAULT 'Statewide',
  stipulation VARCHAR(127) NOT NULL DEFAULT ''
);`,
	},
	{Name: "create_table_documents", SQL: createDocuments},
	{Name: "create_table_geography", SQL: createGeography},
	{
		Name: "create_table_harvest",
		SQL: `CREATE TABLE IF NOT EXISTS harvest (
  record_id     INTEGER      PRIMARY KEY AUTOINCREMENT,
  site_id       VARCHAR(63)  NOT NULL REFERENCES sites (site_id),
  site          VARCHAR(63)  NOT NULL,
  is_county     BOOLEAN      NOT NULL DEFAULT FALSE,
  year          INTEGER      NOT NULL,
  species       VARCHAR(127) NOT NULL,
  season        VARCHAR(127) NOT NULL,
  subcategory   TEXT         NOT NULL,
  harvest_count INTEGER
);`,
	},
	{Name: "create_index_huntable_species_site_id", SQL: createIndexHuntableSite},
	{Name: "create_index_huntable_species_species", SQL: createIndexHuntableSpecies},
	{Name: "create_index_harvest_site_id", SQL: createIndexHarvestSite},
	{Name: "create_index_harvest_is_county", SQL: createIndexHarvestCounty},
}

var postgresSteps = []migrationStep{
	{Name: "create_table_sites", SQL: createSites},
	{
		Name: "create_table_huntable_species",
		SQL: `CREATE TABLE IF NOT EXISTS huntable_species (
  record_id   SERIAL       PRIMARY KEY,
  site_id     VARCHAR(63)  NOT NULL REFERENCES sites (site_id),
  species     VARCHAR(127) NOT NULL,
  season      VARCHAR(127) NOT NULL DEFAULT 'Statewide',
  stipulation VARCHAR(127) NOT NULL DEFAULT ''
);`,
	},
	{Name: "create_table_documents", SQL: createDocuments},
	{Name: "create_table_geography", SQL: createGeography},
	{
		Name: "create_table_harvest",
		SQL: `CREATE TABLE IF NOT EXISTS harvest (
  record_id     SERIAL       PRIMARY KEY,
  site_id       VARCHAR(63)  NOT NULL REFERENCES sites (site_id),
  site          VARCHAR(63)  NOT NULL,
  is_county     BOOLEAN      NOT NULL DEFAULT FALSE,
  year          INTEGER      NOT NULL,
  species       VARCHAR(127) NOT NULL,
  season        VARCHAR(127) NOT NULL,
  subcategory   TEXT         NOT NULL,
  harvest_count INTEGER
);`,
	},
	{Name: "create_index_huntable_species_site_id", SQL: createIndexHuntableSite},
	{Name: "create_index_huntable_species_species", SQL: createIndexHuntableSpecies},
	{Name: "create_index_harvest_site_id", SQL: createIndexHarvestSite},
	{Name: "create_index_harvest_is_county", SQL: createIndexHarvestCounty},
}

func stepsFor(d database.Dialect) []migrationStep {
	if d == database.Postgres {
		return postgresSteps
	}
	return sqliteSteps
}

// sentinelQuery reports whether the harvest table, created last, exists.
func sentinelQuery(d database.Dialect) string {
	if d == database.Postgres {
		return "SELECT to_regclass('public.harvest') IS NOT NULL"
	}
	return "SELECT COUNT(*) > 0 FROM sqlite_master WHERE type = 'table' AND name = 'harvest'"
}

// EnsureMigrated checks if the schema exists and creates it if it doesn't.
// It only issues DDL; rows are loaded by external ingestion.
func EnsureMigrated(ctx context.Context, db *sql.DB, d database.Dialect, log zerolog.Logger) error {
	start := time.Now()
	log = log.With().Str("component", "database").Str("dialect", string(d)).Logger()

	log.Info().Str("event", "db_migration_check").Msg("checking schema")

	var exists bool
	if err := db.QueryRowContext(ctx, sentinelQuery(d)).Scan(&exists); err != nil {
		log.Error().Err(err).
			Str("event", "db_migration_failed").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info().
			Str("event", "db_migration_skip").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("schema already exists, skipping migration")
		return nil
	}

	for _, step := range stepsFor(d) {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().Err(err).
				Str("event", "db_migration_failed").
				Str("migration_step", step.Name).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Msg("migration step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Debug().
			Str("event", "db_migration_step").
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Msg("migration step applied")
	}

	log.Info().
		Str("event", "db_migration_success").
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("schema created")

	return nil
}
