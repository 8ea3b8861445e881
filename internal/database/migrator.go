package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	migrationsPath = "db/migrations"
	seedsPath      = "db/seeds"
)

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second
)

// MigrationRunner applies SQL migrations and optional seed data against an
// open database/sql connection.
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
	seedsPath      string
}

// NewMigrationRunner creates a runner using the default db/ layout
func NewMigrationRunner(db *sql.DB) *MigrationRunner {
	return &MigrationRunner{
		db:             db,
		migrationsPath: migrationsPath,
		seedsPath:      seedsPath,
	}
}

// WaitForDatabase pings until the database answers or the retry budget runs out
func (mr *MigrationRunner) WaitForDatabase() error {
	log.Println("Waiting for database...")

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := mr.db.Ping(); err == nil {
			log.Println("Database is reachable")
			return nil
		} else {
			log.Printf("Database not reachable yet (attempt %d/%d): %v", attempt, maxRetries, err)
		}
		time.Sleep(retryInterval)
	}

	return fmt.Errorf("database not ready after %d attempts", maxRetries)
}

func (mr *MigrationRunner) newMigrateInstance() (*migrate.Migrate, error) {
	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve migrations path: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", absPath), "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

// RunMigrations applies every pending migration. A dirty version is forced
// back to its recorded number first so a crashed run does not wedge the
// schema forever.
func (mr *MigrationRunner) RunMigrations() error {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		log.Printf("No migrations directory at %s, skipping", mr.migrationsPath)
		return nil
	}

	m, err := mr.newMigrateInstance()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	if dirty {
		log.Printf("Schema is dirty at version %d, forcing version before retry", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	log.Printf("Applying migrations from version %d", version)

	switch err := m.Up(); err {
	case nil:
		newVersion, _, verr := m.Version()
		if verr != nil {
			return fmt.Errorf("failed to read new migration version: %w", verr)
		}
		log.Printf("Migrations applied, now at version %d", newVersion)
	case migrate.ErrNoChange:
		log.Println("Schema already up to date")
	default:
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// LoadSeeds executes every *.sql file in the seeds directory when
// SEED_DATABASE=true. Individual seed failures are logged and skipped so a
// duplicate insert does not abort the rest.
func (mr *MigrationRunner) LoadSeeds() error {
	if os.Getenv("SEED_DATABASE") != "true" {
		log.Println("Seeding disabled (SEED_DATABASE != true)")
		return nil
	}

	if _, err := os.Stat(mr.seedsPath); os.IsNotExist(err) {
		log.Printf("No seeds directory at %s, skipping", mr.seedsPath)
		return nil
	}

	files, err := filepath.Glob(filepath.Join(mr.seedsPath, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to list seed files: %w", err)
	}
	if len(files) == 0 {
		log.Println("No seed files found")
		return nil
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read seed file %s: %w", file, err)
		}

		if _, err := mr.db.Exec(string(content)); err != nil {
			log.Printf("Warning: seed file %s failed: %v", filepath.Base(file), err)
			continue
		}
		log.Printf("Seed file applied: %s", filepath.Base(file))
	}

	return nil
}

// GetMigrationStatus reports the schema's current version and dirty flag
func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return 0, false, fmt.Errorf("migrations directory not found")
	}

	m, err := mr.newMigrateInstance()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

// RunMigrationsIfEnabled runs the full migrate-and-seed sequence when
// AUTO_MIGRATE=true, as part of application startup.
func RunMigrationsIfEnabled(db *sql.DB) error {
	if os.Getenv("AUTO_MIGRATE") != "true" {
		log.Println("Auto-migration disabled (AUTO_MIGRATE != true)")
		return nil
	}

	runner := NewMigrationRunner(db)

	if err := runner.WaitForDatabase(); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}
	if err := runner.RunMigrations(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}
	if err := runner.LoadSeeds(); err != nil {
		log.Printf("Warning: seed data loading failed: %v", err)
	}

	if version, dirty, err := runner.GetMigrationStatus(); err != nil {
		log.Printf("Warning: failed to read migration status: %v", err)
	} else {
		log.Printf("Migration status: version=%d dirty=%v", version, dirty)
	}

	return nil
}
