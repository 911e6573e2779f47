package db

import (
	"database/sql"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

const (
	maxOpenConns = 50
	maxIdleConns = 10
	connMaxLife  = time.Minute * 15

	DefaultMigrationDir = "file://db/migration"
)

func MustMigrate(db *sql.DB, migrationDir string) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatal("failed to create migration driver", "err", err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationDir, "postgres", driver)
	if err != nil {
		log.Fatal("failed to read migrations", "dir", migrationDir, "err", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		log.Fatal("failed to read migration version", "err", err)
	}
	if dirty {
		log.Fatal("database is dirty", "version", version)
	}
	log.Info("current migration", "version", version)

	if err = m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return
		}
		log.Fatal("migration failed", "err", err)
	}
	log.Info("migration successful")
}

// MustConnectToDb opens the pool, checks it is reachable and brings
// the schema up to date.
func MustConnectToDb(psqlUrl, migrationDir string) *sql.DB {
	// Open may only validate its arguments without connecting
	db, err := sql.Open("postgres", psqlUrl)
	if err != nil {
		log.Fatal("failed to open database", "err", err)
	}

	if err := db.Ping(); err != nil {
		log.Fatal("failed to reach database", "err", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLife)

	MustMigrate(db, migrationDir)
	return db
}
