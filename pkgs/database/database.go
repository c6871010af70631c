package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////////////

// ConnectDatabase opens (or creates) the sqlite credential database
func ConnectDatabase(path string) (*sqlx.DB, error) {
	logger := log.WithFields(log.Fields{
		"caller": "ConnectDatabase",
		"path":   path,
	})

	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&busy_timeout=2147483647", path)
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
	}

	if err := CreateTables(db); err != nil {
		db.Close()
		return nil, err
	}

	logger.Debugln("connected to sqlite database")
	return db, nil
}

// ConnectPostgres connects to a PostgreSQL credential database
func ConnectPostgres(host, port, user, password, dbname string) (*sqlx.DB, error) {
	logger := log.WithFields(log.Fields{
		"caller": "ConnectPostgres",
		"host":   host,
		"port":   port,
		"dbname": dbname,
	})

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := CreateTables(db); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("connected to PostgreSQL database")
	return db, nil
}

////////////////////////////////////////////////////////////////////////////////

// CreateTables creates the schema; the statement is portable across sqlite
// and postgres
func CreateTables(db *sqlx.DB) error {
	credentialsTable := `
	CREATE TABLE IF NOT EXISTS credentials (
		name VARCHAR(64) PRIMARY KEY,
		token TEXT NOT NULL,
		updated_at TIMESTAMP
	);
	`

	if _, err := db.Exec(credentialsTable); err != nil {
		return fmt.Errorf("failed to create credentials table: %w", err)
	}
	return nil
}
