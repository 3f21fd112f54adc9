package storage

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

type DB struct {
	connection *sql.DB
}

func NewDB(dataSourceName string) (*DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, err
	}

	// Connection pool tuning
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &DB{connection: db}, nil
}

// NewWithConn wraps an existing connection. Used by tests and the seeder.
func NewWithConn(conn *sql.DB) *DB {
	return &DB{connection: conn}
}

func (db *DB) Close() error {
	return db.connection.Close()
}

func (db *DB) Ping(ctx context.Context) error {
	return db.connection.PingContext(ctx)
}

// Conn returns the underlying database connection for advanced queries.
func (db *DB) Conn() *sql.DB {
	return db.connection
}
