// Package repository provides persistence for the demo users API.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/briefbot/briefbot/internal/domain"
)

// UserRepository stores demo users in SQLite. The default DSN is ":memory:",
// which keeps the whole process memory-only and loses the rows on restart.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository opens the database, runs migrations, and seeds the demo
// rows.
func NewUserRepository(dsn string) (*UserRepository, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	repo := &UserRepository{db: db}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	if err := repo.seed(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed users: %w", err)
	}
	return repo, nil
}

func (r *UserRepository) migrate() error {
	_, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL
	)`)
	return err
}

// seed inserts the demo rows on first startup only.
func (r *UserRepository) seed() error {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err := r.db.Exec(`INSERT INTO users (name) VALUES ('Alice'), ('Bob')`)
	return err
}

// ListUsers returns all users in id order.
func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// CreateUser inserts a user and returns it with the assigned id.
func (r *UserRepository) CreateUser(ctx context.Context, name string) (*domain.User, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO users (name) VALUES (?)`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted id: %w", err)
	}
	return &domain.User{ID: id, Name: name}, nil
}

// Close closes the underlying database.
func (r *UserRepository) Close() error {
	return r.db.Close()
}
