package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"puredesign/internal/models"
)

// Seed populates the database with initial development data: a default
// admin user and the singleton content document with the built-in
// trilingual defaults. Both steps are skipped when data already exists.
// The admin will be prompted to set up 2FA on first login
// (totp_enabled = false).
func Seed(db *sql.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	return seedContent(db)
}

func seedAdmin(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}
	if count > 0 {
		slog.Info("users already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, display_name, totp_enabled)
		VALUES ($1, $2, $3, $4)
	`, "admin@daniyar.design", string(hash), "Daniyar", false)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	slog.Info("database seeded with default admin user",
		"email", "admin@daniyar.design",
		"password", "admin",
	)
	return nil
}

func seedContent(db *sql.DB) error {
	var count int
	err := db.QueryRow(
		"SELECT COUNT(*) FROM documents WHERE collection = 'content' AND id = 'main'",
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("seed check content: %w", err)
	}
	if count > 0 {
		slog.Info("content document already seeded, skipping")
		return nil
	}

	data, err := json.Marshal(models.DefaultSiteContent())
	if err != nil {
		return fmt.Errorf("seed marshal content: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO documents (collection, id, data)
		VALUES ('content', 'main', $1)
	`, data)
	if err != nil {
		return fmt.Errorf("seed insert content: %w", err)
	}

	slog.Info("database seeded with default content document")
	return nil
}
