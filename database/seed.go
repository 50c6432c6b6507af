package database

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gorm.io/gorm"

	"convo-backend/models"
)

// Seed loads JSON fixture files from dir in dependency order. Each file
// holds an array of records for one entity; user passwords are stored as
// plaintext in the fixtures and hashed on insert. Missing files are
// skipped so a partial fixture set is usable.
func Seed(db *gorm.DB, dir string) error {
	if err := seedFile(db, dir, "user.json", func(raw json.RawMessage) error {
		var user models.User
		if err := json.Unmarshal(raw, &user); err != nil {
			return err
		}
		// json:"-" keeps the password out of responses, so fixtures carry
		// it under an explicit key.
		var withPassword struct {
			Password string `json:"password"`
		}
		if err := json.Unmarshal(raw, &withPassword); err != nil {
			return err
		}
		user.Password = withPassword.Password
		if err := user.HashPassword(); err != nil {
			return err
		}
		return db.Create(&user).Error
	}); err != nil {
		return err
	}

	if err := seedFile(db, dir, "conversation.json", func(raw json.RawMessage) error {
		var convo models.Conversation
		if err := json.Unmarshal(raw, &convo); err != nil {
			return err
		}
		return db.Create(&convo).Error
	}); err != nil {
		return err
	}

	return seedFile(db, dir, "message.json", func(raw json.RawMessage) error {
		var msg models.Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			return err
		}
		return db.Create(&msg).Error
	})
}

func seedFile(db *gorm.DB, dir, name string, insert func(json.RawMessage) error) error {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("seed file missing, skipping", "file", path)
			return nil
		}
		return err
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	for _, raw := range records {
		if err := insert(raw); err != nil {
			return fmt.Errorf("seed %s: %w", name, err)
		}
	}
	slog.Info("seeded fixtures", "file", name, "records", len(records))
	return nil
}
