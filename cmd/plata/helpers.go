package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arturoveja/plata/internal/storage"
	"github.com/spf13/viper"
)

// openStorage opens the configured categories database and brings its schema
// up to date. Callers own Close.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".config", "plata", "categories.db")
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}

	return store, nil
}
