package models

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// MachineType is a category of farm machinery (e.g., "Tractor", "Baler").
type MachineType struct {
	ID          int64
	Name        string
	Description sql.NullString
	CreatedAt   time.Time
}

// MachineTypeInput holds the fields needed to insert a machine type.
type MachineTypeInput struct {
	Name        string
	Description string
}

// EnsureMachineTypes inserts every machine type that does not exist yet,
// matching by name case-insensitively. Existing rows are left untouched.
// It returns the number of rows actually inserted. All inserts share one
// transaction.
func EnsureMachineTypes(ctx context.Context, db *sql.DB, types []MachineTypeInput) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("models: ensure machine types begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO machine_types (name, description) VALUES (?, ?)
		 ON CONFLICT(name) DO NOTHING`,
	)
	if err != nil {
		return 0, fmt.Errorf("models: ensure machine types prepare: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, mt := range types {
		var descVal sql.NullString
		if mt.Description != "" {
			descVal = sql.NullString{String: mt.Description, Valid: true}
		}
		result, err := stmt.ExecContext(ctx, mt.Name, descVal)
		if err != nil {
			return 0, fmt.Errorf("models: ensure machine type %q: %w", mt.Name, err)
		}
		rows, _ := result.RowsAffected()
		inserted += int(rows)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("models: ensure machine types commit: %w", err)
	}
	return inserted, nil
}

// ListMachineTypes returns all machine types ordered by name.
func ListMachineTypes(ctx context.Context, db *sql.DB) ([]MachineType, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, description, created_at
		 FROM machine_types ORDER BY name COLLATE NOCASE`,
	)
	if err != nil {
		return nil, fmt.Errorf("models: list machine types: %w", err)
	}
	defer rows.Close()

	var items []MachineType
	for rows.Next() {
		var mt MachineType
		if err := rows.Scan(&mt.ID, &mt.Name, &mt.Description, &mt.CreatedAt); err != nil {
			return nil, fmt.Errorf("models: scan machine type: %w", err)
		}
		items = append(items, mt)
	}
	return items, rows.Err()
}
