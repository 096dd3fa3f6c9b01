package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrDuplicateMachine is returned when a machine's UUID or serial number is
// already taken.
var ErrDuplicateMachine = errors.New("duplicate machine")

// Machine statuses.
const (
	MachineActive      = "active"
	MachineMaintenance = "maintenance"
	MachineRetired     = "retired"
)

// MachineStatuses lists every valid machine status.
var MachineStatuses = []string{MachineActive, MachineMaintenance, MachineRetired}

// Machine is a single piece of farm machinery in the inventory.
type Machine struct {
	ID            int64
	UUID          string
	MachineTypeID int64
	TypeName      string // populated by joins
	Name          string
	Brand         string
	Model         string
	SerialNumber  string
	Year          int
	EngineHours   int
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MachineInput holds the fields needed to insert a machine.
type MachineInput struct {
	UUID          string
	MachineTypeID int64
	Name          string
	Brand         string
	Model         string
	SerialNumber  string
	Year          int
	EngineHours   int
	Status        string
}

// CreateMachines inserts all inputs in a single transaction. Either every
// machine is persisted or none is. The returned machines carry their new IDs
// in input order.
func CreateMachines(ctx context.Context, db *sql.DB, inputs []MachineInput) ([]*Machine, error) {
	if len(inputs) == 0 {
		return []*Machine{}, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("models: create machines begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO machines (uuid, machine_type_id, name, brand, model, serial_number,
		                       year, engine_hours, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return nil, fmt.Errorf("models: create machines prepare: %w", err)
	}
	defer stmt.Close()

	// Same layout SQLite's CURRENT_TIMESTAMP produces, so stored values
	// read back identically to DB-defaulted rows.
	now := time.Now().UTC().Truncate(time.Second)
	stamp := now.Format(sqliteTimestamp)
	machines := make([]*Machine, 0, len(inputs))
	for _, in := range inputs {
		status := in.Status
		if status == "" {
			status = MachineActive
		}

		result, err := stmt.ExecContext(ctx,
			in.UUID, in.MachineTypeID, in.Name, in.Brand, in.Model, in.SerialNumber,
			in.Year, in.EngineHours, status, stamp, stamp,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, fmt.Errorf("models: create machine %q: %w", in.SerialNumber, ErrDuplicateMachine)
			}
			return nil, fmt.Errorf("models: create machine %q: %w", in.SerialNumber, err)
		}

		id, _ := result.LastInsertId()
		machines = append(machines, &Machine{
			ID:            id,
			UUID:          in.UUID,
			MachineTypeID: in.MachineTypeID,
			Name:          in.Name,
			Brand:         in.Brand,
			Model:         in.Model,
			SerialNumber:  in.SerialNumber,
			Year:          in.Year,
			EngineHours:   in.EngineHours,
			Status:        status,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("models: create machines commit: %w", err)
	}
	return machines, nil
}

// GetMachineByID retrieves a machine by primary key, including its type name.
func GetMachineByID(ctx context.Context, db *sql.DB, id int64) (*Machine, error) {
	m := &Machine{}
	err := db.QueryRowContext(ctx,
		`SELECT m.id, m.uuid, m.machine_type_id, t.name, m.name, m.brand, m.model,
		        m.serial_number, m.year, m.engine_hours, m.status, m.created_at, m.updated_at
		 FROM machines m
		 JOIN machine_types t ON t.id = m.machine_type_id
		 WHERE m.id = ?`, id,
	).Scan(&m.ID, &m.UUID, &m.MachineTypeID, &m.TypeName, &m.Name, &m.Brand, &m.Model,
		&m.SerialNumber, &m.Year, &m.EngineHours, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("models: get machine %d: %w", id, err)
	}
	return m, nil
}

// CountMachines returns the total number of machines.
func CountMachines(ctx context.Context, db *sql.DB) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM machines`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("models: count machines: %w", err)
	}
	return count, nil
}

// ListMachines returns the most recently created machines, newest first.
// A non-positive limit falls back to 50.
func ListMachines(ctx context.Context, db *sql.DB, limit int) ([]*Machine, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.QueryContext(ctx,
		`SELECT m.id, m.uuid, m.machine_type_id, t.name, m.name, m.brand, m.model,
		        m.serial_number, m.year, m.engine_hours, m.status, m.created_at, m.updated_at
		 FROM machines m
		 JOIN machine_types t ON t.id = m.machine_type_id
		 ORDER BY m.id DESC
		 LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("models: list machines: %w", err)
	}
	defer rows.Close()

	var items []*Machine
	for rows.Next() {
		m := &Machine{}
		if err := rows.Scan(&m.ID, &m.UUID, &m.MachineTypeID, &m.TypeName, &m.Name, &m.Brand, &m.Model,
			&m.SerialNumber, &m.Year, &m.EngineHours, &m.Status, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("models: scan machine: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}
