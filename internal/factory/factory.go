// Package factory generates plausible synthetic machines and persists them
// in bulk.
//
// Attribute values come from a seeded PCG generator, so a fixed seed yields
// the same data set on every run. UUIDs are drawn from the same generator.
package factory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/agrotech/agropop/internal/models"
	"github.com/google/uuid"
)

// ErrNoMachineTypes is returned when Create is called before any machine
// types exist to assign.
var ErrNoMachineTypes = errors.New("no machine types to assign")

// BulkCreateError reports a failed bulk create. Nothing from the batch is
// persisted when it is returned.
type BulkCreateError struct {
	Count int
	Err   error
}

func (e *BulkCreateError) Error() string {
	return fmt.Sprintf("factory: bulk create %d machines: %v", e.Count, e.Err)
}

func (e *BulkCreateError) Unwrap() error { return e.Err }

// Machines builds and persists synthetic machines.
type Machines struct {
	db   *sql.DB
	rng  *rand.Rand
	seed uint64
}

// New returns a machine factory writing to db. A zero seed draws one from
// the clock; the chosen seed is available from Seed.
func New(db *sql.DB, seed uint64) *Machines {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Machines{
		db:   db,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed: seed,
	}
}

// Seed returns the seed the generator was started with.
func (f *Machines) Seed() uint64 {
	return f.seed
}

// Create generates n machines and persists them in one transaction. Every
// failure is returned as a *BulkCreateError.
func (f *Machines) Create(ctx context.Context, n int) ([]*models.Machine, error) {
	if n <= 0 {
		return []*models.Machine{}, nil
	}

	types, err := models.ListMachineTypes(ctx, f.db)
	if err != nil {
		return nil, &BulkCreateError{Count: n, Err: err}
	}
	if len(types) == 0 {
		return nil, &BulkCreateError{Count: n, Err: ErrNoMachineTypes}
	}

	inputs, err := f.Make(types, n)
	if err != nil {
		return nil, &BulkCreateError{Count: n, Err: err}
	}

	machines, err := models.CreateMachines(ctx, f.db, inputs)
	if err != nil {
		return nil, &BulkCreateError{Count: n, Err: err}
	}

	log.Printf("Factory: created %d machine(s) (seed=%d)", len(machines), f.seed)
	return machines, nil
}

// Make generates n unsaved machine inputs spread across the given types.
func (f *Machines) Make(types []models.MachineType, n int) ([]models.MachineInput, error) {
	if len(types) == 0 {
		return nil, ErrNoMachineTypes
	}

	inputs := make([]models.MachineInput, 0, n)
	for range n {
		in, err := f.makeOne(types)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

func (f *Machines) makeOne(types []models.MachineType) (models.MachineInput, error) {
	id, err := uuid.NewRandomFromReader(readerFunc(f.read))
	if err != nil {
		return models.MachineInput{}, fmt.Errorf("factory: generate uuid: %w", err)
	}

	mt := types[f.rng.IntN(len(types))]
	b := brands[f.rng.IntN(len(brands))]
	model := b.models[f.rng.IntN(len(b.models))]
	year := minYear + f.rng.IntN(maxYear-minYear+1)

	// Older machines have accumulated more hours, up to ~600/year.
	age := maxYear - year + 1
	hours := f.rng.IntN(age*600 + 1)

	return models.MachineInput{
		UUID:          id.String(),
		MachineTypeID: mt.ID,
		Name:          fmt.Sprintf("%s %s %s", b.name, model, mt.Name),
		Brand:         b.name,
		Model:         model,
		SerialNumber:  serialNumber(b.prefix, year, id),
		Year:          year,
		EngineHours:   hours,
		Status:        f.status(age),
	}, nil
}

// status favours active machines; retirement odds grow with age.
func (f *Machines) status(age int) string {
	roll := f.rng.IntN(100)
	switch {
	case roll < min(age, 20):
		return models.MachineRetired
	case roll < min(age, 20)+10:
		return models.MachineMaintenance
	default:
		return models.MachineActive
	}
}

func (f *Machines) read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(f.rng.Uint32())
	}
	return len(p), nil
}

// serialNumber derives a unique serial from the machine's UUID.
func serialNumber(prefix string, year int, id uuid.UUID) string {
	hex := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
	return fmt.Sprintf("%s-%d-%s", prefix, year, hex[len(hex)-12:])
}

type readerFunc func(p []byte) (int, error)

func (r readerFunc) Read(p []byte) (int, error) { return r(p) }
