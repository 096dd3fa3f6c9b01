// Package seeder populates a fresh inventory database.
//
// A Runner executes its sub-seeders strictly in order, stopping at the first
// failure, and then asks an EntityFactory for one bulk batch of machines.
// Seeding is not idempotent: every Run re-runs the sub-seeders and appends
// another batch of machines.
package seeder

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/agrotech/agropop/internal/models"
)

// DefaultMachineCount is the number of machines a Runner creates per run.
const DefaultMachineCount = 100

// Seeder is a named unit of seed work.
type Seeder interface {
	Name() string
	Run(ctx context.Context) error
}

// EntityFactory generates and persists count machines in a single bulk
// operation.
type EntityFactory interface {
	Create(ctx context.Context, count int) ([]*models.Machine, error)
}

// SubSeederError reports which sub-seeder failed.
type SubSeederError struct {
	Seeder string
	Err    error
}

func (e *SubSeederError) Error() string {
	return fmt.Sprintf("seeder: %s: %v", e.Seeder, e.Err)
}

func (e *SubSeederError) Unwrap() error { return e.Err }

// State is the progress of a Runner through a run.
type State int

const (
	StateNotStarted State = iota
	StateSeeding
	StateBulkCreate
	StateDone
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not started"
	case StateSeeding:
		return "seeding"
	case StateBulkCreate:
		return "bulk create"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Runner executes a seed plan in two phases: sub-seeders in order, then a
// bulk create of Count machines.
type Runner struct {
	Seeders []Seeder
	Factory EntityFactory
	Count   int // zero means DefaultMachineCount

	// mu serializes runs; a Runner is meant to be used by one caller.
	mu      sync.Mutex
	state   State
	created int
}

// NewRunner returns a Runner creating DefaultMachineCount machines after the
// given sub-seeders.
func NewRunner(factory EntityFactory, seeders ...Seeder) *Runner {
	return &Runner{
		Seeders: seeders,
		Factory: factory,
		Count:   DefaultMachineCount,
	}
}

// Run executes the seed plan. A sub-seeder failure is returned as a
// *SubSeederError and stops the run before any later sub-seeder or the bulk
// create. A bulk create failure is returned exactly as the factory reported
// it. Effects of completed phases are not rolled back.
func (r *Runner) Run(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Factory == nil {
		return fmt.Errorf("seeder: no entity factory configured")
	}

	r.state = StateSeeding
	r.created = 0
	for _, s := range r.Seeders {
		if err := ctx.Err(); err != nil {
			return &SubSeederError{Seeder: s.Name(), Err: err}
		}

		log.Printf("Seeding: %s", s.Name())
		if err := s.Run(ctx); err != nil {
			return &SubSeederError{Seeder: s.Name(), Err: err}
		}
		log.Printf("Seeded: %s", s.Name())
	}

	r.state = StateBulkCreate
	if err := ctx.Err(); err != nil {
		return err
	}

	count := r.Count
	if count == 0 {
		count = DefaultMachineCount
	}

	log.Printf("Creating %d machine(s)", count)
	machines, err := r.Factory.Create(ctx, count)
	if err != nil {
		return err
	}

	r.created = len(machines)
	r.state = StateDone
	return nil
}

// State reports how far the most recent run got. After a failure it stays at
// the phase that failed.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Created reports how many machines the most recent run persisted.
func (r *Runner) Created() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.created
}

type funcSeeder struct {
	name string
	fn   func(ctx context.Context) error
}

func (f funcSeeder) Name() string { return f.name }
func (f funcSeeder) Run(ctx context.Context) error { return f.fn(ctx) }

// Func adapts a plain function into a named Seeder.
func Func(name string, fn func(ctx context.Context) error) Seeder {
	return funcSeeder{name: name, fn: fn}
}
