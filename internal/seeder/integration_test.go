package seeder

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/agrotech/agropop/internal/database"
	"github.com/agrotech/agropop/internal/factory"
	"github.com/agrotech/agropop/internal/models"
)

// testDB creates a fresh in-memory SQLite database with migrations applied.
func testDB(t testing.TB) *sql.DB {
	t.Helper()

	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("run migrations: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

func countMachines(t testing.TB, db *sql.DB) int {
	t.Helper()
	n, err := models.CountMachines(context.Background(), db)
	if err != nil {
		t.Fatalf("count machines: %v", err)
	}
	return n
}

func TestRun_CreatesMachines(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	r := NewRunner(factory.New(db, 1), &MachineTypesSeeder{DB: db})

	before := countMachines(t, db)
	if err := r.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := countMachines(t, db) - before; got != 100 {
		t.Errorf("machines added = %d, want 100", got)
	}

	types, err := models.ListMachineTypes(ctx, db)
	if err != nil {
		t.Fatalf("list machine types: %v", err)
	}
	if len(types) == 0 {
		t.Error("machine types seeder inserted nothing")
	}
}

func TestRun_TwiceAppends(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	typesRuns := 0
	types := &MachineTypesSeeder{DB: db}
	counting := Func("machine_types", func(ctx context.Context) error {
		typesRuns++
		return types.Run(ctx)
	})

	r := NewRunner(factory.New(db, 5), counting)
	for i := range 2 {
		if err := r.Run(ctx); err != nil {
			t.Fatalf("run %d: %v", i+1, err)
		}
	}

	if got := countMachines(t, db); got != 200 {
		t.Errorf("machines = %d, want 200", got)
	}
	if typesRuns != 2 {
		t.Errorf("sub-seeder runs = %d, want 2", typesRuns)
	}
}

func TestRun_SubSeederFailureSkipsBulkCreate(t *testing.T) {
	db := testDB(t)

	bad := &MachineTypesSeeder{DB: db, Catalog: []byte(`{"type":"nope"}`)}
	r := NewRunner(factory.New(db, 1), bad)

	err := r.Run(context.Background())

	var sse *SubSeederError
	if !errors.As(err, &sse) {
		t.Fatalf("err = %v, want *SubSeederError", err)
	}
	if sse.Seeder != "machine_types" {
		t.Errorf("failed seeder = %q, want machine_types", sse.Seeder)
	}
	if got := countMachines(t, db); got != 0 {
		t.Errorf("machines = %d, want 0", got)
	}
}

func TestRun_BulkCreateFailure(t *testing.T) {
	db := testDB(t)

	// No sub-seeders: the factory finds no machine types to assign.
	r := NewRunner(factory.New(db, 1))

	err := r.Run(context.Background())

	var bce *factory.BulkCreateError
	if !errors.As(err, &bce) {
		t.Fatalf("err = %v, want *factory.BulkCreateError", err)
	}
	if !errors.Is(err, factory.ErrNoMachineTypes) {
		t.Errorf("err = %v, want it to wrap ErrNoMachineTypes", err)
	}
	if got := countMachines(t, db); got != 0 {
		t.Errorf("machines = %d, want 0", got)
	}
}

func TestMachineTypesSeeder_Idempotent(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	s := &MachineTypesSeeder{DB: db}

	if err := s.Run(ctx); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first, err := models.ListMachineTypes(ctx, db)
	if err != nil {
		t.Fatalf("list machine types: %v", err)
	}

	if err := s.Run(ctx); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second, err := models.ListMachineTypes(ctx, db)
	if err != nil {
		t.Fatalf("list machine types: %v", err)
	}

	if len(first) != len(second) {
		t.Errorf("machine types after re-run = %d, want %d", len(second), len(first))
	}
}

func TestAdminSeeder(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	t.Run("missing credentials", func(t *testing.T) {
		s := &AdminSeeder{DB: db}
		err := s.Run(ctx)
		if err == nil || !strings.Contains(err.Error(), "AGROPOP_ADMIN_USER") {
			t.Fatalf("err = %v, want missing credentials error", err)
		}
	})

	s := &AdminSeeder{DB: db, Username: "admin", Password: "hunter22", Email: "ops@farm.test"}
	if err := s.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := s.Run(ctx); err != nil {
		t.Fatalf("second run: %v", err)
	}

	count, err := models.CountUsers(ctx, db)
	if err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 1 {
		t.Errorf("users = %d, want 1", count)
	}

	u, err := models.GetUserByID(ctx, db, 1)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if !u.IsAdmin {
		t.Error("bootstrapped user should be an admin")
	}
	if !models.CheckPassword(u.PasswordHash, "hunter22") {
		t.Error("bootstrapped user password does not match")
	}
}
