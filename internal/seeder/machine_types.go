package seeder

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/agrotech/agropop/internal/catalog"
	"github.com/agrotech/agropop/internal/database"
	"github.com/agrotech/agropop/internal/models"
)

// MachineTypesSeeder loads the embedded machine type catalog. Types that
// already exist are skipped, so re-running it is safe.
type MachineTypesSeeder struct {
	DB *sql.DB

	// Catalog overrides the embedded catalog when non-nil.
	Catalog []byte
}

func (s *MachineTypesSeeder) Name() string { return "machine_types" }

func (s *MachineTypesSeeder) Run(ctx context.Context) error {
	data := s.Catalog
	if data == nil {
		data = database.MachineTypeCatalog()
	}

	c, err := catalog.Parse(bytes.NewReader(data))
	if err != nil {
		return err
	}

	inputs := make([]models.MachineTypeInput, 0, len(c.MachineTypes))
	for _, mt := range c.MachineTypes {
		inputs = append(inputs, models.MachineTypeInput{Name: mt.Name, Description: mt.Description})
	}

	inserted, err := models.EnsureMachineTypes(ctx, s.DB, inputs)
	if err != nil {
		return fmt.Errorf("load machine types: %w", err)
	}

	log.Printf("Machine types: %d new, %d already present", inserted, len(inputs)-inserted)
	return nil
}
