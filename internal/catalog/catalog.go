// Package catalog parses the machine type catalog that seeds reference data
// into a fresh installation.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// TypeMachineTypes is the document type a machine type catalog must declare.
const TypeMachineTypes = "machine-types"

// MachineType is one catalog entry.
type MachineType struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Catalog is a parsed and validated machine type catalog.
type Catalog struct {
	Version      string        `json:"version"`
	Type         string        `json:"type"`
	MachineTypes []MachineType `json:"machine_types"`
}

// Parse decodes a catalog document and validates it. Names are trimmed;
// blank or duplicate (case-insensitive) names are rejected.
func Parse(r io.Reader) (*Catalog, error) {
	var c Catalog
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("catalog: decode json: %w", err)
	}

	if c.Type != TypeMachineTypes {
		return nil, fmt.Errorf("catalog: expected type %q, got %q", TypeMachineTypes, c.Type)
	}
	if len(c.MachineTypes) == 0 {
		return nil, fmt.Errorf("catalog: no machine types")
	}

	seen := make(map[string]bool, len(c.MachineTypes))
	for i := range c.MachineTypes {
		mt := &c.MachineTypes[i]
		mt.Name = strings.TrimSpace(mt.Name)
		mt.Description = strings.TrimSpace(mt.Description)
		if mt.Name == "" {
			return nil, fmt.Errorf("catalog: machine type %d has no name", i)
		}
		key := strings.ToLower(mt.Name)
		if seen[key] {
			return nil, fmt.Errorf("catalog: duplicate machine type %q", mt.Name)
		}
		seen[key] = true
	}

	return &c, nil
}
