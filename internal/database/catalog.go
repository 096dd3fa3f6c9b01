package database

import _ "embed"

//go:embed machine-types.json
var machineTypeCatalog []byte

// MachineTypeCatalog returns the embedded machine type catalog JSON bytes.
// It holds the reference machine types every new installation starts with.
func MachineTypeCatalog() []byte {
	return machineTypeCatalog
}
