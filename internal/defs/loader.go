// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadPowerUpDefinitions reads the power-up configuration file and builds a Catalog.
func LoadPowerUpDefinitions(path string) (*Catalog, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read power-up definitions file: %w", err)
	}

	var list []PowerUpDefinition
	if err := json.Unmarshal(file, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal power-up definitions: %w", err)
	}

	catalog, err := NewCatalog(list)
	if err != nil {
		return nil, fmt.Errorf("invalid power-up definitions in %s: %w", path, err)
	}
	return catalog, nil
}
