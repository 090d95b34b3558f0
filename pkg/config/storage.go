package config

import (
	"fmt"
	"strings"
)

type StorageConfig struct {
	Dir string `koanf:"dir"`
}

// String returns a string representation of the storage configuration.
func (c *StorageConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Storage ---\n")
	b.WriteString(fmt.Sprintf("  dir: %s\n", c.Dir))
	return b.String()
}

func (c *StorageConfig) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("storage directory is not configured")
	}
	return nil
}
