package config

import (
	"fmt"
	"strings"
	"time"
)

type NotifyConfig struct {
	Timeout time.Duration `koanf:"timeout"`
}

// String returns a string representation of the notify configuration.
func (c *NotifyConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Notify ---\n")
	b.WriteString(fmt.Sprintf("  timeout: %s\n", c.Timeout))
	return b.String()
}

func (c *NotifyConfig) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid notify timeout: %v", c.Timeout)
	}
	return nil
}
