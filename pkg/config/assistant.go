package config

import (
	"fmt"
	"strings"
	"time"
)

type AssistantConfig struct {
	APIKey  string        `koanf:"apiKey"`
	Model   string        `koanf:"model"`
	BaseURL string        `koanf:"baseUrl"`
	Timeout time.Duration `koanf:"timeout"`
}

// String returns a string representation of the assistant configuration.
// The API key is masked.
func (c *AssistantConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Assistant ---\n")
	b.WriteString(fmt.Sprintf("  model: %s\n", c.Model))
	b.WriteString(fmt.Sprintf("  baseUrl: %s\n", c.BaseURL))
	b.WriteString(fmt.Sprintf("  apiKey: %s\n", maskKey(c.APIKey)))
	b.WriteString(fmt.Sprintf("  timeout: %s\n", c.Timeout))
	return b.String()
}

func maskKey(key string) string {
	if key == "" {
		return "<not configured>"
	}
	return "****"
}

func (c *AssistantConfig) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("assistant model is not configured")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid assistant timeout: %v", c.Timeout)
	}
	return nil
}
