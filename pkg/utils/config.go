package utils

import (
	"maps"
	"strconv"
	"sync"
)

// Config is a read-mostly view of the process environment. It is built once
// in main from the environment (plus optional .env files) and handed to the
// components that need it; nothing reads ambient globals after startup.
type Config struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewConfig creates a Config from the provided key-value pairs
func NewConfig(values map[string]string) *Config {
	cfg := &Config{values: make(map[string]string)}
	maps.Copy(cfg.values, values)
	return cfg
}

// NewConfigFromEnv creates a Config by loading the given .env files and the
// current process environment (later sources take precedence)
func NewConfigFromEnv(files ...string) *Config {
	return NewConfig(LoadEnv(files...))
}

// Get retrieves a configuration value, or "" when the key is unset
func (c *Config) Get(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.values[key]
}

// GetWithDefault retrieves a configuration value with a fallback default
func (c *Config) GetWithDefault(key, defaultValue string) string {
	if value := c.Get(key); value != "" {
		return value
	}
	return defaultValue
}

// GetInt retrieves a configuration value as an integer; unset or unparsable
// values yield 0
func (c *Config) GetInt(key string) int {
	n, err := strconv.Atoi(c.Get(key))
	if err != nil {
		return 0
	}
	return n
}

// GetIntWithDefault retrieves an integer configuration value with a fallback
func (c *Config) GetIntWithDefault(key string, defaultValue int) int {
	value := c.Get(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// Set overrides a configuration value (used by tests)
func (c *Config) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
}

// Has checks whether a configuration key is present
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.values[key]
	return ok
}
