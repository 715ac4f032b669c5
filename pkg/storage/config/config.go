package config

import (
	"github.com/Uliboooo/easy-storage/pkg/storage"
)

// Config wraps a map[string]any and provides typed accessors that handle
// missing keys and type mismatches by returning the given default.
type Config struct {
	data map[string]any
}

// New creates a Config from a map. A nil map yields an empty Config.
func New(data map[string]any) Config {
	if data == nil {
		data = map[string]any{}
	}
	return Config{data: data}
}

// Raw returns the underlying map.
func (c Config) Raw() map[string]any {
	return c.data
}

// String returns the string at key, or defaultVal if missing or not a string.
func (c Config) String(key, defaultVal string) string {
	if v, ok := c.data[key].(string); ok {
		return v
	}
	return defaultVal
}

// Int returns the int at key, or defaultVal if missing or not numeric.
// Whole float64 values are accepted because JSON decodes numbers as float64.
func (c Config) Int(key string, defaultVal int) int {
	switch v := c.data[key].(type) {
	case int:
		return v
	case float64:
		if v == float64(int(v)) {
			return int(v)
		}
	}
	return defaultVal
}

// Bool returns the bool at key, or defaultVal if missing or not a bool.
func (c Config) Bool(key string, defaultVal bool) bool {
	if v, ok := c.data[key].(bool); ok {
		return v
	}
	return defaultVal
}

// Format returns the serialization format named at key ("json" or "toml"),
// or defaultVal if the key is missing or names no supported format.
func (c Config) Format(key string, defaultVal storage.Format) storage.Format {
	v, ok := c.data[key].(string)
	if !ok {
		return defaultVal
	}
	f, err := storage.ParseFormat(v)
	if err != nil {
		return defaultVal
	}
	return f
}
