package utils

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// LoadTOMLFile decodes the TOML file at path into v.
// Keys that v has no field for are reported at debug level.
func LoadTOMLFile(path string, v any) error {
	meta, err := toml.DecodeFile(path, v)
	if err != nil {
		log.Warnf("TOML parsing error in config file %s: %v. Attempting partial recovery...", path, err)
		return err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		log.Debugf("Ignoring unknown config keys in %s: %v", path, undecoded)
	}
	return nil
}

// SaveTOMLFile encodes v as TOML into path, replacing any existing file.
func SaveTOMLFile(v any, path string) error {
	file, err := os.Create(path)
	if err != nil {
		log.Errorf("Failed to create file: %v", err)
		return err
	}
	defer file.Close()
	if err := toml.NewEncoder(file).Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

// ParseTOMLWithRecovery decodes path into a generic map so individual
// sections can be salvaged when the typed decode fails.
func ParseTOMLWithRecovery(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	raw := make(map[string]any)
	if _, err := toml.Decode(string(data), &raw); err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v", path, err)
		return nil, err
	}
	return raw, nil
}

// ExtractSection returns the table named section from parsed TOML data.
func ExtractSection(data map[string]any, section string) (map[string]any, bool) {
	table, ok := data[section].(map[string]any)
	return table, ok
}

// ExtractInt returns data[key] when it holds a TOML integer.
func ExtractInt(data map[string]any, key string) (int, bool) {
	if val, ok := data[key].(int64); ok {
		return int(val), true
	}
	return 0, false
}

// ExtractInt64 returns data[key] when it holds a TOML integer.
func ExtractInt64(data map[string]any, key string) (int64, bool) {
	val, ok := data[key].(int64)
	return val, ok
}

// ExtractBool returns data[key] when it holds a TOML boolean.
func ExtractBool(data map[string]any, key string) (bool, bool) {
	val, ok := data[key].(bool)
	return val, ok
}

// ExtractString returns data[key] when it holds a TOML string.
func ExtractString(data map[string]any, key string) (string, bool) {
	val, ok := data[key].(string)
	return val, ok
}
