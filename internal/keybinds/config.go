package keybinds

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
)

// Config represents the user's keybinding configuration.
// Each section maps an action name to a comma separated list of keys,
// e.g. "quit": "q,ctrl+q". Listed actions replace their default keys.
type Config struct {
	Version string            `json:"version"`
	Global  map[string]string `json:"global,omitempty"`
	Normal  map[string]string `json:"normal,omitempty"`
	Editing map[string]string `json:"editing,omitempty"`
}

// LoadConfig loads keybinding configuration from a JSON file.
// Comments and trailing commas are allowed.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &config); err != nil {
		return nil, fmt.Errorf("invalid %s format: %w", filepath.Base(path), err)
	}

	return &config, nil
}

// SaveConfig saves keybinding configuration to a JSON file
func SaveConfig(config *Config, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// sections maps config sections to contexts
func (c *Config) sections() map[Context]map[string]string {
	return map[Context]map[string]string{
		ContextGlobal:  c.Global,
		ContextNormal:  c.Normal,
		ContextEditing: c.Editing,
	}
}

// ApplyConfig applies user configuration to a registry.
// User bindings override default bindings.
func ApplyConfig(registry *Registry, config *Config) error {
	for context, section := range config.sections() {
		for actionStr, keyList := range section {
			action := Action(actionStr)
			if err := ValidateAction(actionStr); err != nil {
				return fmt.Errorf("context '%s': %w", context, err)
			}

			keys := splitKeys(keyList)
			for _, key := range keys {
				if err := ValidateKey(key); err != nil {
					return fmt.Errorf("context '%s', action '%s': %w", context, action, err)
				}
			}

			registry.Unbind(context, action)
			registry.RegisterMultiple(context, keys, action)
		}
	}
	return nil
}

func splitKeys(list string) []string {
	var keys []string
	for _, k := range strings.Split(list, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// Load builds the default registry and applies the config at path if it
// exists. A missing file is not an error.
func Load(path string) (*Registry, *ValidationResult, error) {
	registry := NewDefaultRegistry()
	if path == "" {
		return registry, &ValidationResult{}, nil
	}

	config, err := LoadConfig(path)
	if os.IsNotExist(err) {
		return registry, &ValidationResult{}, nil
	}
	if err != nil {
		return nil, nil, err
	}

	if err := ApplyConfig(registry, config); err != nil {
		return nil, nil, err
	}

	result := NewValidator().ValidateRegistry(registry)
	if result.HasErrors() {
		return nil, result, fmt.Errorf("invalid keybindings in %s:\n%s", path, result.String())
	}
	return registry, result, nil
}

// WriteDefaultConfig writes the default bindings to path
func WriteDefaultConfig(path string) error {
	defaults := NewDefaultRegistry()
	config := &Config{Version: "1"}
	for context, section := range map[Context]*map[string]string{
		ContextGlobal:  &config.Global,
		ContextNormal:  &config.Normal,
		ContextEditing: &config.Editing,
	} {
		*section = make(map[string]string)
		for _, b := range defaults.ListBindings(context) {
			if b.Context != context {
				continue
			}
			if prev, ok := (*section)[string(b.Action)]; ok {
				(*section)[string(b.Action)] = prev + "," + b.Key
			} else {
				(*section)[string(b.Action)] = b.Key
			}
		}
	}
	return SaveConfig(config, path)
}
