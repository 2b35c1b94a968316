package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// LoadFromUserConfig loads ~/.funcsplit/config.json (a flat string map) into
// the environment so FUNCSPLIT_* defaults are visible to the CLI. A missing
// file is not an error.
func LoadFromUserConfig() error {
	home, err := os.UserHomeDir()
	if err != nil {
		// Best-effort: if we can't resolve home, just skip file loading.
		return nil
	}

	configPath := filepath.Join(home, ".funcsplit", "config.json")
	file, err := os.Open(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var cfg map[string]string
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return err
	}

	for key, value := range cfg {
		if value == "" {
			continue
		}
		// Values from ~/.funcsplit/config.json take precedence over existing env vars.
		_ = os.Setenv(key, value)
	}

	return nil
}
