package config

import "os"

// Get returns the first non-empty environment variable from the provided
// keys, e.g. Get("FUNCSPLIT_OUT_DIR"). Empty string when none is set.
func Get(keys ...string) string {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}
