package utils

import "os"

// GetEnvString returns the env var or defaultValue when it is unset or
// blank. Config proper goes through viper; this is for the few helpers
// that run before config is loaded.
func GetEnvString(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}
