// Package env reads loose environment variables that live outside the
// CHOCOMARKET_ envconfig surface, such as LOG_FORMAT.
package env

import "os"

// Get returns the variable's value, or fallback when unset or empty.
func Get(key, fallback string) string {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return fallback
	}
	return val
}
