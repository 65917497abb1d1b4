package config

import (
	"strconv"
	"strings"
)

// LookupFunc resolves an environment variable, mirroring os.LookupEnv.
// Load accepts one so tests can run against a fake environment.
type LookupFunc func(key string) (string, bool)

func envOrDefault(lookup LookupFunc, key, fallback string) string {
	if value, ok := lookup(key); ok && value != "" {
		return value
	}
	return fallback
}

// parseBool implements the loader's boolean coercion: the literal "true",
// compared case-insensitively, is true; every other string is false.
func parseBool(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}

// parseInt parses a base-10 integer from an environment string, naming the
// variable in the error so startup failures point at the offending setting.
func parseInt(variable, s string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &InvalidNumericFormatError{Variable: variable, Value: s}
	}
	return value, nil
}
