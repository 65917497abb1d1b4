// Package config defines the validated ARATS runtime configuration: Firebase
// persistence settings, exchange connectivity, risk limits and operational
// intervals. Values are resolved from the process environment with an optional
// YAML overlay (overlay > environment > defaults) and validated once at load
// time; a configuration that fails validation is never returned.
package config
