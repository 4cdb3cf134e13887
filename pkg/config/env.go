package config

import (
	"os"
	"strconv"
)

// Environment variable names for configuration.
const (
	EnvBaseURL   = "TAPESTRY_BASE_URL"
	EnvPartnerID = "TAPESTRY_PARTNER_ID"
	EnvDepth     = "TAPESTRY_DEPTH"
	EnvDebug     = "TAPESTRY_DEBUG"
)

// GetEnvString returns the value of an environment variable or a default.
func GetEnvString(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// GetEnvBool returns true if the env var is "true" or "1".
func GetEnvBool(key string) bool {
	v := os.Getenv(key)
	return v == "true" || v == "1"
}

// GetEnvInt returns the integer value of an environment variable.
// ok is false when the variable is unset; err is non-nil when it is set
// but does not parse.
func GetEnvInt(key string) (value int, ok bool, err error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, true, err
	}
	return n, true, nil
}
