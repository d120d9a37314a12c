package util

import (
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

// GetEnv returns the ENV variable if set, otherwise the provided default value.
func GetEnv(key string, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}

	return defaultVal
}

// GetEnvAsInt returns the ENV variable parsed as int, otherwise the provided default value.
func GetEnvAsInt(key string, defaultVal int) int {
	strVal := GetEnv(key, "")

	if val, err := strconv.Atoi(strVal); err == nil {
		return val
	}

	return defaultVal
}

// GetEnvAsUint64 returns the ENV variable parsed as uint64, otherwise the provided default value.
func GetEnvAsUint64(key string, defaultVal uint64) uint64 {
	strVal := GetEnv(key, "")

	if val, err := strconv.ParseUint(strVal, 10, 64); err == nil {
		return val
	}

	return defaultVal
}

// GetEnvAsBool returns the ENV variable parsed as bool, otherwise the provided default value.
func GetEnvAsBool(key string, defaultVal bool) bool {
	strVal := GetEnv(key, "")

	if val, err := strconv.ParseBool(strVal); err == nil {
		return val
	}

	return defaultVal
}

// GetMgmtListenAddress returns the listen address with the host replaced by
// loopback when the server binds to all interfaces, for use by local probes.
func GetMgmtListenAddress(listenHost string, listenPort int) string {
	host := listenHost
	if host == "0.0.0.0" || host == "::" || host == "" {
		host = "127.0.0.1"
	}

	return host + ":" + strconv.Itoa(listenPort)
}

// RequireEnv returns the ENV variable or logs fatally if it is unset.
func RequireEnv(key string) string {
	val, ok := os.LookupEnv(key)
	if !ok {
		log.Fatal().Str("key", key).Msg("Required ENV variable is not set")
	}

	return val
}
