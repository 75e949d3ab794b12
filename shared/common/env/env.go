package env

import (
	"os"
	"strconv"
	"time"
)

func Get(key string) string {
	return os.Getenv(key)
}

func GetDefault(key string, defaultValue string) string {
	v := os.Getenv(key)
	if len(v) == 0 {
		return defaultValue
	}
	return v
}

func GetIntDefault(key string, defaultValue int) int {
	v := os.Getenv(key)
	if len(v) == 0 {
		return defaultValue
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return i
}

func GetDurationDefault(key string, defaultValue time.Duration) time.Duration {
	v := os.Getenv(key)
	if len(v) == 0 {
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultValue
	}
	return d
}
