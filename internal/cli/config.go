package cli

import (
	"os"
	"strconv"
	"time"
)

// Config holds CLI configuration
type Config struct {
	PlayerName  string
	Bots        int
	Strategy    string
	ScoreTarget int
	Seed        int64
	StepDelay   time.Duration
	Verbose     bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		PlayerName:  getEnvOrDefault("RUMMY_NAME", "You"),
		Bots:        1,
		Strategy:    getEnvOrDefault("RUMMY_STRATEGY", "greedy"),
		ScoreTarget: 500,
		Seed:        getEnvInt64("RUMMY_SEED", 0),
		StepDelay:   600 * time.Millisecond,
		Verbose:     false,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt64(key string, defaultVal int64) int64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return defaultVal
	}
	return parsed
}
