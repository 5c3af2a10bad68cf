package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadEnv.
const (
	EnvLogLevel   = "RECORD_MAPPER_LOG_LEVEL"
	EnvFlavor     = "RECORD_MAPPER_FLAVOR"
	EnvConvention = "RECORD_MAPPER_CONVENTION"
	EnvLogFile    = "RECORD_MAPPER_LOG_FILE"
)

// Env holds process level settings.
type Env struct {
	LogLevel   string
	Flavor     string
	Convention string
	LogFile    string // empty logs to stderr
}

// LoadEnv reads the environment after loading the given .env files, or
// ./.env when none are given. A missing ./.env is not an error; variables
// already set in the environment win over the files.
func LoadEnv(files ...string) (Env, error) {
	if len(files) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return Env{}, err
	}

	return Env{
		LogLevel:   firstNonEmpty(os.Getenv(EnvLogLevel), "info"),
		Flavor:     firstNonEmpty(os.Getenv(EnvFlavor), "generic"),
		Convention: firstNonEmpty(os.Getenv(EnvConvention), "none"),
		LogFile:    firstNonEmpty(os.Getenv(EnvLogFile)),
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}

	return ""
}
