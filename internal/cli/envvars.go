package cli

import (
	"os"
	"strings"

	envparse "github.com/caarlos0/env/v11"
)

// rootEnv defines global defaults sourced from MKEMPTY_* env vars.
type rootEnv struct {
	// LogLevel is the logging level from MKEMPTY_LOG_LEVEL.
	LogLevel string `env:"MKEMPTY_LOG_LEVEL"`
	// EnvFile is a dotenv path from MKEMPTY_ENV_FILE.
	EnvFile string `env:"MKEMPTY_ENV_FILE"`
}

// createEnv captures inputs for the create command.
type createEnv struct {
	// Manifest is the target manifest path from MKEMPTY_MANIFEST.
	Manifest string `env:"MKEMPTY_MANIFEST"`
	// Vars is a k=v,k2=v2 list from MKEMPTY_VARS.
	Vars string `env:"MKEMPTY_VARS"`
	// Strict turns failed targets into a non-zero exit from MKEMPTY_STRICT.
	Strict bool `env:"MKEMPTY_STRICT"`
}

// parseEnv fills target from MKEMPTY_* env vars via caarlos0/env.
func parseEnv(target interface{}) error {
	return envparse.Parse(target)
}

// envPresent reports whether a non-empty env var exists.
func envPresent(key string) bool {
	val, ok := os.LookupEnv(key)
	if !ok {
		return false
	}
	return strings.TrimSpace(val) != ""
}
