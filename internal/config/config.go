// Package config resolves the marketplace API credential.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EnvKey is the only environment variable consulted for the API credential.
const EnvKey = "SKILLSMP_API_KEY"

const dotfileName = ".env"

// MissingKeyError reports that no API key could be resolved from the
// environment or the dotfile.
type MissingKeyError struct{}

func (e *MissingKeyError) Error() string {
	return EnvKey + " not set. Export it or add it to ~/" + dotfileName + "."
}

// ResolveAPIKey returns the marketplace API key. The environment variable
// wins; if it is unset, ~/.env is scanned and only EnvKey is imported into
// the process environment. Other assignments in the file never leak.
func ResolveAPIKey() (string, error) {
	if key := os.Getenv(EnvKey); key != "" {
		return key, nil
	}

	importFromDotfile()

	if key := os.Getenv(EnvKey); key != "" {
		return key, nil
	}
	return "", &MissingKeyError{}
}

// importFromDotfile copies EnvKey from ~/.env into the environment. A missing
// or unreadable dotfile is not an error; the caller reports the unresolved key.
func importFromDotfile() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}

	vars, err := godotenv.Read(filepath.Join(home, dotfileName))
	if err != nil {
		return
	}

	if key, ok := vars[EnvKey]; ok && key != "" {
		_ = os.Setenv(EnvKey, key)
	}
}
