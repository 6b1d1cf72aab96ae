// Package credentials loads Vault credentials from the environment,
// optionally seeded from a .env file. The client does not care how
// credentials were produced; this is one stock source.
package credentials

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	veevavault "github.com/veevavault/client-go"
)

// Environment variable names read by Load.
const (
	EnvHost     = "VAULT_HOST"
	EnvUsername = "VAULT_USERNAME"
	EnvPassword = "VAULT_PASSWORD"
)

// Load reads credentials from the process environment.
func Load() (veevavault.Credentials, error) {
	creds := veevavault.Credentials{
		Host:     os.Getenv(EnvHost),
		Username: os.Getenv(EnvUsername),
		Password: os.Getenv(EnvPassword),
	}

	if creds.Host == "" {
		return veevavault.Credentials{}, fmt.Errorf("%s is not set", EnvHost)
	}
	if creds.Username == "" || creds.Password == "" {
		return veevavault.Credentials{}, fmt.Errorf("%s and %s must be set", EnvUsername, EnvPassword)
	}

	return creds, nil
}

// LoadFile seeds the environment from the given .env file, then loads
// credentials from it. Variables already present in the environment
// take precedence over the file.
func LoadFile(path string) (veevavault.Credentials, error) {
	if err := godotenv.Load(path); err != nil {
		return veevavault.Credentials{}, fmt.Errorf("load %s: %w", path, err)
	}
	return Load()
}
