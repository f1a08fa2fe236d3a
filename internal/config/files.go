package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
)

// AppFs is the filesystem configuration files are read from. Tests swap it for afero.NewMemMapFs().
var AppFs = afero.NewOsFs()

// ExpandPaths resolves a leading "~" in every path setting.
func (c *Configuration) ExpandPaths() error {
	for _, p := range []*string{&c.Server.StaticsFolder, &c.Storage.DatabasePath, &c.Storage.SeedFile, &c.Auth.JWTFilePath, &c.EnvFile} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("expanding %q: %w", *p, err)
		}
		*p = expanded
	}
	return nil
}

// LoadEnvFile exports the variables of path into the process environment.
// Variables already set win. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}

	exists, err := afero.Exists(AppFs, path)
	if err != nil || !exists {
		return err
	}

	f, err := AppFs.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	vars, err := godotenv.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing env file %s: %w", path, err)
	}

	for k, v := range vars {
		if _, ok := os.LookupEnv(k); ok {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadSecret returns the trimmed content of a secret file.
func ReadSecret(path string) ([]byte, error) {
	data, err := afero.ReadFile(AppFs, path)
	if err != nil {
		return nil, fmt.Errorf("reading secret %s: %w", path, err)
	}

	secret := []byte(strings.TrimSpace(string(data)))
	if len(secret) == 0 {
		return nil, fmt.Errorf("secret file %s is empty", path)
	}
	return secret, nil
}
