package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type StoragePath string

func (p StoragePath) String() string {
	return string(p)
}

func (p *StoragePath) Set(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("empty storage path")
	}

	expanded, err := expandHome(value)
	if err != nil {
		return err
	}

	*p = StoragePath(expanded)

	return nil
}

func (p *StoragePath) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

type StorageDriver string

const (
	DriverJSON   StorageDriver = "json"
	DriverSQLite StorageDriver = "sqlite"
)

func (d StorageDriver) String() string {
	return string(d)
}

func (d *StorageDriver) Set(value string) error {
	switch StorageDriver(strings.ToLower(value)) {
	case DriverJSON:
		*d = DriverJSON
	case DriverSQLite:
		*d = DriverSQLite
	default:
		return fmt.Errorf("invalid storage driver: %s", value)
	}

	return nil
}

func (d *StorageDriver) UnmarshalText(text []byte) error {
	return d.Set(string(text))
}
