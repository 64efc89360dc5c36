package migrate

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var migrationFileRe = regexp.MustCompile(`^(\d{14})_[a-z0-9_]+\.sql$`)

// ValidateDir checks every .sql file in dir for the goose naming scheme,
// unique versions, and Up/Down markers. An empty directory passes.
func ValidateDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("dir is required")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir %q: %w", dir, err)
	}

	versions := map[string]string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}
		if err := checkMigrationFile(dir, name, versions); err != nil {
			return err
		}
	}
	return nil
}

func checkMigrationFile(dir, name string, versions map[string]string) error {
	m := migrationFileRe.FindStringSubmatch(name)
	if m == nil {
		return fmt.Errorf("invalid migration filename %q (expected YYYYMMDDHHMMSS_name.sql)", name)
	}

	version := m[1]
	if prev, ok := versions[version]; ok {
		return fmt.Errorf("duplicate migration version %s in %q and %q", version, prev, name)
	}
	versions[version] = name

	body, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("read file %q: %w", name, err)
	}
	for _, marker := range []string{"-- +goose Up", "-- +goose Down"} {
		if !strings.Contains(string(body), marker) {
			return fmt.Errorf("migration %q missing %q", name, marker)
		}
	}
	return nil
}
