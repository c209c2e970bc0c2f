package internal

import (
	"errors"
	"os"
	"path/filepath"
)

// FindRepoRoot ищет корень проекта (каталог, где лежит go.mod),
// поднимаясь вверх от текущего каталога.
func FindRepoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found in any parent directory")
		}
		dir = parent
	}
}
