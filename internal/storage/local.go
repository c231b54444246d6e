package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage archives generated documents on the local filesystem
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new local storage instance
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	// Ensure the base directory exists
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{basePath: basePath}, nil
}

// Save writes data under subDir with the given filename, replacing any
// previous version, and returns its relative path
func (s *LocalStorage) Save(data []byte, filename string, subDir string) (string, error) {
	name := filepath.Base(filename)
	if name == "." || name == string(filepath.Separator) || strings.HasPrefix(name, "..") {
		return "", fmt.Errorf("invalid filename %q", filename)
	}

	dir := filepath.Join(s.basePath, filepath.Clean("/"+subDir))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	filePath := filepath.Join(dir, name)
	tmp := filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := os.Rename(tmp, filePath); err != nil {
		// Clean up on failure
		os.Remove(tmp)
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	relPath, _ := filepath.Rel(s.basePath, filePath)
	return relPath, nil
}

// Delete removes a file
func (s *LocalStorage) Delete(relativePath string) error {
	return os.Remove(s.GetFullPath(relativePath))
}

// Exists checks if a file exists
func (s *LocalStorage) Exists(relativePath string) bool {
	_, err := os.Stat(s.GetFullPath(relativePath))
	return err == nil
}

// GetFullPath returns the absolute path for serving files
func (s *LocalStorage) GetFullPath(relativePath string) string {
	return filepath.Join(s.basePath, filepath.Clean("/"+relativePath))
}
