// Package storage writes attachment binaries to the local uploads tree and
// hands back the web-relative paths persisted on the rows.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const webPrefix = "/uploads"

// Local stores binaries under a root directory served at /uploads.
type Local struct {
	root string
}

func NewLocal(root string) (*Local, error) {
	if err := os.MkdirAll(filepath.Join(root, "technicians"), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &Local{root: root}, nil
}

// Root returns the directory the HTTP layer serves at /uploads.
func (l *Local) Root() string { return l.root }

// Store writes src under dir (empty for the uploads root) using a
// collision-resistant name and returns the web-relative path.
func (l *Local) Store(dir, originalName string, src io.Reader) (string, error) {
	name := fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(originalName))

	dst, err := os.Create(filepath.Join(l.root, dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	if dir == "" {
		return webPrefix + "/" + name, nil
	}
	return webPrefix + "/" + dir + "/" + name, nil
}

// Remove deletes the binary behind a web-relative path. A file that is
// already gone is not an error.
func (l *Local) Remove(webPath string) error {
	if !strings.HasPrefix(webPath, webPrefix+"/") {
		return fmt.Errorf("path %q is outside the uploads tree", webPath)
	}
	rel := strings.TrimPrefix(webPath, webPrefix+"/")

	err := os.Remove(filepath.Join(l.root, filepath.FromSlash(rel)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Exists reports whether the binary behind a web-relative path is present.
func (l *Local) Exists(webPath string) bool {
	rel := strings.TrimPrefix(webPath, webPrefix+"/")
	_, err := os.Stat(filepath.Join(l.root, filepath.FromSlash(rel)))
	return err == nil
}
