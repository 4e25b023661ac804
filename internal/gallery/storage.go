package gallery

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// BlobStore persists the uploaded image bytes. Metadata lives in the
// repository; the store only knows generated filenames.
type BlobStore interface {
	Save(ctx context.Context, filename string, content io.Reader) error
	Remove(ctx context.Context, filename string) error
	PublicPath(filename string) string
}

// LocalStore keeps blobs on the local filesystem under a single directory.
type LocalStore struct {
	dir           string
	publicPathFmt string
}

// NewLocalStore creates the upload directory if needed.
func NewLocalStore(dir, publicPathFmt string) (*LocalStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("upload dir required")
	}
	if publicPathFmt == "" {
		publicPathFmt = "/uploads/%s"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &LocalStore{dir: dir, publicPathFmt: publicPathFmt}, nil
}

func (s *LocalStore) Save(ctx context.Context, filename string, content io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	// filenames are service-generated, never caller-supplied paths
	target := filepath.Join(s.dir, filepath.Base(filename))
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("creating blob file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		_ = os.Remove(target)
		return fmt.Errorf("writing blob: %w", err)
	}
	return nil
}

func (s *LocalStore) Remove(ctx context.Context, filename string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := os.Remove(filepath.Join(s.dir, filepath.Base(filename)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *LocalStore) PublicPath(filename string) string {
	return fmt.Sprintf(s.publicPathFmt, filename)
}
