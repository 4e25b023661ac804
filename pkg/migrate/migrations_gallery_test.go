package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGalleryMigrationContainsSchemas(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_gallery_tables.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no gallery migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE IF NOT EXISTS gallery_folders",
		"CREATE TABLE IF NOT EXISTS gallery_photos",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_gallery_photos_filename",
		"CREATE INDEX IF NOT EXISTS idx_gallery_photos_folder_id",
		"CHECK (size_bytes >= 0)",
		"DROP TABLE IF EXISTS gallery_photos",
		"DROP TABLE IF EXISTS gallery_folders",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}

	// Photos must not hard-reference folders; a dangling folder_id is a
	// supported state.
	if strings.Contains(content, "REFERENCES gallery_folders") {
		t.Errorf("gallery_photos.folder_id must stay a weak reference")
	}
}
