package gallery

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/onnuriprint/printshop-backend/pkg/config"
	"github.com/onnuriprint/printshop-backend/pkg/db/models"
	pkgerrors "github.com/onnuriprint/printshop-backend/pkg/errors"
	"github.com/onnuriprint/printshop-backend/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (Service, *Repository) {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.Folder{}, &models.Photo{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	repo := NewRepository(conn)
	blobs, err := NewLocalStore(t.TempDir(), "/uploads/%s")
	if err != nil {
		t.Fatalf("new blob store: %v", err)
	}

	logg := logger.New(logger.Options{ServiceName: "gallery-test", Output: os.Stderr})
	svc, err := NewService(repo, blobs, config.GalleryConfig{MaxUploadMB: 1}, logg)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, repo
}

func uploadSample(t *testing.T, svc Service, folderID *uuid.UUID, name string) PhotoView {
	t.Helper()
	photos, err := svc.UploadPhoto(context.Background(), UploadInput{
		FileName:    name,
		MimeType:    "image/png",
		SizeBytes:   4,
		Content:     strings.NewReader("data"),
		FolderID:    folderID,
		Description: "샘플",
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	for _, p := range photos {
		if p.OriginalName == name {
			return p
		}
	}
	t.Fatalf("uploaded photo %s not in refreshed list", name)
	return PhotoView{}
}

func TestUploadListDeleteRoundtrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	view := uploadSample(t, svc, nil, "cover.png")
	if view.URL != "/uploads/"+view.Filename {
		t.Fatalf("unexpected public url %s", view.URL)
	}
	if !strings.HasSuffix(view.Filename, ".png") {
		t.Fatalf("stored filename should carry the canonical extension, got %s", view.Filename)
	}

	id, err := uuid.Parse(view.ID)
	if err != nil {
		t.Fatalf("parse id: %v", err)
	}
	remaining, err := svc.DeletePhoto(ctx, id)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected empty refreshed list, got %d", len(remaining))
	}

	_, err = svc.DeletePhoto(ctx, id)
	coded := pkgerrors.As(err)
	if coded == nil || coded.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND on second delete, got %v", err)
	}
}

func TestUploadValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input UploadInput
	}{
		{"missing content", UploadInput{MimeType: "image/png", SizeBytes: 1}},
		{"empty file", UploadInput{MimeType: "image/png", Content: strings.NewReader(""), SizeBytes: 0}},
		{"oversized", UploadInput{MimeType: "image/png", Content: strings.NewReader("x"), SizeBytes: 2 << 20}},
		{"bad mime", UploadInput{MimeType: "application/pdf", Content: strings.NewReader("x"), SizeBytes: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.UploadPhoto(ctx, tc.input)
			coded := pkgerrors.As(err)
			if coded == nil || coded.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected VALIDATION_ERROR, got %v", err)
			}
		})
	}
}

func TestFolderLifecycleAndWeakReference(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	folders, err := svc.CreateFolder(ctx, FolderInput{Name: "명함", Description: "명함 샘플"})
	if err != nil {
		t.Fatalf("create folder failed: %v", err)
	}
	if len(folders) != 1 {
		t.Fatalf("expected refreshed folder list of 1, got %d", len(folders))
	}
	folderID := uuid.MustParse(folders[0].ID)

	view := uploadSample(t, svc, &folderID, "card.png")
	if view.FolderName != "명함" {
		t.Fatalf("expected folder name 명함, got %q", view.FolderName)
	}

	// deleting the folder must not cascade to photos
	remaining, err := svc.DeleteFolder(ctx, folderID)
	if err != nil {
		t.Fatalf("delete folder failed: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected no folders, got %d", len(remaining))
	}

	photos, err := svc.ListPhotos(ctx)
	if err != nil {
		t.Fatalf("list photos failed: %v", err)
	}
	if len(photos) != 1 {
		t.Fatalf("photo should survive folder deletion, got %d photos", len(photos))
	}
	if photos[0].FolderID != folderID.String() {
		t.Fatalf("dangling folder id should be preserved")
	}
	if photos[0].FolderName != fallbackFolderLabel {
		t.Fatalf("expected fallback label %q, got %q", fallbackFolderLabel, photos[0].FolderName)
	}

	_, err = svc.DeleteFolder(ctx, uuid.New())
	coded := pkgerrors.As(err)
	if coded == nil || coded.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND for unknown folder, got %v", err)
	}
}

func TestCreateFolderRequiresName(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.CreateFolder(context.Background(), FolderInput{Name: "   "})
	coded := pkgerrors.As(err)
	if coded == nil || coded.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}
