package gallery

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/onnuriprint/printshop-backend/pkg/db/models"
)

func setupGalleryTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Folder{}, &models.Photo{}))
	return db
}

func TestRepositoryPhotoLifecycle(t *testing.T) {
	repo := NewRepository(setupGalleryTestDB(t))
	ctx := context.Background()

	older := &models.Photo{
		Filename:     "a-1.png",
		OriginalName: "명함.png",
		MimeType:     "image/png",
		SizeBytes:    1024,
		UploadDate:   time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
	}
	newer := &models.Photo{
		Filename:     "a-2.png",
		OriginalName: "브로셔.png",
		MimeType:     "image/png",
		SizeBytes:    2048,
		UploadDate:   time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
	}

	_, err := repo.CreatePhoto(ctx, older)
	require.NoError(t, err)
	_, err = repo.CreatePhoto(ctx, newer)
	require.NoError(t, err)

	photos, err := repo.ListPhotos(ctx)
	require.NoError(t, err)
	require.Len(t, photos, 2)
	assert.Equal(t, "a-2.png", photos[0].Filename, "newest upload should come first")

	found, err := repo.FindPhoto(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, "명함.png", found.OriginalName)

	deleted, err := repo.DeletePhoto(ctx, older.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeletePhoto(ctx, older.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "second delete should report nothing removed")
}

func TestRepositoryFolderDeleteLeavesPhotos(t *testing.T) {
	repo := NewRepository(setupGalleryTestDB(t))
	ctx := context.Background()

	folder, err := repo.CreateFolder(ctx, &models.Folder{Name: "명함"})
	require.NoError(t, err)

	photo := &models.Photo{
		Filename:     "b-1.png",
		OriginalName: "샘플.png",
		FolderID:     &folder.ID,
		MimeType:     "image/png",
		SizeBytes:    512,
	}
	_, err = repo.CreatePhoto(ctx, photo)
	require.NoError(t, err)

	deleted, err := repo.DeleteFolder(ctx, folder.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	photos, err := repo.ListPhotos(ctx)
	require.NoError(t, err)
	require.Len(t, photos, 1)
	require.NotNil(t, photos[0].FolderID)
	assert.Equal(t, folder.ID, *photos[0].FolderID, "photo keeps its dangling folder reference")
}

func TestRepositoryDeleteFolderMissing(t *testing.T) {
	repo := NewRepository(setupGalleryTestDB(t))

	deleted, err := repo.DeleteFolder(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, deleted)
}
