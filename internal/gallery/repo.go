package gallery

import (
	"context"

	"github.com/google/uuid"
	"github.com/onnuriprint/printshop-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository persists gallery folders and photo metadata.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds the repository to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListFolders returns all folders, oldest first.
func (r *Repository) ListFolders(ctx context.Context) ([]models.Folder, error) {
	var folders []models.Folder
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&folders).Error; err != nil {
		return nil, err
	}
	return folders, nil
}

// CreateFolder persists a folder.
func (r *Repository) CreateFolder(ctx context.Context, folder *models.Folder) (*models.Folder, error) {
	if err := r.db.WithContext(ctx).Create(folder).Error; err != nil {
		return nil, err
	}
	return folder, nil
}

// DeleteFolder removes a folder. Photos referencing it are left untouched;
// their folder_id dangles on purpose.
func (r *Repository) DeleteFolder(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Folder{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListPhotos returns all photos, newest upload first.
func (r *Repository) ListPhotos(ctx context.Context) ([]models.Photo, error) {
	var photos []models.Photo
	if err := r.db.WithContext(ctx).Order("upload_date desc").Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

// CreatePhoto persists a photo metadata row.
func (r *Repository) CreatePhoto(ctx context.Context, photo *models.Photo) (*models.Photo, error) {
	if err := r.db.WithContext(ctx).Create(photo).Error; err != nil {
		return nil, err
	}
	return photo, nil
}

// FindPhoto retrieves a photo by id.
func (r *Repository) FindPhoto(ctx context.Context, id uuid.UUID) (*models.Photo, error) {
	var photo models.Photo
	if err := r.db.WithContext(ctx).First(&photo, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

// DeletePhoto removes a photo metadata row.
func (r *Repository) DeletePhoto(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Photo{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
