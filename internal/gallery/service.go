package gallery

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/onnuriprint/printshop-backend/pkg/config"
	"github.com/onnuriprint/printshop-backend/pkg/db/models"
	pkgerrors "github.com/onnuriprint/printshop-backend/pkg/errors"
	"github.com/onnuriprint/printshop-backend/pkg/logger"
	"gorm.io/gorm"
)

// fallbackFolderLabel is shown when a photo's folder_id no longer resolves.
// Folder deletion does not cascade, so dangling references are a normal state.
const fallbackFolderLabel = "삭제된 폴더"

type galleryRepository interface {
	ListFolders(ctx context.Context) ([]models.Folder, error)
	CreateFolder(ctx context.Context, folder *models.Folder) (*models.Folder, error)
	DeleteFolder(ctx context.Context, id uuid.UUID) (bool, error)
	ListPhotos(ctx context.Context) ([]models.Photo, error)
	CreatePhoto(ctx context.Context, photo *models.Photo) (*models.Photo, error)
	FindPhoto(ctx context.Context, id uuid.UUID) (*models.Photo, error)
	DeletePhoto(ctx context.Context, id uuid.UUID) (bool, error)
}

// PhotoView is the wire shape of a photo in gallery listings.
type PhotoView struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	URL          string `json:"url"`
	FolderID     string `json:"folder_id,omitempty"`
	FolderName   string `json:"folder_name,omitempty"`
	Description  string `json:"description,omitempty"`
	UploadDate   string `json:"upload_date"`
}

// FolderView is the wire shape of a folder in gallery listings.
type FolderView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// UploadInput carries one multipart photo upload.
type UploadInput struct {
	FileName    string
	MimeType    string
	SizeBytes   int64
	Content     io.Reader
	FolderID    *uuid.UUID
	Description string
}

// FolderInput creates a folder.
type FolderInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// Service manages the work-sample gallery. Every mutation re-fetches the
// affected listing so callers always see fresh server state.
type Service interface {
	ListPhotos(ctx context.Context) ([]PhotoView, error)
	UploadPhoto(ctx context.Context, input UploadInput) ([]PhotoView, error)
	DeletePhoto(ctx context.Context, id uuid.UUID) ([]PhotoView, error)
	ListFolders(ctx context.Context) ([]FolderView, error)
	CreateFolder(ctx context.Context, input FolderInput) ([]FolderView, error)
	DeleteFolder(ctx context.Context, id uuid.UUID) ([]FolderView, error)
}

type service struct {
	repo           galleryRepository
	blobs          BlobStore
	logger         *logger.Logger
	maxUploadBytes int64
}

// NewService wires the gallery manager.
func NewService(repo galleryRepository, blobs BlobStore, cfg config.GalleryConfig, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("gallery repository required")
	}
	if blobs == nil {
		return nil, fmt.Errorf("blob store required")
	}
	if logg == nil {
		return nil, fmt.Errorf("gallery logger required")
	}
	if cfg.MaxUploadMB <= 0 {
		return nil, fmt.Errorf("max upload size must be positive")
	}
	return &service{
		repo:           repo,
		blobs:          blobs,
		logger:         logg,
		maxUploadBytes: int64(cfg.MaxUploadMB) << 20,
	}, nil
}

func (s *service) ListPhotos(ctx context.Context) ([]PhotoView, error) {
	photos, err := s.repo.ListPhotos(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing photos")
	}
	folders, err := s.repo.ListFolders(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing folders")
	}

	names := make(map[uuid.UUID]string, len(folders))
	for _, f := range folders {
		names[f.ID] = f.Name
	}

	views := make([]PhotoView, 0, len(photos))
	for _, p := range photos {
		views = append(views, s.photoView(p, names))
	}
	return views, nil
}

func (s *service) UploadPhoto(ctx context.Context, input UploadInput) ([]PhotoView, error) {
	if input.Content == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "photo file required")
	}
	if input.SizeBytes <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "photo file is empty")
	}
	if input.SizeBytes > s.maxUploadBytes {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("photo exceeds the %dMB upload limit", s.maxUploadBytes>>20)).
			WithDetails(map[string]any{"size_bytes": input.SizeBytes, "max_bytes": s.maxUploadBytes})
	}

	mimeType, ext, err := validateUploadMime(input.MimeType)
	if err != nil {
		return nil, err
	}

	original := strings.TrimSpace(input.FileName)
	if original == "" {
		original = "untitled" + ext
	}

	stored := uuid.NewString() + ext
	if err := s.blobs.Save(ctx, stored, io.LimitReader(input.Content, s.maxUploadBytes)); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "storing photo blob")
	}

	photo := &models.Photo{
		Filename:     stored,
		OriginalName: original,
		FolderID:     input.FolderID,
		Description:  strings.TrimSpace(input.Description),
		MimeType:     mimeType,
		SizeBytes:    input.SizeBytes,
	}
	if _, err := s.repo.CreatePhoto(ctx, photo); err != nil {
		// keep blob and metadata consistent
		if cleanupErr := s.blobs.Remove(ctx, stored); cleanupErr != nil {
			s.logger.Error(ctx, "removing orphaned blob", cleanupErr)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving photo metadata")
	}

	s.logger.Info(s.logger.WithField(ctx, "photo_id", photo.ID.String()), "photo uploaded")
	return s.ListPhotos(ctx)
}

func (s *service) DeletePhoto(ctx context.Context, id uuid.UUID) ([]PhotoView, error) {
	photo, err := s.repo.FindPhoto(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "photo not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading photo")
	}

	deleted, err := s.repo.DeletePhoto(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting photo")
	}
	if deleted {
		if err := s.blobs.Remove(ctx, photo.Filename); err != nil {
			s.logger.Error(ctx, "removing photo blob", err)
		}
	}

	s.logger.Info(s.logger.WithField(ctx, "photo_id", id.String()), "photo deleted")
	return s.ListPhotos(ctx)
}

func (s *service) ListFolders(ctx context.Context) ([]FolderView, error) {
	folders, err := s.repo.ListFolders(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing folders")
	}

	views := make([]FolderView, 0, len(folders))
	for _, f := range folders {
		views = append(views, FolderView{
			ID:          f.ID.String(),
			Name:        f.Name,
			Description: f.Description,
			CreatedAt:   f.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return views, nil
}

func (s *service) CreateFolder(ctx context.Context, input FolderInput) ([]FolderView, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "folder name required")
	}

	folder := &models.Folder{Name: name, Description: strings.TrimSpace(input.Description)}
	if _, err := s.repo.CreateFolder(ctx, folder); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating folder")
	}

	s.logger.Info(s.logger.WithField(ctx, "folder_id", folder.ID.String()), "folder created")
	return s.ListFolders(ctx)
}

func (s *service) DeleteFolder(ctx context.Context, id uuid.UUID) ([]FolderView, error) {
	deleted, err := s.repo.DeleteFolder(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting folder")
	}
	if !deleted {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "folder not found")
	}

	s.logger.Info(s.logger.WithField(ctx, "folder_id", id.String()), "folder deleted")
	return s.ListFolders(ctx)
}

func (s *service) photoView(p models.Photo, folderNames map[uuid.UUID]string) PhotoView {
	view := PhotoView{
		ID:           p.ID.String(),
		Filename:     p.Filename,
		OriginalName: p.OriginalName,
		URL:          s.blobs.PublicPath(p.Filename),
		Description:  p.Description,
		UploadDate:   p.UploadDate.Format("2006-01-02 15:04:05"),
	}
	if p.FolderID != nil {
		view.FolderID = p.FolderID.String()
		if name, ok := folderNames[*p.FolderID]; ok {
			view.FolderName = name
		} else {
			view.FolderName = fallbackFolderLabel
		}
	}
	return view
}
