package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/onnuriprint/printshop-backend/api/responses"
	"github.com/onnuriprint/printshop-backend/api/validators"
	"github.com/onnuriprint/printshop-backend/internal/gallery"
	pkgerrors "github.com/onnuriprint/printshop-backend/pkg/errors"
	"github.com/onnuriprint/printshop-backend/pkg/logger"
)

// The gallery endpoints keep the storefront's original /api/photos and
// /api/folders wire contract, flat {success, ...} envelopes included.

// GalleryListPhotos lists photos, optionally narrowed by ?folder=. The filter
// is applied in memory after the fetch; "all" and an absent parameter both
// mean everything.
func GalleryListPhotos(svc gallery.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		photos, err := svc.ListPhotos(r.Context())
		if err != nil {
			responses.WriteLegacyError(r.Context(), logg, w, err)
			return
		}
		filtered := gallery.FilterByFolder(photos, strings.TrimSpace(r.URL.Query().Get("folder")))
		responses.WriteLegacyPhotos(w, filtered)
	}
}

// GalleryUploadPhoto accepts a multipart upload: photo, folder_id, description.
func GalleryUploadPhoto(svc gallery.Service, logg *logger.Logger, maxUploadBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes+(1<<20))
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			responses.WriteLegacyError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form"))
			return
		}

		file, header, err := r.FormFile("photo")
		if err != nil {
			responses.WriteLegacyError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "photo file required"))
			return
		}
		defer file.Close()

		input := gallery.UploadInput{
			FileName:    header.Filename,
			MimeType:    header.Header.Get("Content-Type"),
			SizeBytes:   header.Size,
			Content:     file,
			Description: r.FormValue("description"),
		}

		if raw := strings.TrimSpace(r.FormValue("folder_id")); raw != "" {
			folderID, err := uuid.Parse(raw)
			if err != nil {
				responses.WriteLegacyError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid folder_id"))
				return
			}
			input.FolderID = &folderID
		}

		if _, err := svc.UploadPhoto(r.Context(), input); err != nil {
			responses.WriteLegacyError(r.Context(), logg, w, err)
			return
		}
		responses.WriteLegacyMessage(w, "사진이 업로드되었습니다")
	}
}

// GalleryDeletePhoto removes one photo and its blob.
func GalleryDeletePhoto(svc gallery.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "photoId"))
		if err != nil {
			responses.WriteLegacyError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid photo id"))
			return
		}

		if _, err := svc.DeletePhoto(r.Context(), id); err != nil {
			responses.WriteLegacyError(r.Context(), logg, w, err)
			return
		}
		responses.WriteLegacyMessage(w, "사진이 삭제되었습니다")
	}
}

// GalleryListFolders lists folders, oldest first.
func GalleryListFolders(svc gallery.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		folders, err := svc.ListFolders(r.Context())
		if err != nil {
			responses.WriteLegacyError(r.Context(), logg, w, err)
			return
		}
		responses.WriteLegacyFolders(w, folders)
	}
}

// GalleryCreateFolder creates a folder from {name, description}.
func GalleryCreateFolder(svc gallery.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input gallery.FolderInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteLegacyError(r.Context(), logg, w, err)
			return
		}

		if _, err := svc.CreateFolder(r.Context(), input); err != nil {
			responses.WriteLegacyError(r.Context(), logg, w, err)
			return
		}
		responses.WriteLegacyMessage(w, "폴더가 생성되었습니다")
	}
}

// GalleryDeleteFolder removes a folder. Photos keep their folder_id; the
// listing shows a fallback label for the dangling reference.
func GalleryDeleteFolder(svc gallery.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "folderId"))
		if err != nil {
			responses.WriteLegacyError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid folder id"))
			return
		}

		if _, err := svc.DeleteFolder(r.Context(), id); err != nil {
			responses.WriteLegacyError(r.Context(), logg, w, err)
			return
		}
		responses.WriteLegacyMessage(w, "폴더가 삭제되었습니다")
	}
}
