package handlers

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"

	"github.com/renovateiq/renovateiq-backend/internal/http/handlers/common"
	"github.com/renovateiq/renovateiq-backend/internal/models"
	"github.com/renovateiq/renovateiq-backend/internal/repository"
	"github.com/renovateiq/renovateiq-backend/internal/storage"
)

// Разрешённые типы изображений. Тип определяется по магическим байтам,
// заголовку Content-Type не доверяем.
var allowedImageTypes = map[string]bool{
	matchers.TypeJpeg.MIME.Value: true,
	matchers.TypePng.MIME.Value:  true,
	matchers.TypeGif.MIME.Value:  true,
	matchers.TypeWebp.MIME.Value: true,
	matchers.TypeHeif.MIME.Value: true,
}

// PhotoHandler обслуживает фотографии хода ремонта.
type PhotoHandler struct {
	photos *repository.PhotoRepository
	media  *storage.MediaStore
}

func NewPhotoHandler(photos *repository.PhotoRepository, media *storage.MediaStore) *PhotoHandler {
	return &PhotoHandler{photos: photos, media: media}
}

// ListPhotos обрабатывает GET /api/photos.
func (h *PhotoHandler) ListPhotos(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	var projectID *uuid.UUID
	if raw := c.Query("project_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			common.RespondBadRequest(c, "Invalid project_id filter")
			return
		}
		projectID = &parsed
	}

	photos, err := h.photos.ListByUser(c.Request.Context(), userID, projectID)
	if err != nil {
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, photos)
}

// UploadPhoto обрабатывает POST /api/photos (multipart/form-data).
func (h *PhotoHandler) UploadPhoto(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		common.RespondBadRequest(c, "file field is required")
		return
	}
	if file.Size == 0 {
		common.RespondBadRequest(c, "file must not be empty")
		return
	}

	var projectID *uuid.UUID
	if raw := c.PostForm("project_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			common.RespondBadRequest(c, "Invalid project_id")
			return
		}
		projectID = &parsed
	}

	var caption *string
	if raw := c.PostForm("caption"); raw != "" {
		caption = &raw
	}

	src, err := file.Open()
	if err != nil {
		common.RespondStoreError(c, err)
		return
	}
	defer src.Close()

	// Проверка магических байтов
	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		common.RespondBadRequest(c, "could not read file")
		return
	}

	kind, err := filetype.Match(head[:n])
	if err != nil || kind == filetype.Unknown || !allowedImageTypes[kind.MIME.Value] {
		common.RespondBadRequest(c, "only image uploads are allowed")
		return
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		common.RespondStoreError(c, err)
		return
	}

	relativePath, size, err := h.media.Save(c.Request.Context(), userID, file.Filename, src)
	if err != nil {
		if errors.Is(err, storage.ErrFileTooLarge) {
			common.RespondBadRequest(c, "file exceeds upload size limit")
			return
		}
		common.RespondStoreError(c, err)
		return
	}

	photo := &models.Photo{
		UserID:    userID,
		ProjectID: projectID,
		FilePath:  filepath.ToSlash(relativePath),
		FileSize:  size,
		Caption:   caption,
	}

	if err := h.photos.Create(c.Request.Context(), photo); err != nil {
		_ = h.media.Delete(c.Request.Context(), relativePath)
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, photo)
}

// DeletePhoto обрабатывает DELETE /api/photos/:id.
// Сначала запись, потом файл: осиротевший файл безвреднее битой ссылки.
func (h *PhotoHandler) DeletePhoto(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondNotFound(c, "Photo not found")
		return
	}

	photo, err := h.photos.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPhotoNotFound) {
			c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
			return
		}
		common.RespondStoreError(c, err)
		return
	}

	if _, err := h.photos.Delete(c.Request.Context(), id, userID); err != nil {
		common.RespondStoreError(c, err)
		return
	}

	_ = h.media.Delete(c.Request.Context(), photo.FilePath)

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
