package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"rentwheels/internal/utils"
	"rentwheels/internal/validators"
	"rentwheels/pkg/logger"
	"rentwheels/pkg/storage"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	store     storage.Storage
	generator *storage.FilenameGenerator
	logger    *logger.Logger
}

func NewUploadHandler(store storage.Storage, generator *storage.FilenameGenerator, logger *logger.Logger) *UploadHandler {
	return &UploadHandler{
		store:     store,
		generator: generator,
		logger:    logger,
	}
}

// UploadImage accepts a single image in the "image" field and returns its URL
func (h *UploadHandler) UploadImage(c *gin.Context) {
	header, err := c.FormFile(utils.UploadFieldSingle)
	if err != nil {
		utils.BadRequestResponse(c, utils.ErrNoFileProvided.Error(), nil)
		return
	}

	url, err := h.saveUpload(header)
	if err != nil {
		h.respondUploadError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}

// UploadImages accepts up to three images in the "images" field and returns
// their URLs. The batch fails as a whole on the first bad file.
func (h *UploadHandler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, utils.ErrNoFileProvided.Error(), nil)
		return
	}

	files := form.File[utils.UploadFieldMultiple]
	if len(files) == 0 {
		utils.BadRequestResponse(c, utils.ErrNoFileProvided.Error(), nil)
		return
	}
	if len(files) > utils.MaxUploadFiles {
		h.respondUploadError(c, utils.ErrTooManyFiles)
		return
	}

	urls := make([]string, 0, len(files))
	for _, header := range files {
		url, err := h.saveUpload(header)
		if err != nil {
			h.respondUploadError(c, err)
			return
		}
		urls = append(urls, url)
	}

	c.JSON(http.StatusOK, gin.H{"imageUrls": urls})
}

// ServeImage streams a stored upload. Content-Type comes from the file
// bytes, falling back to the extension when detection fails.
func (h *UploadHandler) ServeImage(c *gin.Context) {
	filename := c.Param("filename")

	file, info, err := h.store.Open(filename)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			utils.NotFoundResponse(c, "File")
			return
		}
		h.logger.WithError(err).Error("failed to open stored file")
		utils.InternalErrorResponse(c, "Error serving file", err)
		return
	}
	defer file.Close()

	contentType := utils.GetContentType(filename)
	if mtype, err := mimetype.DetectReader(file); err == nil {
		contentType = mtype.String()
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		h.logger.WithError(err).Error("failed to rewind stored file")
		utils.InternalErrorResponse(c, "Error serving file", err)
		return
	}

	c.Header("Content-Type", contentType)
	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), file)
}

func (h *UploadHandler) saveUpload(header *multipart.FileHeader) (string, error) {
	if err := validators.ValidateUpload(header); err != nil {
		return "", err
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	return h.store.Save(h.generator.Generate(header.Filename), file)
}

func (h *UploadHandler) respondUploadError(c *gin.Context, err error) {
	if errors.Is(err, utils.ErrInvalidFileType) {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}
	h.logger.WithError(err).Error("failed to store upload")
	utils.InternalErrorResponse(c, "Error uploading file", err)
}
