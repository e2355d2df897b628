package validators

import (
	"mime/multipart"

	"rentwheels/internal/utils"
)

// ValidateUpload checks an incoming file against the image allow-list. Both
// the declared media type and the filename extension must match; either one
// failing rejects the file. The check runs on the multipart header, before
// any byte reaches final storage.
func ValidateUpload(header *multipart.FileHeader) error {
	mediaType := header.Header.Get("Content-Type")
	if !utils.IsAllowedMediaType(mediaType, utils.AllowedImageMediaTypes) ||
		!utils.IsAllowedFileType(header.Filename, utils.AllowedImageExtensions) {
		return utils.ErrInvalidFileType
	}

	if header.Size > utils.MaxImageSize {
		return utils.ErrFileTooLarge
	}

	return nil
}
