package utils

import (
	"mime"
	"path/filepath"
	"slices"
	"strings"
)

// GetFileExtension returns the lowercased extension including the dot,
// or "" when the filename has none.
func GetFileExtension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// IsAllowedFileType reports whether the filename's extension appears in
// allowedTypes. Entries are listed without the dot.
func IsAllowedFileType(filename string, allowedTypes []string) bool {
	ext := strings.TrimPrefix(GetFileExtension(filename), ".")
	return slices.Contains(allowedTypes, ext)
}

// IsAllowedMediaType reports whether the declared Content-Type appears in
// allowedTypes. Parameters like charset are stripped before comparing; a
// value ParseMediaType rejects is compared lowercased as-is.
func IsAllowedMediaType(mediaType string, allowedTypes []string) bool {
	parsed, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		parsed = strings.ToLower(strings.TrimSpace(mediaType))
	}
	return slices.Contains(allowedTypes, parsed)
}

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

// GetContentType maps a filename to a media type by extension. Used as the
// fallback when sniffing the stored bytes is inconclusive.
func GetContentType(filename string) string {
	if contentType, exists := contentTypes[GetFileExtension(filename)]; exists {
		return contentType
	}
	return "application/octet-stream"
}
