package utils

import "errors"

// Sentinel errors shared by repositories, storage and handlers. Handlers
// translate them to HTTP status codes; everything else stays a generic 500.
var (
	ErrNotFound        = errors.New("record not found")
	ErrNoFileProvided  = errors.New("no file uploaded")
	ErrInvalidFileType = errors.New("only jpg, jpeg, png and gif images are allowed")
	ErrFileTooLarge    = errors.New("uploaded file exceeds the 5 MB limit")
	ErrTooManyFiles    = errors.New("too many files: at most 3 images per upload")
)
