package utils

// Upload limits and multipart form fields.
const (
	MaxImageSize   = 5 * 1024 * 1024 // 5MB
	MaxUploadFiles = 3

	UploadFieldSingle   = "image"
	UploadFieldMultiple = "images"

	// Public path uploaded files are served under
	UploadURLPrefix = "/uploads"
)

// Catalog defaults for fields the client may leave unset.
const (
	DefaultVehicleRating = 5.0
	DefaultVehicleSeats  = 5
)

// Mongo collection names.
const (
	CollectionVehicles     = "vehicles"
	CollectionReservations = "reservations"
)

// Image allow-lists. Extensions are listed without the dot; media types are
// compared after stripping parameters.
var (
	AllowedImageExtensions = []string{"jpg", "jpeg", "png", "gif"}
	AllowedImageMediaTypes = []string{"image/jpeg", "image/png", "image/gif"}
)
