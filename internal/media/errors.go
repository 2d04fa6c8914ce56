package media

import "errors"

// Sentinel errors for media store operations.
var (
	// ErrUnsupportedType is returned when the extension or MIME type is not an allowed image type.
	ErrUnsupportedType = errors.New("only image files are allowed")

	// ErrFileTooLarge is returned when an upload exceeds the configured size limit.
	ErrFileTooLarge = errors.New("file too large")

	// ErrInvalidName is returned when a stored name would escape the storage root.
	ErrInvalidName = errors.New("invalid file name")
)
