package kycflow

import (
	"errors"
	"fmt"
)

var (
	ErrMissingIDType    = errors.New("id type not selected")
	ErrMissingImage     = errors.New("front and back images are required")
	ErrAlreadySubmitted = errors.New("verification already submitted")
	ErrInvalidFileType  = errors.New("unsupported file type")
	ErrFileTooLarge     = errors.New("file exceeds maximum size")
	ErrUnauthenticated  = errors.New("no session token")
	ErrSubmitInFlight   = errors.New("submission already in progress")
)

// Side names which document image an upload error belongs to.
type Side string

const (
	SideFront Side = "front"
	SideBack  Side = "back"
)

// UploadError reports a failed asset upload. The structured submission is
// never attempted after one.
type UploadError struct {
	Side Side
	Err  error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload %s image: %s", e.Side, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// SubmitError reports a failed structured submission after both uploads
// succeeded. Already uploaded assets are not rolled back; the draft keeps
// their URLs so a retry reuses them.
type SubmitError struct {
	Err error
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("submit verification: %s", e.Err)
}

func (e *SubmitError) Unwrap() error { return e.Err }

// StatusFetchError reports a failed status read. The local status becomes
// StatusError until the next successful fetch.
type StatusFetchError struct {
	Err error
}

func (e *StatusFetchError) Error() string {
	return fmt.Sprintf("fetch verification status: %s", e.Err)
}

func (e *StatusFetchError) Unwrap() error { return e.Err }

// UserMessage converts any workflow error into the human-readable copy shown
// on the dashboard. Underlying causes are for logs, not users.
func UserMessage(err error) string {
	var ue *UploadError
	var se *SubmitError
	var fe *StatusFetchError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingIDType):
		return "Please select an ID type."
	case errors.Is(err, ErrMissingImage):
		return "Both front and back images are required."
	case errors.Is(err, ErrAlreadySubmitted):
		return "Your KYC verification has already been submitted."
	case errors.Is(err, ErrInvalidFileType):
		return "Only JPEG and PNG images are accepted."
	case errors.Is(err, ErrFileTooLarge):
		return "Images must be 5 MB or smaller."
	case errors.Is(err, ErrUnauthenticated):
		return "Please log in to submit KYC documents."
	case errors.Is(err, ErrSubmitInFlight):
		return "A submission is already in progress."
	case errors.As(err, &ue):
		return "Failed to upload files. Please try again."
	case errors.As(err, &se):
		return "Failed to submit KYC details. Please try again."
	case errors.As(err, &fe):
		return "Could not check your verification status. Please try again."
	default:
		return "Something went wrong. Please try again."
	}
}
