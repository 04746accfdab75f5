package kycflow

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{"nil", nil, ""},
		{"missing id type", ErrMissingIDType, "Please select an ID type."},
		{"missing id type wrapped", fmt.Errorf("draft: %w", ErrMissingIDType), "Please select an ID type."},
		{"missing image", ErrMissingImage, "Both front and back images are required."},
		{"already submitted", ErrAlreadySubmitted, "Your KYC verification has already been submitted."},
		{"invalid file type", ErrInvalidFileType, "Only JPEG and PNG images are accepted."},
		{"file too large", ErrFileTooLarge, "Images must be 5 MB or smaller."},
		{"unauthenticated", ErrUnauthenticated, "Please log in to submit KYC documents."},
		{"upload failed", &UploadError{Side: SideFront, Err: errors.New("dial tcp: timeout")}, "Failed to upload files. Please try again."},
		{"submit failed", &SubmitError{Err: errors.New("status 500")}, "Failed to submit KYC details. Please try again."},
		{"status fetch failed", &StatusFetchError{Err: errors.New("status 502")}, "Could not check your verification status. Please try again."},
		{"unknown", errors.New("surprise"), "Something went wrong. Please try again."},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.msg, UserMessage(tt.err))
		})
	}
}

func TestUploadErrorUnwrap(t *testing.T) {
	t.Parallel()
	cause := errors.New("dial tcp: timeout")
	err := &UploadError{Side: SideBack, Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "back")
}
