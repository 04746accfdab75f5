package kycflow

import "time"

// MaxFileSize is the per-image cap accepted into a draft.
const MaxFileSize = 5 << 20 // 5 MiB

const (
	DefaultPollInterval = 5 * time.Second
	defaultOCRTimeout   = 30 * time.Second
)

// ID types offered by the dashboard dropdown. Validation only requires a
// non-empty value; the accepted set is deployment-defined.
const (
	IDTypePassport      = "passport"
	IDTypeDriverLicense = "driver_license"
	IDTypeNationalID    = "national_id"
	IDTypeSSN           = "ssn"
)

// IDTypes lists the known ID types in display order.
var IDTypes = []string{IDTypePassport, IDTypeDriverLicense, IDTypeNationalID, IDTypeSSN}

var allowedContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
}

// AllowedContentType reports whether a MIME type is accepted for upload.
func AllowedContentType(contentType string) bool {
	_, ok := allowedContentTypes[contentType]
	return ok
}
