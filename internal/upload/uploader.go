// Package upload persists selected KYC images in blob storage. Uploaded
// assets are publicly retrievable by URL; the verification backend only ever
// sees the URLs.
package upload

import (
	"path"

	"github.com/gofrs/uuid"
)

// objectName namespaces an upload under kyc/ with a random prefix so two
// submissions of the same filename never collide.
func objectName(filename string) string {
	id, err := uuid.NewV4()
	if err != nil {
		// rand failure; fall back to the bare name
		return path.Join("kyc", path.Base(filename))
	}
	return path.Join("kyc", id.String()+"-"+path.Base(filename))
}
