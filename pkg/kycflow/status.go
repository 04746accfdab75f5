package kycflow

import (
	"time"
)

// Status is the client's closed view of a verification status. The backend
// owns the real value; unrecognized strings map to StatusUnknown with the
// raw value kept alongside in Entry.
type Status string

const (
	StatusNotSubmitted Status = "not_submitted"
	StatusPending      Status = "pending"
	StatusApproved     Status = "approved"
	StatusRejected     Status = "rejected"
	// StatusError is client-local: the status could not be determined.
	StatusError   Status = "error"
	StatusUnknown Status = "unknown"
)

// ParseStatus maps a backend status string to the closed enum. The mapping is
// deterministic; anything outside the known set becomes StatusUnknown.
func ParseStatus(raw string) Status {
	switch raw {
	case "not_submitted", "":
		return StatusNotSubmitted
	case "pending":
		return StatusPending
	case "approved":
		return StatusApproved
	case "rejected":
		return StatusRejected
	default:
		return StatusUnknown
	}
}

// BlocksSubmit reports whether a new submission is forbidden in this status.
// Rejected permits resubmission.
func (s Status) BlocksSubmit() bool {
	return s == StatusPending || s == StatusApproved
}

// Entry is one versioned snapshot of the cached status. Version is assigned
// by the store and grows monotonically per user; writers pass the version
// they observed so a stale poll response cannot overwrite a newer write.
type Entry struct {
	Status    Status
	Raw       string
	Version   uint64
	UpdatedAt time.Time
}
