package kycflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	t.Parallel()
	tests := []struct {
		raw    string
		status Status
	}{
		{"not_submitted", StatusNotSubmitted},
		{"", StatusNotSubmitted},
		{"pending", StatusPending},
		{"approved", StatusApproved},
		{"rejected", StatusRejected},
		{"in_review", StatusUnknown},
		{"PENDING", StatusUnknown},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.status, ParseStatus(tt.raw))
			// mapping is deterministic
			assert.Equal(t, ParseStatus(tt.raw), ParseStatus(tt.raw))
		})
	}
}

func TestBlocksSubmit(t *testing.T) {
	t.Parallel()
	assert.True(t, StatusPending.BlocksSubmit())
	assert.True(t, StatusApproved.BlocksSubmit())
	assert.False(t, StatusNotSubmitted.BlocksSubmit())
	assert.False(t, StatusRejected.BlocksSubmit())
	assert.False(t, StatusError.BlocksSubmit())
	assert.False(t, StatusUnknown.BlocksSubmit())
}
