package statuscache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i-fetch/p2pvault/pkg/kycflow"
)

func TestCacheVersioning(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c, err := New(0)
	require.NoError(t, err)

	_, ok := c.Get(ctx, "u1")
	assert.False(t, ok)

	// first write against version 0
	entry, applied := c.Apply(ctx, "u1", kycflow.StatusNotSubmitted, "not_submitted", 0)
	assert.True(t, applied)
	assert.Equal(t, uint64(1), entry.Version)

	// optimistic pending write from a submit that observed version 1
	entry, applied = c.Apply(ctx, "u1", kycflow.StatusPending, "pending", 1)
	assert.True(t, applied)
	assert.Equal(t, uint64(2), entry.Version)

	// a poll response that started before the submit carries the old version
	// and must not clobber the pending status
	entry, applied = c.Apply(ctx, "u1", kycflow.StatusNotSubmitted, "not_submitted", 1)
	assert.False(t, applied)
	assert.Equal(t, kycflow.StatusPending, entry.Status)
	assert.Equal(t, uint64(2), entry.Version)

	got, ok := c.Get(ctx, "u1")
	assert.True(t, ok)
	assert.Equal(t, kycflow.StatusPending, got.Status)
}

func TestCacheIsolatesUsers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c, err := New(0)
	require.NoError(t, err)

	_, applied := c.Apply(ctx, "u1", kycflow.StatusPending, "pending", 0)
	assert.True(t, applied)

	_, ok := c.Get(ctx, "u2")
	assert.False(t, ok)

	c.Remove(ctx, "u1")
	_, ok = c.Get(ctx, "u1")
	assert.False(t, ok)
}
