package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i-fetch/p2pvault/internal/handlers"
	"github.com/i-fetch/p2pvault/internal/statuscache"
	"github.com/i-fetch/p2pvault/pkg/kycflow"
)

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/kyc", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestStatusHandler(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, err := statuscache.New(0)
	require.NoError(t, err)
	h := handlers.NewStatusHandler(store, nil)

	rec := post(t, h, `{"id":"evt-1","event_type":"KYC_STATUS","payload":{"user_id":"u1","status":"approved"}}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	entry, ok := store.Get(ctx, "u1")
	require.True(t, ok)
	assert.Equal(t, kycflow.StatusApproved, entry.Status)
}

func TestStatusHandlerUnknownStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, err := statuscache.New(0)
	require.NoError(t, err)
	h := handlers.NewStatusHandler(store, nil)

	post(t, h, `{"id":"evt-2","event_type":"KYC_STATUS","payload":{"user_id":"u1","status":"under_review"}}`)

	entry, ok := store.Get(ctx, "u1")
	require.True(t, ok)
	assert.Equal(t, kycflow.StatusUnknown, entry.Status)
	assert.Equal(t, "under_review", entry.Raw)
}

func TestStatusHandlerIgnoresOtherEvents(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, err := statuscache.New(0)
	require.NoError(t, err)
	h := handlers.NewStatusHandler(store, nil)

	rec := post(t, h, `{"id":"evt-3","event_type":"TIER_UPGRADE","payload":{}}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	_, ok := store.Get(ctx, "u1")
	assert.False(t, ok)
}

func TestStatusHandlerBadPayload(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, err := statuscache.New(0)
	require.NoError(t, err)
	h := handlers.NewStatusHandler(store, nil)

	rec := post(t, h, `not json`)
	assert.Equal(t, http.StatusOK, rec.Code)

	_, ok := store.Get(ctx, "u1")
	assert.False(t, ok)
}
