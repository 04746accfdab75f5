package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/i-fetch/p2pvault/internal/models"
	"github.com/i-fetch/p2pvault/pkg/kycflow"
)

type (
	store interface {
		Get(ctx context.Context, userID string) (kycflow.Entry, bool)
		Apply(ctx context.Context, userID string, status kycflow.Status, raw string, observed uint64) (kycflow.Entry, bool)
	}

	StatusHandler struct {
		store  store
		logger *slog.Logger
	}
)

func NewStatusHandler(store store, logger *slog.Logger) *StatusHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatusHandler{
		store:  store,
		logger: logger,
	}
}

// ServeHTTP accepts backend status pushes. Polling remains the source of
// truth; events go through the same versioned store, so a push racing a
// poll response resolves by version, not arrival order.
func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	var webhook models.WebhookEvent
	b, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error("read webhook body", "error", err)
		return
	}
	defer r.Body.Close()
	if err = json.Unmarshal(b, &webhook); err != nil {
		h.logger.Error("decode webhook event", "error", err)
		return
	}

	switch webhook.Type {
	case "KYC_STATUS":
		var event models.KYCStatus
		if err = json.Unmarshal(webhook.Payload, &event); err != nil {
			h.logger.Error("decode kyc status payload", "event_id", webhook.Id, "error", err)
			return
		}

		status := kycflow.ParseStatus(event.Status)
		if status == kycflow.StatusUnknown {
			h.logger.Warn("unrecognized status in webhook", "event_id", webhook.Id, "raw", event.Status)
		}

		current, _ := h.store.Get(r.Context(), event.UserId)
		if _, applied := h.store.Apply(r.Context(), event.UserId, status, event.Status, current.Version); !applied {
			h.logger.Debug("stale webhook status discarded", "user_id", event.UserId, "raw", event.Status)
		}
	default:
		h.logger.Debug("ignoring webhook event", "event_id", webhook.Id, "event_type", webhook.Type)
	}
}
