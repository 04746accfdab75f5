package kycflow

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"time"
)

//go:generate mockgen -destination ./mocks/kycflow_mocks.go -package mock_kycflow . ITokenProvider,IUploader,IVerificationClient,ITextExtractor,IStatusStore

// ITokenProvider supplies the ambient bearer credential. Implementations
// return ErrUnauthenticated when no session exists.
type ITokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// TokenProviderFunc adapts a function to ITokenProvider.
type TokenProviderFunc func(ctx context.Context) (string, error)

func (f TokenProviderFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

// IUploader is the type needed for the workflow to persist images in blob
// storage. The returned URL must be publicly retrievable.
type IUploader interface {
	UploadImage(ctx context.Context, name, contentType string, r io.Reader, size int64) (string, error)
}

// SubmitRequest is the structured verification request sent to the backend
// once both assets are uploaded.
type SubmitRequest struct {
	IDType    string `json:"idType"`
	FrontURL  string `json:"frontUrl"`
	BackURL   string `json:"backUrl"`
	FrontText string `json:"frontText,omitempty"`
	BackText  string `json:"backText,omitempty"`
}

// IVerificationClient is the type needed for the workflow to talk to the
// verification backend.
type IVerificationClient interface {
	// FetchStatus returns the raw backend status string.
	FetchStatus(ctx context.Context, token string) (string, error)
	// Submit sends the structured request and returns the backend message.
	Submit(ctx context.Context, token string, req *SubmitRequest) (string, error)
}

// ITextExtractor runs best-effort OCR on a selected image. Failures never
// block submission.
type ITextExtractor interface {
	ExtractText(ctx context.Context, filename string, r io.Reader) (string, error)
}

// IStatusStore keeps the versioned best-known status per user. Apply only
// succeeds when the caller's observed version is still current, so the
// poller and the submitter cannot clobber each other's newer writes.
type IStatusStore interface {
	Get(ctx context.Context, userID string) (Entry, bool)
	Apply(ctx context.Context, userID string, status Status, raw string, observed uint64) (Entry, bool)
}

// SubmitResult is returned on a fully successful submission.
type SubmitResult struct {
	Message  string
	FrontURL string
	BackURL  string
	Status   Entry
}

type Option func(w *Workflow)

// Workflow drives one user's KYC submission: status polling, the submit
// gate, upload orchestration and optional OCR.
type Workflow struct {
	userID     string
	tokens     ITokenProvider
	verifier   IVerificationClient
	uploader   IUploader
	extractor  ITextExtractor
	store      IStatusStore
	logger     *slog.Logger
	interval   time.Duration
	ocrTimeout time.Duration

	submitting atomic.Bool
}

// Status returns the cached status without touching the network.
func (w *Workflow) Status(ctx context.Context) Entry {
	e, ok := w.store.Get(ctx, w.userID)
	if !ok {
		return Entry{Status: StatusNotSubmitted}
	}
	return e
}

// FetchStatus reads the backend status and updates the cache. Without a
// session token the read is skipped and the status is treated as
// not_submitted; the submit gate still refuses unauthenticated submissions.
func (w *Workflow) FetchStatus(ctx context.Context) (Entry, error) {
	token, err := w.tokens.Token(ctx)
	if err != nil {
		if errors.Is(err, ErrUnauthenticated) {
			w.logger.Debug("status fetch skipped: no session token", "user_id", w.userID)
			return Entry{Status: StatusNotSubmitted}, nil
		}
		return w.applyError(ctx, err)
	}

	raw, err := w.verifier.FetchStatus(ctx, token)
	if err != nil {
		return w.applyError(ctx, err)
	}

	status := ParseStatus(raw)
	if status == StatusUnknown {
		w.logger.Warn("unrecognized verification status", "user_id", w.userID, "raw", raw)
	}

	observed := w.Status(ctx).Version
	entry, applied := w.store.Apply(ctx, w.userID, status, raw, observed)
	if !applied {
		w.logger.Debug("stale status fetch discarded", "user_id", w.userID, "raw", raw)
	}
	return entry, nil
}

func (w *Workflow) applyError(ctx context.Context, cause error) (Entry, error) {
	w.logger.Error("status fetch failed", "user_id", w.userID, "error", cause)
	observed := w.Status(ctx).Version
	entry, _ := w.store.Apply(ctx, w.userID, StatusError, "", observed)
	return entry, &StatusFetchError{Err: cause}
}

// Poll fetches the status once, then on a fixed interval until ctx is
// cancelled. Fetch failures are logged and retried on the next tick only.
func (w *Workflow) Poll(ctx context.Context) {
	if _, err := w.FetchStatus(ctx); err != nil {
		w.logger.Warn("initial status fetch failed", "user_id", w.userID, "error", err)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := w.FetchStatus(ctx); err != nil {
				w.logger.Warn("status fetch failed", "user_id", w.userID, "error", err)
			}
		}
	}
}

// Submit validates the draft, uploads both images and sends the structured
// request. Uploads run front then back; either failure aborts before the
// submission call. On success the cached status moves to pending without
// waiting for the next poll.
func (w *Workflow) Submit(ctx context.Context, d *Draft) (*SubmitResult, error) {
	if !w.submitting.CompareAndSwap(false, true) {
		return nil, ErrSubmitInFlight
	}
	defer w.submitting.Store(false)

	current := w.Status(ctx)
	if err := Validate(d, current.Status); err != nil {
		return nil, err
	}

	token, err := w.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	w.extract(ctx, d)

	if err := w.uploadAttachment(ctx, SideFront, d.front); err != nil {
		return nil, err
	}
	if err := w.uploadAttachment(ctx, SideBack, d.back); err != nil {
		return nil, err
	}

	req := &SubmitRequest{
		IDType:    d.IDType,
		FrontURL:  d.front.url,
		BackURL:   d.back.url,
		FrontText: d.front.text,
		BackText:  d.back.text,
	}
	message, err := w.verifier.Submit(ctx, token, req)
	if err != nil {
		w.logger.Error("verification submit failed", "user_id", w.userID, "error", err)
		return nil, &SubmitError{Err: err}
	}
	if message == "" {
		message = "KYC details submitted successfully."
	}

	// the uploads take long enough for a poll answer to land in between;
	// the pending write must still win, so re-read the version until it does
	var entry Entry
	for {
		observed := w.Status(ctx).Version
		var applied bool
		entry, applied = w.store.Apply(ctx, w.userID, StatusPending, string(StatusPending), observed)
		if applied {
			break
		}
	}
	w.logger.Info("verification submitted", "user_id", w.userID, "id_type", d.IDType)

	return &SubmitResult{
		Message:  message,
		FrontURL: d.front.url,
		BackURL:  d.back.url,
		Status:   entry,
	}, nil
}

func (w *Workflow) uploadAttachment(ctx context.Context, side Side, a *Attachment) error {
	if a.url != "" {
		return nil
	}
	url, err := w.uploader.UploadImage(ctx, a.Name, a.ContentType, bytes.NewReader(a.Data), a.Size)
	if err != nil {
		w.logger.Error("image upload failed", "user_id", w.userID, "side", string(side), "error", err)
		return &UploadError{Side: side, Err: err}
	}
	a.url = url
	return nil
}

// extract runs OCR over attachments that have no text yet. Best effort: any
// failure is logged and swallowed.
func (w *Workflow) extract(ctx context.Context, d *Draft) {
	if w.extractor == nil {
		return
	}
	for _, a := range []*Attachment{d.front, d.back} {
		if a.text != "" {
			continue
		}
		octx, cancel := context.WithTimeout(ctx, w.ocrTimeout)
		text, err := w.extractor.ExtractText(octx, a.Name, bytes.NewReader(a.Data))
		cancel()
		if err != nil {
			w.logger.Warn("text extraction failed", "user_id", w.userID, "file", a.Name, "error", err)
			continue
		}
		a.text = text
	}
}

// WithExtractor enables best-effort OCR of attached images before upload.
func WithExtractor(e ITextExtractor) Option {
	return func(w *Workflow) {
		w.extractor = e
	}
}

// WithLogger is a Option that allows you set the workflow logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *Workflow) {
		w.logger = l
	}
}

// WithPollInterval is a Option that allows you set the polling cadence.
// Default value is 5 seconds.
func WithPollInterval(d time.Duration) Option {
	return func(w *Workflow) {
		if d > 0 {
			w.interval = d
		}
	}
}

// WithOCRTimeout bounds a single OCR invocation. Default is 30 seconds.
func WithOCRTimeout(d time.Duration) Option {
	return func(w *Workflow) {
		if d > 0 {
			w.ocrTimeout = d
		}
	}
}

func NewWorkflow(userID string, tokens ITokenProvider, verifier IVerificationClient, uploader IUploader, store IStatusStore, options ...Option) *Workflow {
	w := &Workflow{
		userID:     userID,
		tokens:     tokens,
		verifier:   verifier,
		uploader:   uploader,
		store:      store,
		logger:     slog.Default(),
		interval:   DefaultPollInterval,
		ocrTimeout: defaultOCRTimeout,
	}

	for _, o := range options {
		o(w)
	}

	return w
}
