package kycflow

// Attachment is a locally selected image, validated before it enters a draft.
type Attachment struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte

	// url is set after a successful upload so a retried submission reuses
	// the asset instead of uploading it again.
	url  string
	text string
}

// URL returns the blob-storage URL once the attachment has been uploaded.
func (a *Attachment) URL() string { return a.url }

// Text returns the OCR output for this attachment, if any.
func (a *Attachment) Text() string { return a.text }

// Draft is a verification request under construction. It lives entirely
// client-side and is submitted atomically once both images are attached.
type Draft struct {
	IDType string

	front *Attachment
	back  *Attachment
}

// AttachFront validates and stores the front image. Rejected files never
// enter the draft and are never uploaded.
func (d *Draft) AttachFront(a Attachment) error {
	if err := checkFile(a); err != nil {
		return err
	}
	d.front = &a
	return nil
}

// AttachBack validates and stores the back image.
func (d *Draft) AttachBack(a Attachment) error {
	if err := checkFile(a); err != nil {
		return err
	}
	d.back = &a
	return nil
}

func (d *Draft) Front() *Attachment { return d.front }
func (d *Draft) Back() *Attachment  { return d.back }

func checkFile(a Attachment) error {
	if !AllowedContentType(a.ContentType) {
		return ErrInvalidFileType
	}
	if a.Size > MaxFileSize {
		return ErrFileTooLarge
	}
	return nil
}

// Validate decides whether the draft may be submitted given the current
// cached status. It is pure and performs no I/O.
func Validate(d *Draft, current Status) error {
	if current.BlocksSubmit() {
		return ErrAlreadySubmitted
	}
	if d.IDType == "" {
		return ErrMissingIDType
	}
	if d.front == nil || d.back == nil {
		return ErrMissingImage
	}
	return nil
}
