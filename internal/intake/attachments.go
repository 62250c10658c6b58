package intake

import (
	"encoding/base64"
	"io"
	"net/http"
)

// MaxImages is the most photos a single consultation request may carry.
const MaxImages = 5

// File is one user-selected file handed to AddImages.
// Preview is an optional locally-held preview resource; the form takes
// ownership of it and releases it when the attachment leaves the form.
type File struct {
	Name    string
	Data    []byte
	Preview io.Closer
}

// Attachment is a pending image awaiting submission.
type Attachment struct {
	ID   string
	Name string
	Data []byte

	preview io.Closer
}

// releasePreview closes the locally-held preview resource, once.
func (a *Attachment) releasePreview() {
	if a.preview != nil {
		_ = a.preview.Close()
		a.preview = nil
	}
}

// DataURL encodes the attachment for transport: a self-describing header
// with the sniffed content type, then the base64 payload.
func (a *Attachment) DataURL() string {
	contentType := http.DetectContentType(a.Data)
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(a.Data)
}
