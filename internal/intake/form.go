package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"go-treeservices-backend/internal/domain"

	"github.com/google/uuid"
)

// Status is the user-visible state of the form.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

const (
	defaultNoticeTTL = 5 * time.Second

	// errorNotice always offers the non-digital escape hatch.
	errorNotice = "Something went wrong. Please try again, or call us on 0412 345 678."
)

// Form is the consultation form state machine. All methods are safe for
// concurrent use; only one submission can be in flight at a time.
type Form struct {
	mu          sync.Mutex
	draft       Draft
	attachments []*Attachment
	errors      FieldErrors
	status      Status
	notice      string
	noticeTimer *time.Timer
	noticeSeq   uint64
	inFlight    bool
	closed      bool

	endpoint  string
	client    *http.Client
	noticeTTL time.Duration
}

// NewForm creates a form that submits to the given consultation endpoint.
func NewForm(endpoint string) *Form {
	return &Form{
		status:    StatusIdle,
		endpoint:  endpoint,
		client:    &http.Client{Timeout: 30 * time.Second},
		noticeTTL: defaultNoticeTTL,
	}
}

// SetDraft replaces the draft fields.
func (f *Form) SetDraft(d Draft) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = d
}

// Draft returns a copy of the current draft fields.
func (f *Form) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Errors returns the inline field errors from the last validation.
func (f *Form) Errors() FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errors
}

// Status returns the current form status.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Notice returns the transient banner text, if any.
func (f *Form) Notice() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.notice
}

// Attachments returns the pending attachments in submission order.
func (f *Form) Attachments() []Attachment {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Attachment, len(f.attachments))
	for i, a := range f.attachments {
		out[i] = Attachment{ID: a.ID, Name: a.Name, Data: a.Data}
	}
	return out
}

// AddImages appends the selected files up to the image cap, preserving
// order, and returns how many were accepted. When a selection would exceed
// the cap only the remaining slots are filled and a transient over-cap
// notice is shown; previews of rejected files are released immediately.
func (f *Form) AddImages(files []File) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	remaining := MaxImages - len(f.attachments)
	if remaining < 0 {
		remaining = 0
	}

	accepted := 0
	for _, file := range files {
		if accepted >= remaining {
			if file.Preview != nil {
				_ = file.Preview.Close()
			}
			continue
		}
		f.attachments = append(f.attachments, &Attachment{
			ID:      uuid.NewString(),
			Name:    file.Name,
			Data:    file.Data,
			preview: file.Preview,
		})
		accepted++
	}

	if accepted < len(files) {
		f.setNoticeLocked(fmt.Sprintf("Maximum %d images allowed", MaxImages), f.noticeTTL)
	}

	return accepted
}

// RemoveImage removes the attachment with the given id and releases its
// preview resource. Returns false when no such attachment exists.
func (f *Form) RemoveImage(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, a := range f.attachments {
		if a.ID == id {
			a.releasePreview()
			f.attachments = append(f.attachments[:i], f.attachments[i+1:]...)
			return true
		}
	}
	return false
}

// MoveImage moves the attachment with the given id to position to,
// shifting the others. Out-of-range positions are clamped.
func (f *Form) MoveImage(id string, to int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	from := -1
	for i, a := range f.attachments {
		if a.ID == id {
			from = i
			break
		}
	}
	if from == -1 {
		return false
	}

	if to < 0 {
		to = 0
	}
	if to > len(f.attachments)-1 {
		to = len(f.attachments) - 1
	}
	if to == from {
		return true
	}

	a := f.attachments[from]
	f.attachments = append(f.attachments[:from], f.attachments[from+1:]...)
	f.attachments = append(f.attachments[:to], append([]*Attachment{a}, f.attachments[to:]...)...)
	return true
}

// Submit validates the draft and, when valid, encodes the pending images
// and posts the consultation request. Validation failure surfaces field
// errors and performs no network call. A submit while another submission
// is in flight is ignored. On success the draft and attachments are
// cleared (previews released) and a success notice is shown that clears
// itself after a few seconds. On failure the draft is preserved so the
// user can retry without re-entering data.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.closed || f.inFlight {
		f.mu.Unlock()
		return nil
	}

	errs := f.draft.Validate()
	f.errors = errs
	if !errs.OK() {
		f.mu.Unlock()
		return nil
	}

	req := f.buildRequestLocked()
	f.inFlight = true
	f.status = StatusSubmitting
	f.mu.Unlock()

	err := f.post(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight = false

	if err != nil {
		f.status = StatusError
		f.setPersistentNoticeLocked(errorNotice)
		return err
	}

	f.draft = Draft{}
	f.errors = FieldErrors{}
	for _, a := range f.attachments {
		a.releasePreview()
	}
	f.attachments = nil
	f.status = StatusSuccess
	f.setNoticeLocked("Thanks! Your consultation request has been sent.", f.noticeTTL)
	return nil
}

// buildRequestLocked assembles the wire payload from the draft and the
// pending attachments. Caller must hold f.mu.
func (f *Form) buildRequestLocked() *domain.ConsultationRequest {
	name := strings.TrimSpace(strings.TrimSpace(f.draft.FirstName) + " " + strings.TrimSpace(f.draft.LastName))

	message := f.draft.Message
	if suburb := strings.TrimSpace(f.draft.Suburb); suburb != "" {
		message = "Location: " + suburb + "\n\n" + message
	}

	req := &domain.ConsultationRequest{
		Name:    name,
		Email:   strings.TrimSpace(f.draft.Email),
		Phone:   strings.TrimSpace(f.draft.Phone),
		Service: f.draft.Service,
		Message: message,
	}
	for _, a := range f.attachments {
		req.Images = append(req.Images, a.DataURL())
		req.ImageNames = append(req.ImageNames, a.Name)
	}
	return req
}

// post sends the request and maps any non-success response to an error.
// No automatic retry: a failure requires an explicit user resubmission.
func (f *Form) post(ctx context.Context, req *domain.ConsultationRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to encode consultation request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build consultation request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to submit consultation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("consultation request rejected: status %d", resp.StatusCode)
	}
	return nil
}

// setNoticeLocked shows a transient banner that clears itself after ttl.
// A success status falls back to idle when its notice clears. The
// sequence number invalidates any earlier timer whose callback has not
// run yet, so it cannot clear a notice it did not set.
// Caller must hold f.mu.
func (f *Form) setNoticeLocked(text string, ttl time.Duration) {
	f.noticeSeq++
	seq := f.noticeSeq
	f.notice = text
	if f.noticeTimer != nil {
		f.noticeTimer.Stop()
	}
	f.noticeTimer = time.AfterFunc(ttl, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.noticeSeq != seq {
			return
		}
		f.notice = ""
		if f.status == StatusSuccess {
			f.status = StatusIdle
		}
	})
}

// setPersistentNoticeLocked shows a banner that stays until replaced,
// cancelling any pending auto-clear. Caller must hold f.mu.
func (f *Form) setPersistentNoticeLocked(text string) {
	f.noticeSeq++
	if f.noticeTimer != nil {
		f.noticeTimer.Stop()
		f.noticeTimer = nil
	}
	f.notice = text
}

// Close releases every locally-held preview resource and stops timers.
// The form cannot submit after Close.
func (f *Form) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	if f.noticeTimer != nil {
		f.noticeTimer.Stop()
		f.noticeTimer = nil
	}
	for _, a := range f.attachments {
		a.releasePreview()
	}
	f.attachments = nil
	return nil
}
