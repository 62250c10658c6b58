package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"strings"

	"go-treeservices-backend/internal/domain"
	"go-treeservices-backend/pkg/email"
)

type consultationUsecase struct {
	sender            email.Sender
	fromAddress       string
	notificationEmail string
}

// NewConsultationUsecase creates a new consultation usecase
func NewConsultationUsecase(sender email.Sender, fromAddress, notificationEmail string) domain.ConsultationUsecase {
	return &consultationUsecase{
		sender:            sender,
		fromAddress:       fromAddress,
		notificationEmail: notificationEmail,
	}
}

// SendConsultation validates the request and relays it as two emails:
// a lead notification to the business owner, then a confirmation to the
// customer. The sends are strictly sequential; a failed lead notification
// means the confirmation is never attempted.
func (uc *consultationUsecase) SendConsultation(ctx context.Context, req *domain.ConsultationRequest) error {
	// Authoritative validation: presence only. Format checks are a UX concern
	// enforced by the form; the server deliberately does not re-check them.
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Phone) == "" ||
		strings.TrimSpace(req.Message) == "" {
		return domain.ErrMissingRequiredFields
	}

	serviceLabel := domain.ServiceLabel(req.Service)

	attachments, err := prepareAttachments(req.Images, req.ImageNames)
	if err != nil {
		return err
	}

	// Lead notification to the business owner
	thumbnails := make([]template.URL, len(req.Images))
	for i, img := range req.Images {
		thumbnails[i] = template.URL(img)
	}

	leadHTML, err := email.RenderLeadEmail(email.LeadEmailData{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		ServiceLabel: serviceLabel,
		Message:      req.Message,
		Images:       thumbnails,
	})
	if err != nil {
		return err
	}

	lead := &email.Message{
		From:        uc.fromAddress,
		To:          []string{uc.notificationEmail},
		Subject:     fmt.Sprintf("🌳 New Lead: %s - %s", serviceLabel, req.Name),
		HTML:        leadHTML,
		Attachments: attachments,
	}
	if err := uc.sender.Send(ctx, lead); err != nil {
		return fmt.Errorf("failed to send lead notification: %w", err)
	}

	// Confirmation to the customer (no attachments)
	confirmationHTML, err := email.RenderConfirmationEmail(email.ConfirmationEmailData{
		Name:         req.Name,
		ServiceLabel: serviceLabel,
		PhotoCount:   len(req.Images),
	})
	if err != nil {
		return err
	}

	confirmation := &email.Message{
		From:    uc.fromAddress,
		To:      []string{req.Email},
		Subject: "We've Received Your Consultation Request - LMK Tree Services",
		HTML:    confirmationHTML,
	}
	if err := uc.sender.Send(ctx, confirmation); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	return nil
}

// prepareAttachments strips the data-URL header from each encoded image,
// decodes the payload and pairs it with the submitted filename at the same
// position, or a generated fallback when no name was supplied there.
func prepareAttachments(images, names []string) ([]email.Attachment, error) {
	if len(images) == 0 {
		return nil, nil
	}

	attachments := make([]email.Attachment, 0, len(images))
	for i, img := range images {
		payload := img
		if sep := strings.Index(img, ","); sep >= 0 {
			payload = img[sep+1:]
		}

		content, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to decode image %d: %w", i+1, err)
		}

		filename := ""
		if i < len(names) {
			filename = names[i]
		}
		if filename == "" {
			filename = fmt.Sprintf("tree-photo-%d.jpg", i+1)
		}

		attachments = append(attachments, email.Attachment{
			Filename: filename,
			Content:  content,
		})
	}

	return attachments, nil
}
