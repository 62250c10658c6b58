package domain

import (
	"context"
	"errors"
)

// ErrMissingRequiredFields is returned when a consultation request arrives
// without one of name, email, phone or message.
var ErrMissingRequiredFields = errors.New("missing required fields")

// ConsultationRequest represents a consultation form submission.
// Images are inline data-URL encoded strings; ImageNames is aligned by index
// with Images and may be shorter (a fallback filename is generated per slot).
type ConsultationRequest struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Service    string   `json:"service"`
	Message    string   `json:"message"`
	Images     []string `json:"images"`
	ImageNames []string `json:"imageNames"`
}

// serviceLabels maps the service codes the form submits to display labels.
var serviceLabels = map[string]string{
	"tree-removal":  "Tree Removal",
	"tree-lopping":  "Tree Lopping & Pruning",
	"tree-health":   "Tree Health Assessment",
	"emergency":     "Emergency Services",
	"waste-removal": "Green Waste Removal",
	"land-clearing": "Land Clearing",
	"other":         "Other Service",
}

// ServiceLabel resolves a service code to its display label.
// Unknown codes pass through verbatim so new form options degrade gracefully.
func ServiceLabel(code string) string {
	if label, ok := serviceLabels[code]; ok {
		return label
	}
	return code
}

// ConsultationUsecase defines the interface for the consultation pipeline
type ConsultationUsecase interface {
	// SendConsultation validates the request and relays it by email:
	// a lead notification to the operator and a confirmation to the submitter.
	SendConsultation(ctx context.Context, req *ConsultationRequest) error
}
