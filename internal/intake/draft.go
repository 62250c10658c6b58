// Package intake implements the consultation form: draft validation,
// pending image attachments with locally-held previews, and submission to
// the consultation endpoint. It is the client-side half of the pipeline;
// its checks are a UX convenience, the server re-validates authoritatively.
package intake

import (
	"errors"
	"strings"

	"go-treeservices-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

var validate = validation.New()

// Draft holds the in-progress form fields before submission.
type Draft struct {
	FirstName string `validate:"required"`
	LastName  string
	Email     string `validate:"required,basic_email"`
	Phone     string `validate:"required,consult_phone"`
	Suburb    string
	Service   string
	Message   string `validate:"required"`
}

// FieldErrors holds one inline error message per validated input.
// An empty string means the field passed.
type FieldErrors struct {
	FirstName string
	Email     string
	Phone     string
	Message   string
}

// OK reports whether every validated field passed.
func (e FieldErrors) OK() bool {
	return e == FieldErrors{}
}

// Validate checks each field independently and returns the per-field
// error messages. Fields are trimmed before the presence checks.
func (d Draft) Validate() FieldErrors {
	trimmed := d
	trimmed.FirstName = strings.TrimSpace(d.FirstName)
	trimmed.Email = strings.TrimSpace(d.Email)
	trimmed.Phone = strings.TrimSpace(d.Phone)
	trimmed.Message = strings.TrimSpace(d.Message)

	var errs FieldErrors

	err := validate.Struct(trimmed)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Not a field-level failure; pin it to the message slot so the
		// user still sees something actionable.
		errs.Message = err.Error()
		return errs
	}

	for _, e := range verrs {
		msg := validation.FormatFieldError(e)
		switch e.Field() {
		case "FirstName":
			if errs.FirstName == "" {
				errs.FirstName = msg
			}
		case "Email":
			if errs.Email == "" {
				errs.Email = msg
			}
		case "Phone":
			if errs.Phone == "" {
				errs.Phone = msg
			}
		case "Message":
			if errs.Message == "" {
				errs.Message = msg
			}
		}
	}

	return errs
}
