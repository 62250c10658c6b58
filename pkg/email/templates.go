package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// LeadEmailData holds the data for the business lead notification email.
type LeadEmailData struct {
	Name         string
	Phone        string
	Email        string
	ServiceLabel string
	Message      string
	// Images carries the submitted data URLs so the gallery renders inline
	// thumbnails. template.URL is required: html/template rejects data: URLs.
	Images []template.URL
}

// ConfirmationEmailData holds the data for the customer confirmation email.
type ConfirmationEmailData struct {
	Name         string
	ServiceLabel string
	PhotoCount   int
}

// leadEmailTemplate is the HTML template for the lead notification sent to
// the business owner.
const leadEmailTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background-color: #16a34a; color: white; padding: 20px; border-radius: 8px 8px 0 0;">
    <h2 style="margin: 0;">🌳 New Consultation Request!</h2>
  </div>

  <div style="background-color: #f5f5f5; padding: 20px; border-radius: 0 0 8px 8px;">
    <h3 style="color: #333; margin-top: 0;">Client Details</h3>
    <table style="width: 100%; border-collapse: collapse;">
      <tr style="border-bottom: 1px solid #ddd;">
        <td style="padding: 12px 8px; font-weight: bold;">Name:</td>
        <td style="padding: 12px 8px;">{{.Name}}</td>
      </tr>
      <tr style="border-bottom: 1px solid #ddd;">
        <td style="padding: 12px 8px; font-weight: bold;">Phone:</td>
        <td style="padding: 12px 8px;"><a href="tel:{{.Phone}}" style="color: #16a34a; text-decoration: none; font-weight: bold;">{{.Phone}}</a></td>
      </tr>
      <tr style="border-bottom: 1px solid #ddd;">
        <td style="padding: 12px 8px; font-weight: bold;">Email:</td>
        <td style="padding: 12px 8px;"><a href="mailto:{{.Email}}" style="color: #16a34a; text-decoration: none;">{{.Email}}</a></td>
      </tr>
      <tr style="border-bottom: 1px solid #ddd;">
        <td style="padding: 12px 8px; font-weight: bold;">Service:</td>
        <td style="padding: 12px 8px;"><span style="background: #dcfce7; padding: 4px 12px; border-radius: 12px; color: #166534;">{{.ServiceLabel}}</span></td>
      </tr>
    </table>

    <h3 style="color: #333; margin-top: 20px;">Project Description</h3>
    <div style="background: white; padding: 15px; border-radius: 8px; border-left: 4px solid #16a34a;">
      <p style="white-space: pre-wrap; margin: 0; line-height: 1.6;">{{.Message}}</p>
    </div>

    {{if .Images}}
    <h3 style="color: #333; margin-top: 20px;">Attached Photos ({{len .Images}})</h3>
    <div style="display: grid; grid-template-columns: repeat(auto-fill, minmax(150px, 1fr)); gap: 10px; margin-top: 10px;">
      {{range $idx, $img := .Images}}
      <img src="{{$img}}" alt="Tree photo {{inc $idx}}" style="width: 100%; height: 150px; object-fit: cover; border-radius: 8px; border: 2px solid #ddd;" />
      {{end}}
    </div>
    {{else}}
    <p style="color: #666; font-style: italic;">No photos attached</p>
    {{end}}

    <div style="margin-top: 20px; padding: 15px; background: #fff3cd; border-radius: 8px; border-left: 4px solid #ffc107;">
      <p style="margin: 0; color: #856404;"><strong>⏰ Action Required:</strong> Please respond within 24 hours for best conversion rate.</p>
    </div>
  </div>
</div>`

// confirmationEmailTemplate is the HTML template for the confirmation sent
// back to the customer.
const confirmationEmailTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background-color: #16a34a; color: white; padding: 30px 20px; text-align: center; border-radius: 8px 8px 0 0;">
    <h1 style="margin: 0; font-size: 28px;">Thank You, {{.Name}}!</h1>
    <p style="margin: 10px 0 0 0; font-size: 16px; opacity: 0.9;">Your consultation request has been received</p>
  </div>

  <div style="padding: 30px 20px; background: #f9fafb; border-radius: 0 0 8px 8px;">
    <p style="font-size: 16px; color: #333; line-height: 1.6;">
      We've received your request for <strong style="color: #16a34a;">{{.ServiceLabel}}</strong> and our team is reviewing it now.
    </p>

    {{if gt .PhotoCount 0}}
    <div style="background: #dcfce7; padding: 15px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #16a34a;">
      <p style="margin: 0; color: #166534;">✅ <strong>{{.PhotoCount}} photo(s)</strong> received - this will help us provide an accurate quote!</p>
    </div>
    {{end}}

    <div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0; border: 2px solid #16a34a;">
      <h3 style="margin: 0 0 15px 0; color: #16a34a; font-size: 18px;">📋 What Happens Next?</h3>
      <ol style="color: #555; line-height: 1.8; margin: 0; padding-left: 20px;">
        <li>Our expert arborist will review your requirements{{if gt .PhotoCount 0}} and photos{{end}}</li>
        <li>We'll contact you within <strong>24 hours</strong> via phone or email</li>
        <li>We'll schedule a free site visit if needed</li>
        <li>You'll receive a detailed, no-obligation quote</li>
      </ol>
    </div>

    <div style="background: #dcfce7; padding: 20px; border-radius: 8px; text-align: center; margin: 20px 0;">
      <p style="margin: 0 0 10px 0; color: #166534; font-size: 14px; font-weight: 600;">NEED IMMEDIATE ASSISTANCE?</p>
      <a href="tel:0412345678" style="display: inline-block; background: #16a34a; color: white; text-decoration: none; padding: 12px 30px; border-radius: 6px; font-weight: bold; font-size: 18px;">📞 Call 0412 345 678</a>
    </div>

    <p style="font-size: 16px; color: #333; margin-top: 30px;">
      Best regards,<br>
      <strong style="color: #16a34a;">The LMK Tree Services Team</strong>
    </p>
  </div>

  <div style="text-align: center; padding: 20px; color: #666; font-size: 12px;">
    <p style="margin: 5px 0;">LMK Tree Services | Melbourne, Victoria</p>
    <p style="margin: 5px 0;">Phone: 0412 345 678 | Email: kyle@lmktreeservices.com</p>
    <p style="margin: 15px 0 5px 0; color: #999;">Fully Licensed &amp; Insured | ABN: 12 345 678 901</p>
  </div>
</div>`

var templateFuncs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}

var (
	leadTmpl         = template.Must(template.New("lead").Funcs(templateFuncs).Parse(leadEmailTemplate))
	confirmationTmpl = template.Must(template.New("confirmation").Funcs(templateFuncs).Parse(confirmationEmailTemplate))
)

// RenderLeadEmail renders the business lead notification body.
func RenderLeadEmail(data LeadEmailData) (string, error) {
	var body bytes.Buffer
	if err := leadTmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute lead email template: %w", err)
	}
	return body.String(), nil
}

// RenderConfirmationEmail renders the customer confirmation body.
func RenderConfirmationEmail(data ConfirmationEmailData) (string, error) {
	var body bytes.Buffer
	if err := confirmationTmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute confirmation email template: %w", err)
	}
	return body.String(), nil
}
