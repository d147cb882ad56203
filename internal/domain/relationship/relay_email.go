package relationship

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/up4/up4-api/internal/pkg/email"
)

// EmailSender sends a rendered email message
type EmailSender interface {
	Send(ctx context.Context, msg *email.Message) error
}

// EmailRelay implements ModerationRelay by mailing reports to the
// support team.
type EmailRelay struct {
	sender       EmailSender
	supportEmail string
	tmpl         *template.Template
}

// NewEmailRelay creates an email-backed moderation relay
func NewEmailRelay(sender EmailSender, supportEmail string) (*EmailRelay, error) {
	tmpl, err := template.New("report").Parse(email.ReportTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse report template: %w", err)
	}
	return &EmailRelay{
		sender:       sender,
		supportEmail: supportEmail,
		tmpl:         tmpl,
	}, nil
}

// SendReport renders and delivers the report to support
func (r *EmailRelay) SendReport(ctx context.Context, report *Report) error {
	var buf bytes.Buffer
	err := r.tmpl.Execute(&buf, map[string]interface{}{
		"ReporterUserID": report.ReporterUserID,
		"ReportedUserID": report.ReportedUserID,
		"Message":        report.Message,
		"CreatedAt":      report.CreatedAt.Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("render report email: %w", err)
	}

	return r.sender.Send(ctx, &email.Message{
		To:          r.supportEmail,
		ToName:      "Support Team",
		Subject:     fmt.Sprintf("Report User ID: %s", report.ReportedUserID),
		HTMLContent: buf.String(),
		TextContent: report.Message,
	})
}
