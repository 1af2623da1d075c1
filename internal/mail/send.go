package mail

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/nuxtvisa/visa-portal/internal/content"
	"github.com/nuxtvisa/visa-portal/internal/entity"
)

const statusUpdateTemplate = "status_update.gohtml"

type statusUpdate struct {
	Lang       string
	Dir        string
	Align      string
	Subject    string
	Greeting   string
	Body       string
	NotesLabel string
	Notes      string
}

// QueueStatusUpdate renders the status notification in the language the
// application was submitted in and stores it for the worker.
func (m *Mailer) QueueStatusUpdate(ctx context.Context, a *entity.VisaApplication) error {
	lang, ok := m.cs.Parse(a.Locale)
	if !ok {
		lang = content.Arabic
	}

	status := m.cs.StatusLabel(lang, a.Status)
	data := map[string]any{
		"Status":   status,
		"Name":     a.ApplicantName,
		"VisaType": m.cs.VisaTypeLabel(lang, a.VisaType),
		"Date":     a.CreatedAt.Format("2006-01-02"),
	}

	su := statusUpdate{
		Lang:       lang.String(),
		Dir:        content.Dir(lang),
		Subject:    m.cs.T(lang, "mail.status_subject", data),
		Greeting:   m.cs.T(lang, "mail.status_greeting", data),
		Body:       m.cs.T(lang, "mail.status_body", data),
		NotesLabel: m.cs.T(lang, "mail.notes_label"),
		Notes:      a.AdminNotes,
	}
	su.Align = "left"
	if su.Dir == "rtl" {
		su.Align = "right"
	}

	html := &strings.Builder{}
	if err := m.tmpl.ExecuteTemplate(html, statusUpdateTemplate, su); err != nil {
		return fmt.Errorf("error executing template: %w", err)
	}

	_, err := m.mailRepository.AddMail(ctx, &entity.QueuedMail{
		ApplicationId: sql.NullString{String: a.Id, Valid: true},
		To:            a.ApplicantEmail,
		Subject:       su.Subject,
		Html:          html.String(),
	})
	if err != nil {
		return fmt.Errorf("error inserting email: %w", err)
	}
	return nil
}
