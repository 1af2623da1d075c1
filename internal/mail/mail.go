package mail

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/nuxtvisa/visa-portal/internal/content"
	"github.com/nuxtvisa/visa-portal/internal/dependency"
	"github.com/nuxtvisa/visa-portal/internal/entity"
	gerr "github.com/nuxtvisa/visa-portal/internal/errors"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

type Config struct {
	APIKey         string        `mapstructure:"sendgrid_api_key"`
	FromEmail      string        `mapstructure:"from_email"`
	FromName       string        `mapstructure:"from_email_name"`
	ReplyTo        string        `mapstructure:"reply_to"`
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
}

// Sender delivers one message and reports the provider status code.
type Sender interface {
	Send(ctx context.Context, m *mail.SGMailV3) (status int, body string, err error)
}

type sendgridSender struct {
	cli *sendgrid.Client
}

func (s *sendgridSender) Send(ctx context.Context, m *mail.SGMailV3) (int, string, error) {
	resp, err := s.cli.SendWithContext(ctx, m)
	if err != nil {
		return 0, "", err
	}
	return resp.StatusCode, resp.Body, nil
}

// Mailer renders notifications into mail_queue and a worker delivers them.
type Mailer struct {
	cli            Sender
	mailRepository dependency.Mail
	cs             *content.Store
	from           *mail.Email
	c              *Config
	ctx            context.Context
	cancel         context.CancelFunc
	tmpl           *template.Template
}

// New creates a mailer. Without an API key mails are only queued.
func New(c *Config, mailRepository dependency.Mail, cs *content.Store) (*Mailer, error) {
	var cli Sender
	if c.APIKey != "" {
		cli = &sendgridSender{cli: sendgrid.NewSendClient(c.APIKey)}
	}
	return newMailer(c, cli, mailRepository, cs)
}

func newMailer(c *Config, cli Sender, mailRepository dependency.Mail, cs *content.Store) (*Mailer, error) {
	if cli != nil && (c.FromEmail == "" || c.FromName == "") {
		return nil, fmt.Errorf("incomplete config: from_email and from_email_name are required")
	}
	if c.WorkerInterval <= 0 {
		c.WorkerInterval = time.Minute
	}

	tmpl, err := template.ParseFS(templatesFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}

	return &Mailer{
		cli:            cli,
		mailRepository: mailRepository,
		cs:             cs,
		from:           mail.NewEmail(c.FromName, c.FromEmail),
		c:              c,
		tmpl:           tmpl,
	}, nil
}

func (m *Mailer) buildMessage(qm *entity.QueuedMail) *mail.SGMailV3 {
	msg := mail.NewV3Mail()
	msg.SetFrom(m.from)
	msg.Subject = qm.Subject

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail("", qm.To))
	msg.AddPersonalizations(p)
	msg.AddContent(mail.NewContent("text/html", qm.Html))

	if m.c.ReplyTo != "" {
		msg.SetReplyTo(mail.NewEmail(m.c.FromName, m.c.ReplyTo))
	}
	return msg
}

func (m *Mailer) sendRaw(ctx context.Context, qm *entity.QueuedMail) error {
	if qm.To == "" || qm.Html == "" {
		return gerr.BadMailRequest
	}
	status, body, err := m.cli.Send(ctx, m.buildMessage(qm))
	if err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}
	if status == http.StatusTooManyRequests {
		return gerr.MailApiLimitReached
	}
	if status >= http.StatusMultipleChoices {
		return fmt.Errorf("error sending email bad status code: %s, status code: %d", body, status)
	}
	return nil
}
