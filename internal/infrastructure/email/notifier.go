package email

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"cordwain/internal/domain/ticket"
	"cordwain/internal/shared/config"
	"cordwain/internal/shared/logger"
)

// SMTPNotifier mails ticket events to the review inbox. Every send runs
// best-effort: ticket use cases log a failed notification and move on.
type SMTPNotifier struct {
	cfg     *config.EmailConfig
	baseURL string
	dialer  *gomail.Dialer
	to      []string
	logger  logger.Interface
}

func NewSMTPNotifier(cfg *config.EmailConfig, baseURL string, recipients []string) *SMTPNotifier {
	return &SMTPNotifier{
		cfg:     cfg,
		baseURL: strings.TrimRight(baseURL, "/"),
		dialer:  gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		to:      recipients,
		logger:  logger.NewLogger().With("component", "email"),
	}
}

func (n *SMTPNotifier) NotifyTicketCreated(ctx context.Context, t *ticket.Ticket) error {
	subject := fmt.Sprintf("[Cordwain] New ticket: %s", t.Title())
	body := fmt.Sprintf(`A new ticket was opened.

Scope:    %s
Title:    %s
Priority: %s

%s/orders/%d/tickets/%d
`, t.Scope().String(), t.Title(), t.Priority().String(), n.baseURL, t.OrderID(), t.ID())

	return n.send(subject, body)
}

func (n *SMTPNotifier) NotifyCommentAdded(ctx context.Context, t *ticket.Ticket, c *ticket.Comment) error {
	text := c.Text(ticket.LangEnglish)
	if text == "" {
		text = c.Text(ticket.LangGerman)
	}
	if text == "" {
		text = fmt.Sprintf("(%d attachment(s))", len(c.Attachments()))
	}

	subject := fmt.Sprintf("[Cordwain] New comment on: %s", t.Title())
	body := fmt.Sprintf(`%s commented on ticket %q (%s):

%s

%s/orders/%d/tickets/%d
`, c.AuthorName(), t.Title(), t.Scope().String(), text, n.baseURL, t.OrderID(), t.ID())

	return n.send(subject, body)
}

func (n *SMTPNotifier) send(subject, body string) error {
	if !n.cfg.Enabled || len(n.to) == 0 {
		n.logger.Debugw("email notifications disabled, skipping", "subject", subject)
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.cfg.FromAddress, n.cfg.FromName)
	m.SetHeader("To", n.to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}

	return nil
}
