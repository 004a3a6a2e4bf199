// Package mail sends the monthly reminder email. The message carries a
// self-addressed calendar invite so the reminder lands in the calendar, not
// just the inbox.
package mail

import (
	"context"
	"fmt"
	"strings"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/dori/clockin/internal/config"
)

const (
	smtpHost = "smtp.gmail.com"
	smtpPort = 587
)

// Sender delivers reminder mail through the configured account.
type Sender struct {
	cfg *config.MailConfig
}

// NewSender creates a sender from a verified mail configuration.
func NewSender(cfg *config.MailConfig) *Sender {
	return &Sender{cfg: cfg}
}

func newClient(cfg *config.MailConfig) (*gomail.Client, error) {
	return gomail.NewClient(smtpHost,
		gomail.WithPort(smtpPort),
		gomail.WithTLSPortPolicy(gomail.TLSMandatory),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Email),
		gomail.WithPassword(cfg.AppPassword),
	)
}

// Verify checks the credentials against the SMTP server without sending
// anything. Called before a new mail configuration is saved.
func Verify(ctx context.Context, cfg *config.MailConfig) error {
	client, err := newClient(cfg)
	if err != nil {
		return fmt.Errorf("configuring mail client: %w", err)
	}
	if err := client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("mail login failed: %w", err)
	}
	return client.Close()
}

// Reminder describes one monthly reminder message.
type Reminder struct {
	// Date is the last working day of the month, the day the invite lands on.
	Date time.Time
	// MonthName is the human month label, e.g. "June 2026".
	MonthName string
	// SubmitCommand is the shell command the mail suggests running.
	SubmitCommand string
}

// Send delivers the reminder to the account's own address.
func (s *Sender) Send(ctx context.Context, r Reminder) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.cfg.Email); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(s.cfg.Email); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(fmt.Sprintf("Timesheet reminder: %s", r.MonthName))
	msg.SetBodyString(gomail.TypeTextPlain, textBody(r))
	msg.AddAlternativeString(gomail.TypeTextHTML, htmlBody(r))
	invite := BuildInvite(r, s.cfg.Email)
	if err := msg.AttachReader("reminder.ics", strings.NewReader(invite),
		gomail.WithFileContentType(gomail.ContentType("text/calendar; method=REQUEST"))); err != nil {
		return fmt.Errorf("attaching invite: %w", err)
	}

	client, err := newClient(s.cfg)
	if err != nil {
		return fmt.Errorf("configuring mail client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending reminder: %w", err)
	}
	return nil
}

func textBody(r Reminder) string {
	return fmt.Sprintf(
		"The last working day of %s is %s.\n\n"+
			"Make sure your hours are complete before the month closes.\n\n"+
			"Fill remaining days from the terminal:\n\n    %s\n",
		r.MonthName, r.Date.Format("Monday, 2 January"), r.SubmitCommand)
}

func htmlBody(r Reminder) string {
	return fmt.Sprintf(
		"<p>The last working day of <b>%s</b> is <b>%s</b>.</p>"+
			"<p>Make sure your hours are complete before the month closes.</p>"+
			"<p>Fill remaining days from the terminal:</p>"+
			"<pre>%s</pre>",
		r.MonthName, r.Date.Format("Monday, 2 January"), r.SubmitCommand)
}
