package notifier

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alp-turan/sugarbyte/internal/config"
	apperrors "github.com/alp-turan/sugarbyte/internal/errors"
	"gopkg.in/gomail.v2"
)

// SMTPNotifier emails the alert to the doctor on record.
type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPNotifier creates an SMTP-backed notifier from config
func NewSMTPNotifier(cfg config.NotifierConfig) (*SMTPNotifier, error) {
	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP port %q: %w", cfg.SMTPPort, err)
	}

	return &SMTPNotifier{
		dialer: gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}, nil
}

// Notify sends the alert email. A missing doctor email is a notification
// failure, not a reason to crash the save path.
func (n *SMTPNotifier) Notify(ctx context.Context, alert Alert) error {
	if alert.DoctorEmail == "" {
		return apperrors.NewNotificationError(fmt.Errorf("no doctor email on record for %s", alert.AccountName), "smtp")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", alert.DoctorEmail)
	m.SetHeader("Subject", fmt.Sprintf("SugarByte alert: %s blood glucose for %s", alert.Level, alert.AccountName))
	m.SetBody("text/plain", fmt.Sprintf(
		"Patient %s recorded a %s blood glucose reading of %.1f mmol/L on %s (%s).\n\n"+
			"This is an automated alert from the SugarByte logbook.",
		alert.AccountName, alert.Level, alert.Value, alert.Date, alert.TimeOfDay,
	))

	if err := n.dialer.DialAndSend(m); err != nil {
		return apperrors.NewNotificationError(err, "smtp")
	}
	return nil
}
