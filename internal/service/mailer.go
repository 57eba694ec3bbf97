package service

import (
	"fmt"

	"taxpal/pkg/config"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// Mailer delivers transactional mail over SMTP. When SMTP is not configured
// callers fall back to dev-mode behavior instead of sending.
type Mailer struct {
	cfg    config.SMTPConfig
	logger *zap.Logger
}

func NewMailer(cfg config.SMTPConfig, logger *zap.Logger) *Mailer {
	return &Mailer{cfg: cfg, logger: logger}
}

// Enabled reports whether real delivery is configured.
func (m *Mailer) Enabled() bool {
	return m.cfg.Enabled()
}

// SendOTP emails a password-reset OTP to the given address.
func (m *Mailer) SendOTP(to, otp string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set to address: %w", err)
	}
	msg.Subject("Taxpal — Password Reset OTP")
	msg.SetBodyString(mail.TypeTextPlain,
		fmt.Sprintf("Your OTP is: %s (valid for 10 minutes).", otp))
	msg.AddAlternativeString(mail.TypeTextHTML,
		fmt.Sprintf("<p>Your OTP is: <b>%s</b><br/>It is valid for 10 minutes.</p>", otp))

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.User),
		mail.WithPassword(m.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	return client.DialAndSend(msg)
}
