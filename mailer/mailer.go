package mailer

import (
	"fmt"
	"log/slog"
	"net/smtp"

	"title-review-api/config"
)

// Notifier dispatches a freshly minted confirmation code to an identity.
// Callers treat dispatch as fire-and-forget; a returned error is logged by
// the auth service and never surfaced to the client.
type Notifier interface {
	SendConfirmationCode(email, code string) error
}

// New returns an SMTP-backed notifier when a host is configured, otherwise a
// logger-backed one so local setups still see the codes.
func New(cfg config.MailConfig, logger *slog.Logger) Notifier {
	if cfg.Host == "" {
		return &logNotifier{logger: logger}
	}
	return &smtpNotifier{cfg: cfg}
}

type smtpNotifier struct {
	cfg config.MailConfig
}

func (n *smtpNotifier) SendConfirmationCode(email, code string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Registration confirmation\r\n\r\nYour confirmation code is %s\r\n",
		n.cfg.From, email, code,
	)
	addr := n.cfg.Host + ":" + n.cfg.Port
	return smtp.SendMail(addr, nil, n.cfg.From, []string{email}, []byte(msg))
}

type logNotifier struct {
	logger *slog.Logger
}

func (n *logNotifier) SendConfirmationCode(email, code string) error {
	n.logger.Info("confirmation code issued", "email", email, "code", code)
	return nil
}
