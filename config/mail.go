package config

import "os"

type MailConfig struct {
	Host string
	Port string
	From string
}

// LoadMail reads the SMTP endpoint. An empty host means confirmation codes
// are written to the application log instead of being mailed out.
func LoadMail() MailConfig {
	return MailConfig{
		Host: os.Getenv("SMTP_HOST"),
		Port: getEnv("SMTP_PORT", "25"),
		From: getEnv("MAIL_FROM", "noreply@title-review.local"),
	}
}
