package config

import (
	"fmt"

	"github.com/redcrest/donorflow/pkg/notification"
)

// EmailConfig holds mail transport configuration. Transport selects the
// process-wide delivery mechanism: "smtp" or "api".
type EmailConfig struct {
	Transport string `env:"EMAIL_TRANSPORT" env-default:"smtp"`
	From      string `env:"EMAIL_FROM" env-default:"Blood Donation System <noreply@example.com>"`

	// SMTP transport
	Host     string `env:"EMAIL_HOST" env-default:"localhost"`
	Port     uint16 `env:"EMAIL_PORT" env-default:"1025"`
	Username string `env:"EMAIL_USERNAME" env-default:""`
	Password string `env:"EMAIL_PASSWORD" env-default:""`
	TLS      bool   `env:"EMAIL_TLS" env-default:"false"`

	// HTTP mail API transport
	APIBaseURL string `env:"EMAIL_API_BASE_URL" env-default:"https://api.resend.com/emails"`
	APIKey     string `env:"EMAIL_API_KEY" env-default:""`
}

// ToSMTPConfig converts the config to a notification.SMTPConfig.
func (e EmailConfig) ToSMTPConfig() notification.SMTPConfig {
	return notification.SMTPConfig{
		Host:     e.Host,
		Port:     int(e.Port),
		Username: e.Username,
		Password: e.Password,
		From:     e.From,
		TLS:      e.TLS,
	}
}

// ToMailAPIConfig converts the config to a notification.MailAPIConfig.
func (e EmailConfig) ToMailAPIConfig() notification.MailAPIConfig {
	return notification.MailAPIConfig{
		BaseURL: e.APIBaseURL,
		APIKey:  e.APIKey,
		From:    e.From,
	}
}

// NewDeliverer constructs the deliverer selected by Transport.
func (e EmailConfig) NewDeliverer() (notification.Deliverer, error) {
	switch e.Transport {
	case "smtp":
		return notification.NewSMTPDeliverer(e.ToSMTPConfig())
	case "api":
		return notification.NewMailAPIDeliverer(e.ToMailAPIConfig()), nil
	default:
		return nil, fmt.Errorf("unknown email transport: %s", e.Transport)
	}
}
