package notification

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"time"

	"github.com/wneessen/go-mail"
)

// SMTPConfig holds SMTP transport settings.
type SMTPConfig struct {
	Host     string
	Port     int
	TLS      bool
	Username string
	Password string
	From     string
}

// SMTPDeliverer delivers email through an SMTP submission using go-mail.
type SMTPDeliverer struct {
	config SMTPConfig
	client *mail.Client
}

// NewSMTPDeliverer creates an SMTP deliverer from the given config.
func NewSMTPDeliverer(config SMTPConfig) (*SMTPDeliverer, error) {
	opts := []mail.Option{
		mail.WithPort(config.Port),
		mail.WithTimeout(30 * time.Second),
	}

	// Only add authentication if username and password are provided
	if config.Username != "" && config.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthLogin),
			mail.WithUsername(config.Username),
			mail.WithPassword(config.Password),
		)
	}

	if !config.TLS {
		opts = append(opts,
			mail.WithTLSConfig(&tls.Config{InsecureSkipVerify: true}),
			mail.WithTLSPolicy(mail.NoTLS),
		)
	} else {
		opts = append(opts,
			mail.WithTLSConfig(&tls.Config{InsecureSkipVerify: true}),
			mail.WithTLSPolicy(mail.TLSMandatory),
		)
	}

	slog.Info("Creating mail client", "host", config.Host, "port", config.Port)
	client, err := mail.NewClient(config.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create mail client: %w", err)
	}

	return &SMTPDeliverer{config: config, client: client}, nil
}

func (d *SMTPDeliverer) Deliver(ctx context.Context, to, subject, html string) error {
	if to == "" {
		return fmt.Errorf("%w: missing recipient address", ErrDeliveryFailed)
	}

	msg := mail.NewMsg()
	if err := msg.From(d.config.From); err != nil {
		return fmt.Errorf("%w: from address: %v", ErrDeliveryFailed, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("%w: to address: %v", ErrDeliveryFailed, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, html)

	if err := d.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("%w: smtp: %v", ErrDeliveryFailed, err)
	}

	slog.Info("Email sent", "to", to, "host", d.config.Host, "port", d.config.Port)
	return nil
}
