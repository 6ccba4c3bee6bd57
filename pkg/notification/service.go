package notification

import (
	"context"
	"fmt"
	"html"
	"time"
)

// Kind identifies a notification type.
type Kind string

const (
	KindApplicationApproved  Kind = "application-approved"
	KindApplicationRejected  Kind = "application-rejected"
	KindAppointmentConfirmed Kind = "appointment-confirmation"
)

// notice maps a kind to its fixed subject line and template name. Subjects
// are not configurable per call.
type notice struct {
	Subject  string
	Template string
}

var notices = map[Kind]notice{
	KindApplicationApproved:  {Subject: "Your blood donation application has been approved", Template: "application-approved"},
	KindApplicationRejected:  {Subject: "Update on your blood donation application", Template: "application-rejected"},
	KindAppointmentConfirmed: {Subject: "Your donation appointment is confirmed", Template: "appointment-confirmation"},
}

// Service composes the template renderer and the configured mail transport,
// exposing one call per notification kind.
type Service struct {
	renderer  *Renderer
	deliverer Deliverer
	appURL    string
}

// NewService creates a notification service. appURL is substituted into
// templates that link back into the application.
func NewService(renderer *Renderer, deliverer Deliverer, appURL string) *Service {
	return &Service{
		renderer:  renderer,
		deliverer: deliverer,
		appURL:    appURL,
	}
}

// SendApplicationApproved notifies a citizen that their donation
// application was approved.
func (s *Service) SendApplicationApproved(ctx context.Context, to, firstName string) error {
	return s.notify(ctx, KindApplicationApproved, to, map[string]string{
		"firstName": firstName,
		"appUrl":    s.appURL,
	})
}

// SendApplicationRejected notifies a citizen that their donation
// application was rejected. A non-empty reason renders as a callout block;
// an empty reason renders nothing in its place.
func (s *Service) SendApplicationRejected(ctx context.Context, to, firstName, reason string) error {
	return s.notify(ctx, KindApplicationRejected, to, map[string]string{
		"firstName":            firstName,
		"rejectionReasonBlock": rejectionReasonBlock(reason),
	})
}

// SendAppointmentConfirmed notifies a citizen that their donation
// appointment was booked.
func (s *Service) SendAppointmentConfirmed(ctx context.Context, to, firstName, clinicName, clinicAddress string, date time.Time) error {
	return s.notify(ctx, KindAppointmentConfirmed, to, map[string]string{
		"firstName":       firstName,
		"clinicName":      clinicName,
		"clinicAddress":   clinicAddress,
		"appointmentDate": date.Format("Monday, January 2, 2006"),
	})
}

func (s *Service) notify(ctx context.Context, kind Kind, to string, vars map[string]string) error {
	n, ok := notices[kind]
	if !ok {
		return fmt.Errorf("unknown notification kind: %s", kind)
	}

	body, err := s.renderer.Render(n.Template, vars)
	if err != nil {
		return err
	}
	return s.deliverer.Deliver(ctx, to, n.Subject, body)
}

// rejectionReasonBlock builds the visually distinct callout holding the
// reviewer's reason. The reason is operator-supplied free text, so it is
// HTML-escaped before insertion.
func rejectionReasonBlock(reason string) string {
	if reason == "" {
		return ""
	}
	return fmt.Sprintf(
		`<p style="background:#fef2f2;border-left:4px solid #EE3545;padding:10px 14px;color:#374151;"><strong>Reason:</strong> %s</p>`,
		html.EscapeString(reason))
}
