package notification

import "context"

// Deliverer sends one rendered email through a configured transport. The
// SMTP and HTTP mail API transports are interchangeable implementations;
// which one runs is a process-wide configuration decision.
//
// Deliverers do not retry. A non-success transport outcome surfaces as an
// error wrapping ErrDeliveryFailed with the transport's diagnostic.
type Deliverer interface {
	Deliver(ctx context.Context, to, subject, html string) error
}
