package notification

import "errors"

var (
	// ErrTemplateMissing means no template asset exists under the
	// requested name.
	ErrTemplateMissing = errors.New("template missing")

	// ErrDeliveryFailed means the configured mail transport reported a
	// non-success outcome. The transport's diagnostic is carried in the
	// wrapping error text.
	ErrDeliveryFailed = errors.New("delivery failed")
)
