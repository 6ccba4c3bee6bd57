// Package notification renders and delivers templated transactional email.
//
// A Renderer loads named HTML templates from an asset store (the package
// embeds its own defaults) and performs literal, single-pass {{name}}
// placeholder substitution. A Deliverer pushes the rendered message through
// the configured transport; SMTP (go-mail) and an HTTP mail API are the two
// interchangeable implementations.
//
// The Service ties both together behind one method per notification kind:
// application approved, application rejected, appointment confirmed. Each
// kind has a fixed subject line and template. Delivery is not retried here;
// callers treat a failed notification as a logged, non-fatal side effect.
package notification
