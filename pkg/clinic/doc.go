// Package clinic holds the donation-clinic reference data, including the
// per-weekday opening hours the booking workflow checks against.
package clinic
