// Package appointment implements donation-slot booking for approved
// applications.
//
// A booking is accepted only for the citizen's own approved application,
// only inside the clinic's opening hours for that weekday, and only if the
// store reports no conflict for the slot. Status then advances forward
// only: scheduled to completed, cancelled or no-show. The confirmation
// email is a detached best-effort side effect of a successful booking.
package appointment
