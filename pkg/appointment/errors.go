package appointment

import "errors"

var (
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrApplicationNotApproved means booking was attempted for an
	// application that is not in the approved status.
	ErrApplicationNotApproved = errors.New("application is not approved")

	// ErrClinicClosed means the requested date and time fall outside the
	// clinic's opening hours for that weekday.
	ErrClinicClosed = errors.New("clinic is closed at the requested time")

	// ErrSlotUnavailable means the store reported a conflict for the
	// requested clinic slot.
	ErrSlotUnavailable = errors.New("slot is no longer available")

	// ErrInvalidStatusChange means a status update tried to move an
	// appointment out of a terminal state.
	ErrInvalidStatusChange = errors.New("appointment status can only advance from scheduled")
)
