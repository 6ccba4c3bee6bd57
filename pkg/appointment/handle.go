package appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/redcrest/donorflow/pkg/application"
	"github.com/redcrest/donorflow/pkg/clinic"
	"github.com/redcrest/donorflow/pkg/gate"
)

// Handle exposes appointment booking over HTTP.
type Handle struct {
	service *AppointmentService
}

// NewHandle creates a new appointment HTTP handler.
func NewHandle(service *AppointmentService) Handle {
	return Handle{
		service: service,
	}
}

// Routes mounts the appointment endpoints.
func (h Handle) Routes(r chi.Router) {
	r.Post("/", h.Book)
	r.Get("/", h.List)
	r.Post("/{id}/status", h.UpdateStatus)
}

// BookRequest is the POST /appointments body.
type BookRequest struct {
	ApplicationID uuid.UUID `json:"application_id"`
	ClinicID      uuid.UUID `json:"clinic_id"`
	Date          string    `json:"appointment_date"`
	Time          string    `json:"appointment_time"`
	Notes         *string   `json:"notes,omitempty"`
}

// UpdateStatusRequest is the POST /appointments/{id}/status body.
type UpdateStatusRequest struct {
	Status Status `json:"status"`
}

func (h Handle) Book(w http.ResponseWriter, r *http.Request) {
	actor, _ := gate.AuthUserFromContext(r.Context())

	var req BookRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		http.Error(w, "invalid appointment date", http.StatusBadRequest)
		return
	}

	appt, err := h.service.Book(r.Context(), actor, BookParams{
		ApplicationID: req.ApplicationID,
		ClinicID:      req.ClinicID,
		Date:          date,
		Time:          req.Time,
		Notes:         req.Notes,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, appt)
}

func (h Handle) List(w http.ResponseWriter, r *http.Request) {
	actor, _ := gate.AuthUserFromContext(r.Context())

	appts, err := h.service.FindAppointments(r.Context(), actor)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if appts == nil {
		appts = []Appointment{}
	}
	render.JSON(w, r, appts)
}

func (h Handle) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, _ := gate.AuthUserFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid appointment id", http.StatusBadRequest)
		return
	}

	var req UpdateStatusRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	appt, err := h.service.UpdateStatus(r.Context(), actor, id, req.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	render.JSON(w, r, appt)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gate.ErrUnauthenticated):
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	case errors.Is(err, gate.ErrForbidden):
		http.Error(w, "Forbidden", http.StatusForbidden)
	case errors.Is(err, application.ErrApplicationNotFound):
		http.Error(w, "Application not found", http.StatusNotFound)
	case errors.Is(err, clinic.ErrClinicNotFound):
		http.Error(w, "Clinic not found", http.StatusNotFound)
	case errors.Is(err, ErrAppointmentNotFound):
		http.Error(w, "Appointment not found", http.StatusNotFound)
	case errors.Is(err, ErrApplicationNotApproved):
		http.Error(w, "Application is not approved", http.StatusUnprocessableEntity)
	case errors.Is(err, ErrClinicClosed):
		http.Error(w, "Clinic is closed at the requested time", http.StatusUnprocessableEntity)
	case errors.Is(err, ErrSlotUnavailable):
		http.Error(w, "Slot is no longer available", http.StatusConflict)
	case errors.Is(err, ErrInvalidStatusChange):
		http.Error(w, "Appointment status can only advance", http.StatusConflict)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
