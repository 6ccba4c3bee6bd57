package application

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"github.com/redcrest/donorflow/pkg/gate"
)

// Handle exposes the application workflow over HTTP.
type Handle struct {
	service *ApplicationService
}

// NewHandle creates a new application HTTP handler.
func NewHandle(service *ApplicationService) Handle {
	return Handle{
		service: service,
	}
}

// Routes mounts the application endpoints.
func (h Handle) Routes(r chi.Router) {
	r.Post("/", h.Submit)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Post("/{id}/decide", h.Decide)
}

// SubmitRequest is the POST /applications body.
type SubmitRequest struct {
	EligibilityAnswers
}

// DecideRequest is the POST /applications/{id}/decide body.
type DecideRequest struct {
	Decision Status `json:"decision"`
	Reason   string `json:"reason,omitempty"`
}

// ApplicationResponse is the API shape of an application.
type ApplicationResponse struct {
	ID        uuid.UUID `json:"id"`
	CitizenID uuid.UUID `json:"citizen_id"`
	Status    Status    `json:"status"`
	EligibilityAnswers
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	ReviewedBy      *uuid.UUID `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (h Handle) Submit(w http.ResponseWriter, r *http.Request) {
	actor, _ := gate.AuthUserFromContext(r.Context())

	var req SubmitRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	app, err := h.service.Submit(r.Context(), actor, req.EligibilityAnswers)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toResponse(app))
}

func (h Handle) List(w http.ResponseWriter, r *http.Request) {
	actor, _ := gate.AuthUserFromContext(r.Context())

	apps, err := h.service.FindApplications(r.Context(), actor)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	responses := make([]ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		responses = append(responses, toResponse(app))
	}
	render.JSON(w, r, responses)
}

func (h Handle) Get(w http.ResponseWriter, r *http.Request) {
	actor, _ := gate.AuthUserFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid application id", http.StatusBadRequest)
		return
	}

	app, err := h.service.GetApplication(r.Context(), actor, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	render.JSON(w, r, toResponse(app))
}

func (h Handle) Decide(w http.ResponseWriter, r *http.Request) {
	actor, _ := gate.AuthUserFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid application id", http.StatusBadRequest)
		return
	}

	var req DecideRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	app, err := h.service.Decide(r.Context(), actor, id, req.Decision, req.Reason)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	render.JSON(w, r, toResponse(app))
}

func toResponse(app DonationApplication) ApplicationResponse {
	var resp ApplicationResponse
	copier.Copy(&resp, &app)
	return resp
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gate.ErrUnauthenticated):
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	case errors.Is(err, gate.ErrForbidden):
		http.Error(w, "Forbidden", http.StatusForbidden)
	case errors.Is(err, ErrApplicationNotFound):
		http.Error(w, "Application not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidTransition):
		http.Error(w, "Application has already been decided", http.StatusConflict)
	case errors.Is(err, ErrInvalidDecision):
		http.Error(w, "Invalid decision", http.StatusBadRequest)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
