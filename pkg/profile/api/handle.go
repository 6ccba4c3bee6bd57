package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/redcrest/donorflow/pkg/gate"
	"github.com/redcrest/donorflow/pkg/profile"
)

// Handle exposes profile registration and lookup over HTTP. The identity
// provider authenticates; this surface creates and serves the profile row
// keyed by the token subject.
type Handle struct {
	service *profile.ProfileService
	gate    *gate.Gate
}

// NewHandle creates a new profile HTTP handler.
func NewHandle(service *profile.ProfileService, g *gate.Gate) Handle {
	return Handle{
		service: service,
		gate:    g,
	}
}

// Routes mounts the profile endpoints.
func (h Handle) Routes(r chi.Router) {
	r.Post("/", h.Register)
	r.Get("/me", h.Me)
	r.With(gate.RequireRole(h.gate, profile.RoleSecretary, profile.RoleAdmin)).Get("/", h.List)
}

// RegisterRequest is the POST /profiles body. Email is taken from the
// token when the token carries one.
type RegisterRequest struct {
	Email       string  `json:"email"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Area        *string `json:"area,omitempty"`
	BloodType   *string `json:"blood_type,omitempty"`
	Age         *int32  `json:"age,omitempty"`
}

// Register creates the actor's own profile row after external
// authentication. New profiles always start as citizens.
func (h Handle) Register(w http.ResponseWriter, r *http.Request) {
	actor, _ := gate.AuthUserFromContext(r.Context())
	if actor == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req RegisterRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	email := actor.Email
	if email == "" {
		email = req.Email
	}
	if email == "" || req.FirstName == "" {
		http.Error(w, "email and first name are required", http.StatusBadRequest)
		return
	}

	if _, err := h.service.GetProfile(r.Context(), actor.ProfileID); err == nil {
		http.Error(w, "Profile already exists", http.StatusConflict)
		return
	}

	p, err := h.service.CreateProfile(r.Context(), profile.CreateProfileParams{
		ID:          actor.ProfileID,
		Email:       email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Area:        req.Area,
		BloodType:   req.BloodType,
		Age:         req.Age,
		Role:        profile.RoleCitizen,
	})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, p)
}

// Me returns the actor's own profile.
func (h Handle) Me(w http.ResponseWriter, r *http.Request) {
	actor, _ := gate.AuthUserFromContext(r.Context())
	if actor == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	p, err := h.service.GetProfile(r.Context(), actor.ProfileID)
	if errors.Is(err, profile.ErrProfileNotFound) {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	render.JSON(w, r, p)
}

// List returns every profile; reviewers only, enforced by the route
// middleware.
func (h Handle) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.service.FindProfiles(r.Context())
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if profiles == nil {
		profiles = []profile.Profile{}
	}
	render.JSON(w, r, profiles)
}
