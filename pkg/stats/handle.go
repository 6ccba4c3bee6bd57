package stats

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// Handle exposes the public statistics endpoint.
type Handle struct {
	service *StatsService
}

// NewHandle creates a new stats HTTP handler.
func NewHandle(service *StatsService) Handle {
	return Handle{
		service: service,
	}
}

// Routes mounts the stats endpoints. These are public: no gate.
func (h Handle) Routes(r chi.Router) {
	r.Get("/blood-safety", h.BloodSafety)
}

func (h Handle) BloodSafety(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.service.BloodSafety(r.Context()))
}
