package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth        *AuthHandler
	Team        *TeamHandler
	Hardware    *HardwareHandler
	Order       *OrderHandler
	Application *ApplicationHandler
	Review      *ReviewHandler
}

// NewRouter wires the REST surface. Everything except auth sits behind the
// bearer-token middleware; staff checks happen in the services.
func NewRouter(h Handlers, auth *AuthMiddleware) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/signup", h.Auth.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(auth.RequireAuth)

	protected.HandleFunc("/teams/me", h.Team.GetMyTeam).Methods(http.MethodGet)
	protected.HandleFunc("/teams/me", h.Team.UpdateProjectDescription).Methods(http.MethodPatch)
	protected.HandleFunc("/teams/join/{code}", h.Team.Join).Methods(http.MethodPost)
	protected.HandleFunc("/teams/leave", h.Team.Leave).Methods(http.MethodPost)

	protected.HandleFunc("/profiles", h.Team.CreateProfile).Methods(http.MethodPost)
	protected.HandleFunc("/profiles/me", h.Team.GetMyProfile).Methods(http.MethodGet)
	protected.HandleFunc("/profiles/me", h.Team.UpdateProfileFlags).Methods(http.MethodPatch)

	protected.HandleFunc("/hardware", h.Hardware.List).Methods(http.MethodGet)
	protected.HandleFunc("/hardware/{id:[0-9]+}", h.Hardware.Get).Methods(http.MethodGet)

	protected.HandleFunc("/orders", h.Order.CreateCart).Methods(http.MethodPost)
	protected.HandleFunc("/orders", h.Order.List).Methods(http.MethodGet)
	protected.HandleFunc("/orders/{id:[0-9]+}/submit", h.Order.Submit).Methods(http.MethodPost)
	protected.HandleFunc("/orders/{id:[0-9]+}/status", h.Order.UpdateStatus).Methods(http.MethodPatch)
	protected.HandleFunc("/orders/returns", h.Order.ReturnItem).Methods(http.MethodPost)
	protected.HandleFunc("/orders/{id:[0-9]+}/cancel", h.Order.Cancel).Methods(http.MethodPost)

	protected.HandleFunc("/incidents", h.Order.CreateIncident).Methods(http.MethodPost)
	protected.HandleFunc("/incidents", h.Order.ListIncidents).Methods(http.MethodGet)

	protected.HandleFunc("/applications", h.Application.Submit).Methods(http.MethodPost)
	protected.HandleFunc("/applications/me", h.Application.GetMine).Methods(http.MethodGet)
	protected.HandleFunc("/applications/rsvp", h.Application.RSVP).Methods(http.MethodPost)

	protected.HandleFunc("/reviews", h.Review.Create).Methods(http.MethodPost)
	protected.HandleFunc("/reviews/{id:[0-9]+}", h.Review.Update).Methods(http.MethodPatch)
	protected.HandleFunc("/reviews/{id:[0-9]+}/revert", h.Review.Revert).Methods(http.MethodPost)
	protected.HandleFunc("/reviews/assignment", h.Review.AssignNextTeam).Methods(http.MethodPost)
	protected.HandleFunc("/reviews/decisions", h.Review.SendDecisions).Methods(http.MethodPost)

	return r
}
