package http

import (
	"net/http"

	"hackathon-backend/internal/domain"
	"hackathon-backend/internal/service"
)

type ApplicationHandler struct {
	appSvc service.ApplicationService
}

func NewApplicationHandler(appSvc service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{appSvc: appSvc}
}

type submitApplicationRequest struct {
	Description string `json:"description"`
	TeamCode    string `json:"team_code"`
}

func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, domain.Forbidden("authentication required"))
		return
	}
	var req submitApplicationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	app, err := h.appSvc.Submit(r.Context(), uid, req.Description, req.TeamCode)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

func (h *ApplicationHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, domain.Forbidden("authentication required"))
		return
	}
	app, err := h.appSvc.GetMine(r.Context(), uid)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

type rsvpRequest struct {
	Attending bool `json:"attending"`
}

func (h *ApplicationHandler) RSVP(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, domain.Forbidden("authentication required"))
		return
	}
	var req rsvpRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.appSvc.RSVP(r.Context(), uid, req.Attending); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"attending": req.Attending})
}
