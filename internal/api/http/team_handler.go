package http

import (
	"net/http"

	"hackathon-backend/internal/domain"
	"hackathon-backend/internal/service"

	"github.com/gorilla/mux"
)

type TeamHandler struct {
	teamSvc    service.TeamService
	profileSvc service.ProfileService
}

func NewTeamHandler(teamSvc service.TeamService, profileSvc service.ProfileService) *TeamHandler {
	return &TeamHandler{teamSvc: teamSvc, profileSvc: profileSvc}
}

func (h *TeamHandler) GetMyTeam(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, domain.Forbidden("authentication required"))
		return
	}
	team, err := h.teamSvc.GetMyTeam(r.Context(), uid)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, team)
}

func (h *TeamHandler) Join(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, domain.Forbidden("authentication required"))
		return
	}
	code := mux.Vars(r)["code"]
	team, err := h.teamSvc.JoinTeam(r.Context(), uid, code)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, team)
}

func (h *TeamHandler) Leave(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, domain.Forbidden("authentication required"))
		return
	}
	team, err := h.teamSvc.LeaveTeam(r.Context(), uid)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, team)
}

type projectDescriptionRequest struct {
	ProjectDescription string `json:"project_description"`
}

func (h *TeamHandler) UpdateProjectDescription(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, domain.Forbidden("authentication required"))
		return
	}
	var req projectDescriptionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	team, err := h.teamSvc.UpdateProjectDescription(r.Context(), uid, req.ProjectDescription)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, team)
}

type createProfileRequest struct {
	ESignature string `json:"e_signature"`
}

func (h *TeamHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, domain.Forbidden("authentication required"))
		return
	}
	var req createProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}
	profile, err := h.profileSvc.CreateProfile(r.Context(), uid, req.ESignature)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, profile)
}

func (h *TeamHandler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, domain.Forbidden("authentication required"))
		return
	}
	profile, err := h.profileSvc.GetMyProfile(r.Context(), uid)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

type profileFlagsRequest struct {
	Attended          bool `json:"attended"`
	IDProvided        bool `json:"id_provided"`
	RulesAcknowledged bool `json:"rules_acknowledged"`
}

func (h *TeamHandler) UpdateProfileFlags(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, domain.Forbidden("authentication required"))
		return
	}
	var req profileFlagsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	profile, err := h.profileSvc.UpdateFlags(r.Context(), uid, req.Attended, req.IDProvided, req.RulesAcknowledged)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
