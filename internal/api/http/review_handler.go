package http

import (
	"net/http"

	"hackathon-backend/internal/domain"
	"hackathon-backend/internal/service"
)

type ReviewHandler struct {
	reviewSvc service.ReviewService
	mailer    service.DecisionMailer
}

func NewReviewHandler(reviewSvc service.ReviewService, mailer service.DecisionMailer) *ReviewHandler {
	return &ReviewHandler{reviewSvc: reviewSvc, mailer: mailer}
}

type reviewRequest struct {
	ID             int32               `json:"id"`
	ApplicationID  int32               `json:"application_id"`
	TechnicalScore int32               `json:"technical_score"`
	IdeaScore      int32               `json:"idea_score"`
	Comments       string              `json:"comments"`
	Status         domain.ReviewStatus `json:"status"`
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, domain.Forbidden("authentication required"))
		return
	}
	var req reviewRequest
	if !decodeBody(w, r, &req) {
		return
	}
	review := &domain.Review{
		ApplicationID:  req.ApplicationID,
		TechnicalScore: req.TechnicalScore,
		IdeaScore:      req.IdeaScore,
		Comments:       req.Comments,
		Status:         req.Status,
	}
	if err := h.reviewSvc.CreateReview(r.Context(), uid, review); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, domain.Forbidden("authentication required"))
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req reviewRequest
	if !decodeBody(w, r, &req) {
		return
	}
	review := &domain.Review{
		ID:             id,
		TechnicalScore: req.TechnicalScore,
		IdeaScore:      req.IdeaScore,
		Comments:       req.Comments,
		Status:         req.Status,
	}
	if err := h.reviewSvc.UpdateReview(r.Context(), uid, review); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *ReviewHandler) Revert(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, domain.Forbidden("authentication required"))
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.reviewSvc.RevertToWaitlisted(r.Context(), uid, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": string(domain.ReviewStatusWaitlisted)})
}

type assignmentResponse struct {
	Team         *domain.Team         `json:"team"`
	Applications []domain.Application `json:"applications,omitempty"`
	Message      string               `json:"message,omitempty"`
}

func (h *ReviewHandler) AssignNextTeam(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, domain.Forbidden("authentication required"))
		return
	}
	team, apps, err := h.reviewSvc.AssignNextTeam(r.Context(), uid)
	if err != nil {
		writeError(w, err)
		return
	}
	if team == nil {
		writeJSON(w, http.StatusOK, assignmentResponse{Message: "no teams left to review"})
		return
	}
	writeJSON(w, http.StatusOK, assignmentResponse{Team: team, Applications: apps})
}

type sendDecisionsRequest struct {
	Status   domain.ReviewStatus `json:"status"`
	DateFrom string              `json:"date_from"`
	DateTo   string              `json:"date_to"`
	Quantity int32               `json:"quantity"`
}

type sendDecisionsResponse struct {
	Sent int32 `json:"sent"`
}

func (h *ReviewHandler) SendDecisions(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, domain.Forbidden("authentication required"))
		return
	}
	var req sendDecisionsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	sent, err := h.mailer.SendDecisions(r.Context(), uid, req.Status, req.DateFrom, req.DateTo, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sendDecisionsResponse{Sent: sent})
}
