package http

import (
	"net/http"

	"hackathon-backend/internal/domain"
	"hackathon-backend/internal/service"
)

type OrderHandler struct {
	orderSvc service.OrderService
}

func NewOrderHandler(orderSvc service.OrderService) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc}
}

type createCartRequest struct {
	HardwareIDs []int32 `json:"hardware_ids"`
}

func (h *OrderHandler) CreateCart(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, domain.Forbidden("authentication required"))
		return
	}
	var req createCartRequest
	if !decodeBody(w, r, &req) {
		return
	}
	order, err := h.orderSvc.CreateCart(r.Context(), uid, req.HardwareIDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) Submit(w http.ResponseWriter, r *http.Request) {
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
	order, err := h.orderSvc.SubmitCart(r.Context(), uid, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, domain.Forbidden("authentication required"))
		return
	}
	orders, err := h.orderSvc.ListTeamOrders(r.Context(), uid)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

type updateStatusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
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
	var req updateStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	order, err := h.orderSvc.UpdateStatus(r.Context(), uid, id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

type returnItemRequest struct {
	ItemID int32               `json:"item_id"`
	Health domain.ReturnHealth `json:"health"`
}

func (h *OrderHandler) ReturnItem(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, domain.Forbidden("authentication required"))
		return
	}
	var req returnItemRequest
	if !decodeBody(w, r, &req) {
		return
	}
	order, err := h.orderSvc.ReturnItem(r.Context(), uid, req.ItemID, req.Health)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
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
	order, err := h.orderSvc.CancelOrder(r.Context(), uid, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

type createIncidentRequest struct {
	OrderItemID int32                `json:"order_item_id"`
	State       domain.IncidentState `json:"state"`
	Description string               `json:"description"`
}

func (h *OrderHandler) CreateIncident(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, domain.Forbidden("authentication required"))
		return
	}
	var req createIncidentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	incident := &domain.Incident{
		OrderItemID: req.OrderItemID,
		State:       req.State,
		Description: req.Description,
	}
	if err := h.orderSvc.CreateIncident(r.Context(), uid, incident); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, incident)
}

func (h *OrderHandler) ListIncidents(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, domain.Forbidden("authentication required"))
		return
	}
	incidents, err := h.orderSvc.ListIncidents(r.Context(), uid)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, incidents)
}
