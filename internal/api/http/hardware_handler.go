package http

import (
	"net/http"
	"strconv"

	"hackathon-backend/internal/domain"
	"hackathon-backend/internal/service"

	"github.com/gorilla/mux"
)

type HardwareHandler struct {
	inventorySvc service.InventoryService
}

func NewHardwareHandler(inventorySvc service.InventoryService) *HardwareHandler {
	return &HardwareHandler{inventorySvc: inventorySvc}
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.Validation("invalid " + name)
	}
	return int32(id), nil
}

func (h *HardwareHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventorySvc.ListHardware(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *HardwareHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	hw, err := h.inventorySvc.GetHardware(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hw)
}
