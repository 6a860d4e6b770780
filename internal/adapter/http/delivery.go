package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"arena-ads/internal/core/port"
)

type deliveryRequest struct {
	Slot string `json:"slot"`
	Page string `json:"page"`
}

type deliveryResponse struct {
	Creative *port.DeliveryCreative `json:"creative"`
}

// handleDelivery processes an ad request and returns the selected creative,
// or {"creative": null} when nothing is deliverable. Caller identity is
// ambient: the platform's auth proxy sets X-User-ID for signed-in viewers.
// Malformed JSON or a blank slot/page is rejected with 400 before any
// lookup. When the ads subsystem is disabled, or delivery storage is
// unavailable, the endpoint degrades to the empty response instead of
// failing the surrounding page.
func (h *Handler) handleDelivery(w http.ResponseWriter, r *http.Request) {
	var req deliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	req.Slot = strings.TrimSpace(req.Slot)
	req.Page = strings.TrimSpace(req.Page)
	if req.Slot == "" {
		h.writeError(w, http.StatusBadRequest, "slot is required")
		return
	}
	if req.Page == "" {
		h.writeError(w, http.StatusBadRequest, "page is required")
		return
	}

	if !h.cfg.Enabled {
		h.writeJSON(w, http.StatusOK, deliveryResponse{})
		return
	}

	creative, err := h.svc.Deliver(r.Context(), port.DeliveryRequest{
		Slot:      req.Slot,
		Page:      req.Page,
		UserID:    r.Header.Get("X-User-ID"),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		h.logger.Error("deliver error", slog.String("slot", req.Slot), slog.Any("error", err))
		h.metrics.RecordEmptyDelivery(req.Slot, "storage_error")
		h.writeJSON(w, http.StatusOK, deliveryResponse{})
		return
	}
	h.writeJSON(w, http.StatusOK, deliveryResponse{Creative: creative})
}
