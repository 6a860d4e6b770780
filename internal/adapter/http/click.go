package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"arena-ads/internal/core/port"
)

type clickRequest struct {
	CampaignID uuid.UUID `json:"campaignId"`
	CreativeID uuid.UUID `json:"creativeId"`
	Slot       string    `json:"slot"`
	Page       string    `json:"page"`
}

// handleClick records a caller-reported click for a previously delivered
// creative. It answers 204 on success. There is no redirect; the client
// already has the destination URL from the delivery response. Unlike
// delivery, a storage failure is a 500: silently dropping clicks would
// under-report campaigns.
func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	var req clickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.CampaignID == uuid.Nil || req.CreativeID == uuid.Nil {
		h.writeError(w, http.StatusBadRequest, "campaignId and creativeId are required")
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
		w.WriteHeader(http.StatusNoContent)
		return
	}

	err := h.svc.RecordClick(r.Context(), port.ClickRequest{
		CampaignID: req.CampaignID,
		CreativeID: req.CreativeID,
		Slot:       req.Slot,
		Page:       req.Page,
		UserID:     r.Header.Get("X-User-ID"),
		UserAgent:  r.UserAgent(),
	})
	if err != nil {
		h.logger.Error("record click error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
