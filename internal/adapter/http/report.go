package httpadapter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"arena-ads/internal/adapter/usecase"
	"arena-ads/internal/core/port"
)

// handleCampaignReport aggregates a campaign's events over a closed date
// range and renders the result as JSON (default) or a CSV attachment. The
// route is admin-gated by middleware. Validation failures are 400; any
// storage failure aborts the whole report with 500 — a partial report is
// never returned as success.
func (h *Handler) handleCampaignReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	format := strings.ToLower(q.Get("format"))
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "csv" {
		h.writeError(w, http.StatusBadRequest, "format must be json or csv")
		return
	}

	req, err := usecase.ParseReportRequest(q.Get("campaign_id"), q.Get("from"), q.Get("to"), time.Now().UTC())
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.svc.CampaignReport(r.Context(), req)
	if err != nil {
		h.logger.Error("campaign report error",
			slog.String("campaign_id", req.CampaignID.String()),
			slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if format == "csv" {
		h.writeReportCSV(w, report)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

// writeReportCSV renders the report as an attachment with one line per
// aggregate row. encoding/csv handles comma/quote/newline escaping.
func (h *Handler) writeReportCSV(w http.ResponseWriter, report *port.Report) {
	filename := fmt.Sprintf("campaign-report_%s_%s_%s.csv",
		report.Meta.CampaignID, report.Meta.From, report.Meta.To)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"campaign_id", "from", "to", "slot", "region", "province", "city", "impressions", "clicks", "ctr"})
	for _, row := range report.Data {
		_ = cw.Write([]string{
			report.Meta.CampaignID,
			report.Meta.From,
			report.Meta.To,
			row.Slot,
			row.Region,
			row.Province,
			row.City,
			strconv.FormatInt(row.Impressions, 10),
			strconv.FormatInt(row.Clicks, 10),
			strconv.FormatFloat(row.CTR, 'f', -1, 64),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		h.logger.Error("write csv error", slog.Any("error", err))
	}
}
