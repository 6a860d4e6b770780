package httpadapter

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"arena-ads/internal/core/domain"
	"arena-ads/internal/core/port"
)

func reportRequest(t *testing.T, h *Handler, target, adminKey string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if adminKey != "" {
		req.Header.Set(AdminKeyHeader, adminKey)
	}
	h.Router().ServeHTTP(rec, req)
	return rec
}

func sampleReport(campaignID string) *port.Report {
	return &port.Report{
		Meta: port.ReportMeta{
			CampaignID:       campaignID,
			From:             "2026-08-01",
			To:               "2026-08-20",
			Rows:             1,
			ImpressionsTotal: 10,
			ClicksTotal:      2,
		},
		Data: []domain.AggregateRow{
			{Slot: "home", Region: "Lazio", Province: "RM", City: "Roma", Impressions: 10, Clicks: 2, CTR: 0.2},
		},
	}
}

func TestReportRequiresAdminKey(t *testing.T) {
	svc := &fakeUseCase{report: sampleReport(uuid.NewString())}
	h := newTestHandler(svc, enabledCfg(), nil)
	target := "/api/v1/ads/reports/campaign?campaign_id=" + uuid.NewString()

	rec := reportRequest(t, h, target, "")
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = reportRequest(t, h, target, "wrong-key")
	require.Equal(t, http.StatusForbidden, rec.Code)

	require.Nil(t, svc.reportReq, "auth must reject before any store access")
}

func TestReportFailsClosedWithoutConfiguredKey(t *testing.T) {
	h := newTestHandler(&fakeUseCase{}, enabledCfg(), nil)
	h.cfg.AdminKey = ""
	rec := reportRequest(t, h, "/api/v1/ads/reports/campaign?campaign_id="+uuid.NewString(), "")
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestReportValidation(t *testing.T) {
	svc := &fakeUseCase{report: sampleReport(uuid.NewString())}
	h := newTestHandler(svc, enabledCfg(), nil)
	id := uuid.NewString()

	targets := []string{
		"/api/v1/ads/reports/campaign",                                              // missing campaign_id
		"/api/v1/ads/reports/campaign?campaign_id=42",                               // not a UUID
		"/api/v1/ads/reports/campaign?campaign_id=" + id + "&from=01-02-2024",       // bad date
		"/api/v1/ads/reports/campaign?campaign_id=" + id + "&from=2024-01-01&to=2024-06-01", // span over 93 days
		"/api/v1/ads/reports/campaign?campaign_id=" + id + "&from=2024-03-01&to=2024-01-01", // inverted
		"/api/v1/ads/reports/campaign?campaign_id=" + id + "&format=xml",            // unknown format
	}
	for _, target := range targets {
		rec := reportRequest(t, h, target, testAdminKey)
		require.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)
	}
	require.Nil(t, svc.reportReq)
}

func TestReportJSON(t *testing.T) {
	id := uuid.NewString()
	svc := &fakeUseCase{report: sampleReport(id)}
	h := newTestHandler(svc, enabledCfg(), nil)

	rec := reportRequest(t, h,
		"/api/v1/ads/reports/campaign?campaign_id="+id+"&from=2026-08-01&to=2026-08-20", testAdminKey)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	require.Contains(t, body, `"campaign_id":"`+id+`"`)
	require.Contains(t, body, `"impressionsTotal":10`)
	require.Contains(t, body, `"clicksTotal":2`)
	require.Contains(t, body, `"ctr":0.2`)

	require.NotNil(t, svc.reportReq)
	require.Equal(t, id, svc.reportReq.CampaignID.String())
}

func TestReportCSV(t *testing.T) {
	id := uuid.NewString()
	svc := &fakeUseCase{report: sampleReport(id)}
	h := newTestHandler(svc, enabledCfg(), nil)

	rec := reportRequest(t, h,
		"/api/v1/ads/reports/campaign?campaign_id="+id+"&from=2026-08-01&to=2026-08-20&format=csv", testAdminKey)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	require.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	require.Contains(t, rec.Header().Get("Content-Disposition"),
		"campaign-report_"+id+"_2026-08-01_2026-08-20.csv")

	lines := strings.Split(strings.TrimRight(rec.Body.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "campaign_id,from,to,slot,region,province,city,impressions,clicks,ctr", lines[0])
	require.Equal(t, id+",2026-08-01,2026-08-20,home,Lazio,RM,Roma,10,2,0.2", lines[1])
}

func TestReportCSVEscapesCommas(t *testing.T) {
	id := uuid.NewString()
	report := sampleReport(id)
	report.Data[0].City = "Roma, Centro"
	svc := &fakeUseCase{report: report}
	h := newTestHandler(svc, enabledCfg(), nil)

	rec := reportRequest(t, h,
		"/api/v1/ads/reports/campaign?campaign_id="+id+"&format=csv", testAdminKey)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"Roma, Centro"`)
}

func TestReportStorageErrorIs500(t *testing.T) {
	h := newTestHandler(&fakeUseCase{reportErr: errors.New("db down")}, enabledCfg(), nil)
	rec := reportRequest(t, h,
		"/api/v1/ads/reports/campaign?campaign_id="+uuid.NewString(), testAdminKey)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
