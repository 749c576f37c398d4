package httpadapter

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-pacing/internal/core/domain"
	"campaign-pacing/internal/core/pacing"
	"campaign-pacing/internal/core/port"
	"campaign-pacing/internal/core/port/mocks"
)

var today = time.Date(2024, time.March, 5, 14, 0, 0, 0, time.UTC)

func newHandler(t *testing.T) (*Handler, *mocks.MockDashboardUseCase) {
	t.Helper()
	svc := mocks.NewMockDashboardUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(svc, logger, prometheus.NewRegistry(),
		WithRefresh(15*time.Second),
		WithClock(func() time.Time { return today }),
	)
	return h, svc
}

func sampleDashboard() *port.Dashboard {
	results := []domain.PacingResult{
		{
			CampaignID: "C1", Model: domain.ModelCPM, ContractedVolume: 10000,
			ElapsedDays: 5, TotalDays: 10, DailyTarget: 1000, ExpectedToDate: 5000,
			DeliveredToDate: 4500, PacePct: 90, Status: domain.StatusOnTrack,
			Underperforming: false, HealthMetric: "ctr", HealthValue: 0.33,
			DaysRemaining: 5, RequiredDailyRate: 1100,
		},
		{
			CampaignID: "C4", Model: domain.ModelCPV, ContractedVolume: 3000,
			ElapsedDays: 5, TotalDays: 10, DailyTarget: 300, ExpectedToDate: 1500,
			DeliveredToDate: 600, PacePct: 40, Status: domain.StatusUnder,
			Underperforming: true, HealthMetric: "completion_rate", HealthValue: 20,
			DaysRemaining: 5, RequiredDailyRate: 480,
		},
	}
	return &port.Dashboard{
		PassID:  "pass-1",
		AsOf:    domain.Day(today),
		Summary: pacing.Summarize(results),
		Pacing:  results,
		Margins: []domain.MarginResult{{
			CampaignID: "C1",
			Budget:     decimal.NewFromInt(1000),
			Delivered:  decimal.NewFromInt(700),
			MarginPct:  30,
			Status:     domain.MarginGood,
		}},
		Diagnostics: []string{`row 2 (campaign "C3"): invalid budget format: "a lot"`},
		Alerts:      []string{"Alerta: Campanha C4 está com status Under!"},
	}
}

func TestDashboardPage(t *testing.T) {
	h, svc := newHandler(t)
	svc.EXPECT().Snapshot(mock.Anything, today).Return(sampleDashboard())

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, `<meta http-equiv="refresh" content="15">`)
	assert.Contains(t, body, "Alerta: Campanha C4 está com status Under!")
	assert.Contains(t, body, `action="/alerts/clear"`)
	assert.Contains(t, body, `class="bar under" style="width: 26.7%"`)
	assert.Contains(t, body, `class="bar ontrack" style="width: 60.0%"`)
	assert.Contains(t, body, "R$ 1.000,00")
	assert.Contains(t, body, "R$ 700,00")
	assert.Contains(t, body, "10.000")
	assert.Contains(t, body, `name="campaign_id" value="C4"`)
	assert.Contains(t, body, "invalid budget format")
}

func TestDashboardPageSourceError(t *testing.T) {
	h, svc := newHandler(t)
	svc.EXPECT().Snapshot(mock.Anything, mock.Anything).Return(&port.Dashboard{
		PassID:      "pass-2",
		AsOf:        domain.Day(today),
		Pacing:      []domain.PacingResult{},
		Margins:     []domain.MarginResult{},
		Alerts:      []string{},
		SourceError: "data source error: open campanhas.xlsx: no such file",
	})

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Data source unavailable")
	assert.NotContains(t, body, "No active campaigns")
	assert.NotContains(t, body, "Clear alerts")
}

func TestDashboardPageAsOf(t *testing.T) {
	h, svc := newHandler(t)
	want := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	svc.EXPECT().Snapshot(mock.Anything, want).Return(sampleDashboard())

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?as_of=2024-02-01", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?as_of=01/02/2024", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func postForm(h *Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func TestRaiseAlertForm(t *testing.T) {
	h, svc := newHandler(t)
	svc.EXPECT().RaiseAlert(mock.Anything, "C4", today).Return("Alerta: Campanha C4 está com status Under!", nil)

	rec := postForm(h, "/alerts", url.Values{"campaign_id": {"C4"}})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestRaiseAlertFormUnknownCampaign(t *testing.T) {
	h, svc := newHandler(t)
	svc.EXPECT().RaiseAlert(mock.Anything, "nope", mock.Anything).
		Return("", fmt.Errorf("%w: nope", port.ErrCampaignNotFound))

	rec := postForm(h, "/alerts", url.Values{"campaign_id": {"nope"}, "as_of": {"2024-03-05"}})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClearAlertsForm(t *testing.T) {
	h, svc := newHandler(t)
	svc.EXPECT().ClearAlerts(mock.Anything).Return(nil)

	rec := postForm(h, "/alerts/clear", url.Values{"as_of": {"2024-03-01"}})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/?as_of=2024-03-01", rec.Header().Get("Location"))
}

func TestPacingJSON(t *testing.T) {
	h, svc := newHandler(t)
	svc.EXPECT().Snapshot(mock.Anything, today).Return(sampleDashboard())

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/pacing", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp pacingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "pass-1", resp.PassID)
	assert.Equal(t, 2, resp.Summary.Campaigns)
	assert.Equal(t, 1, resp.Summary.Under)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, domain.StatusUnder, resp.Results[1].Status)
	assert.True(t, resp.Results[1].Underperforming)
}

func TestPacingJSONSourceError(t *testing.T) {
	h, svc := newHandler(t)
	svc.EXPECT().Snapshot(mock.Anything, mock.Anything).Return(&port.Dashboard{SourceError: "data source error: timeout"})

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/pacing", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "timeout")
}

func TestMarginsJSON(t *testing.T) {
	h, svc := newHandler(t)
	svc.EXPECT().Snapshot(mock.Anything, mock.Anything).Return(sampleDashboard())

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/margins?as_of=2024-03-05", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp marginsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Results, 1)
	assert.True(t, decimal.NewFromInt(1000).Equal(resp.Results[0].Budget))
	assert.Equal(t, domain.MarginGood, resp.Results[0].Status)
}

func TestDashboardJSON(t *testing.T) {
	h, svc := newHandler(t)
	svc.EXPECT().Snapshot(mock.Anything, mock.Anything).Return(sampleDashboard())

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp port.Dashboard
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, []string{"Alerta: Campanha C4 está com status Under!"}, resp.Alerts)
	assert.Len(t, resp.Diagnostics, 1)
}

func TestAlertsAPI(t *testing.T) {
	h, svc := newHandler(t)
	svc.EXPECT().Alerts(mock.Anything).Return([]string{"a", "b"}, nil)
	svc.EXPECT().RaiseAlert(mock.Anything, "C1", today).Return("Alerta: Campanha C1 está com status On Track!", nil)
	svc.EXPECT().ClearAlerts(mock.Anything).Return(nil)

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/alerts", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"alerts":["a","b"]}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/alerts", strings.NewReader(`{"campaign_id":"C1"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Alerta: Campanha C1 está com status On Track!"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/alerts", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAlertsAPIErrors(t *testing.T) {
	h, svc := newHandler(t)
	svc.EXPECT().Alerts(mock.Anything).Return(nil, domain.ErrStorage)
	svc.EXPECT().RaiseAlert(mock.Anything, "C1", mock.Anything).Return("", fmt.Errorf("%w: timeout", domain.ErrDataSource))

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/alerts", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/alerts", strings.NewReader(`{"campaign_id":"C1"}`)))
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	rec = httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/alerts", strings.NewReader(`{`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	h, _ := newHandler(t)

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
