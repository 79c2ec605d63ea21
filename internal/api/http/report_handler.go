package http

import (
	"net/http"

	"fleetops-backend/internal/service"
)

type reportHandler struct {
	reports service.ReportService
}

func newReportHandler(reports service.ReportService) *reportHandler {
	return &reportHandler{reports: reports}
}

func (h *reportHandler) ClientStatement(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid id")
		return
	}
	q := r.URL.Query()
	from, to, ok := dateRange(w, q.Get("from"), q.Get("to"))
	if !ok {
		return
	}

	statement, err := h.reports.ClientStatement(r.Context(), id, from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statement)
}

func (h *reportHandler) VehicleReport(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid id")
		return
	}
	q := r.URL.Query()
	from, to, ok := dateRange(w, q.Get("from"), q.Get("to"))
	if !ok {
		return
	}

	report, err := h.reports.VehicleReport(r.Context(), id, from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *reportHandler) ProfitLoss(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	month := queryID(q.Get("month"))
	year := queryID(q.Get("year"))

	pl, err := h.reports.MonthlyProfitLoss(r.Context(), month, year)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pl)
}

func (h *reportHandler) DailyTotals(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to, ok := dateRange(w, q.Get("from"), q.Get("to"))
	if !ok {
		return
	}

	totals, err := h.reports.DailyTotals(r.Context(), from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"totals": totals})
}

func (h *reportHandler) MonthlyTotals(w http.ResponseWriter, r *http.Request) {
	year := queryID(r.URL.Query().Get("year"))

	totals, err := h.reports.MonthlyTotals(r.Context(), year)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"totals": totals})
}
