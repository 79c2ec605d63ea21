package http

import (
	"net/http"

	"fleetops-backend/internal/domain"
	"fleetops-backend/internal/service"
)

type payrollHandler struct {
	payroll service.PayrollService
}

func newPayrollHandler(payroll service.PayrollService) *payrollHandler {
	return &payrollHandler{payroll: payroll}
}

func (h *payrollHandler) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var record domain.AttendanceRecord
	if !decodeBody(w, r, &record) {
		return
	}

	marked, err := h.payroll.MarkAttendance(r.Context(), &record)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, marked)
}

func (h *payrollHandler) ListAttendance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	workerID := queryID(q.Get("worker_id"))
	if workerID == 0 {
		writeBadRequest(w, "worker_id is required")
		return
	}
	from, to, ok := dateRange(w, q.Get("from"), q.Get("to"))
	if !ok {
		return
	}

	records, err := h.payroll.ListAttendance(r.Context(), workerID, from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"attendance": records})
}

// CalculateSalary is the preview step: it computes the entitlement for a
// period and writes nothing.
func (h *payrollHandler) CalculateSalary(w http.ResponseWriter, r *http.Request) {
	var period domain.SalaryPeriod
	if !decodeBody(w, r, &period) {
		return
	}

	statement, err := h.payroll.CalculateSalary(r.Context(), period)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statement)
}

func (h *payrollHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var payment domain.SalaryPayment
	if !decodeBody(w, r, &payment) {
		return
	}

	recorded, err := h.payroll.RecordSalaryPayment(r.Context(), &payment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, recorded)
}

func (h *payrollHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	workerID := queryID(q.Get("worker_id"))
	if workerID == 0 {
		writeBadRequest(w, "worker_id is required")
		return
	}
	from, to, ok := dateRange(w, q.Get("from"), q.Get("to"))
	if !ok {
		return
	}

	payments, err := h.payroll.ListSalaryPayments(r.Context(), workerID, from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"payments": payments})
}
