package http

import (
	"net/http"

	"fleetops-backend/internal/domain"
	"fleetops-backend/internal/service"
)

type billHandler struct {
	bills service.BillService
}

func newBillHandler(bills service.BillService) *billHandler {
	return &billHandler{bills: bills}
}

func (h *billHandler) Create(w http.ResponseWriter, r *http.Request) {
	var bill domain.MonthlyVehicleBill
	if !decodeBody(w, r, &bill) {
		return
	}

	created, err := h.bills.CreateBill(r.Context(), &bill)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *billHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid id")
		return
	}

	var bill domain.MonthlyVehicleBill
	if !decodeBody(w, r, &bill) {
		return
	}

	updated, err := h.bills.UpdateBill(r.Context(), id, &bill)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *billHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid id")
		return
	}

	bill, err := h.bills.GetBill(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bill)
}

func (h *billHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	bills, err := h.bills.ListBills(r.Context(), queryID(q.Get("month")), queryID(q.Get("year")), queryID(q.Get("vehicle_id")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"bills": bills})
}
