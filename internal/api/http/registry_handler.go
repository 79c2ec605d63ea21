package http

import (
	"net/http"

	"fleetops-backend/internal/domain"
	"fleetops-backend/internal/service"
)

type registryHandler struct {
	registry service.RegistryService
}

func newRegistryHandler(registry service.RegistryService) *registryHandler {
	return &registryHandler{registry: registry}
}

func (h *registryHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var client domain.Client
	if !decodeBody(w, r, &client) {
		return
	}

	created, err := h.registry.CreateClient(r.Context(), &client)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *registryHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.registry.ListClients(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"clients": clients})
}

func (h *registryHandler) RecordClientPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid id")
		return
	}

	var payment domain.ClientPayment
	if !decodeBody(w, r, &payment) {
		return
	}
	payment.ClientID = id

	recorded, err := h.registry.RecordClientPayment(r.Context(), &payment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, recorded)
}

func (h *registryHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var vehicle domain.Vehicle
	if !decodeBody(w, r, &vehicle) {
		return
	}

	created, err := h.registry.CreateVehicle(r.Context(), &vehicle)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *registryHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.registry.ListVehicles(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"vehicles": vehicles})
}

func (h *registryHandler) RecordVehicleExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid id")
		return
	}

	var expense domain.VehicleExpense
	if !decodeBody(w, r, &expense) {
		return
	}
	expense.VehicleID = id

	recorded, err := h.registry.RecordVehicleExpense(r.Context(), &expense)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, recorded)
}

func (h *registryHandler) CreateWorker(w http.ResponseWriter, r *http.Request) {
	var worker domain.Worker
	if !decodeBody(w, r, &worker) {
		return
	}

	created, err := h.registry.CreateWorker(r.Context(), &worker)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *registryHandler) UpdateWorker(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid id")
		return
	}

	var worker domain.Worker
	if !decodeBody(w, r, &worker) {
		return
	}
	worker.ID = id

	updated, err := h.registry.UpdateWorker(r.Context(), &worker)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *registryHandler) ListWorkers(w http.ResponseWriter, r *http.Request) {
	workers, err := h.registry.ListWorkers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"workers": workers})
}
