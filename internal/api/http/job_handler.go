package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fleetops-backend/internal/domain"
	"fleetops-backend/internal/repository"
	"fleetops-backend/internal/service"
)

type jobHandler struct {
	jobs service.JobService
}

func newJobHandler(jobs service.JobService) *jobHandler {
	return &jobHandler{jobs: jobs}
}

func pathID(r *http.Request) (int32, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

func (h *jobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var job domain.Job
	if !decodeBody(w, r, &job) {
		return
	}

	created, err := h.jobs.CreateJob(r.Context(), &job)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *jobHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Jobs []domain.Job `json:"jobs"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	created, err := h.jobs.CreateJobBatch(r.Context(), body.Jobs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"jobs": created})
}

func (h *jobHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid id")
		return
	}

	job, err := h.jobs.GetJob(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (h *jobHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.JobFilter{
		ClientID:  queryID(q.Get("client_id")),
		VehicleID: queryID(q.Get("vehicle_id")),
		Variant:   domain.Variant(q.Get("variant")),
		Status:    domain.JobStatus(q.Get("status")),
		From:      q.Get("from"),
		To:        q.Get("to"),
	}

	jobs, err := h.jobs.ListJobs(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"jobs": jobs})
}

func (h *jobHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid id")
		return
	}

	// Body optional: lorry jobs complete without one.
	var body struct {
		EndMeter *float64 `json:"end_meter"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if !decodeBody(w, r, &body) {
			return
		}
	}

	job, err := h.jobs.CompleteJob(r.Context(), id, body.EndMeter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (h *jobHandler) Pay(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid id")
		return
	}

	job, err := h.jobs.MarkJobPaid(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func queryID(raw string) int32 {
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id < 0 {
		return 0
	}
	return int32(id)
}
