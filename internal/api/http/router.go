package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"fleetops-backend/internal/service"
)

// Services bundles everything the HTTP layer depends on
type Services struct {
	Job      service.JobService
	Bill     service.BillService
	Payroll  service.PayrollService
	Report   service.ReportService
	Registry service.RegistryService
}

// NewRouter builds the /api/v1 route tree
func NewRouter(services *Services) *mux.Router {
	router := mux.NewRouter()
	router.Use(loggingMiddleware)

	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	jobHandler := newJobHandler(services.Job)
	api.HandleFunc("/jobs", jobHandler.Create).Methods("POST")
	api.HandleFunc("/jobs/batch", jobHandler.CreateBatch).Methods("POST")
	api.HandleFunc("/jobs", jobHandler.List).Methods("GET")
	api.HandleFunc("/jobs/{id}", jobHandler.Get).Methods("GET")
	api.HandleFunc("/jobs/{id}/complete", jobHandler.Complete).Methods("POST")
	api.HandleFunc("/jobs/{id}/pay", jobHandler.Pay).Methods("POST")

	billHandler := newBillHandler(services.Bill)
	api.HandleFunc("/bills", billHandler.Create).Methods("POST")
	api.HandleFunc("/bills", billHandler.List).Methods("GET")
	api.HandleFunc("/bills/{id}", billHandler.Get).Methods("GET")
	api.HandleFunc("/bills/{id}", billHandler.Update).Methods("PUT")

	payrollHandler := newPayrollHandler(services.Payroll)
	api.HandleFunc("/attendance", payrollHandler.MarkAttendance).Methods("PUT")
	api.HandleFunc("/attendance", payrollHandler.ListAttendance).Methods("GET")
	api.HandleFunc("/salary/calculate", payrollHandler.CalculateSalary).Methods("POST")
	api.HandleFunc("/salary/payments", payrollHandler.RecordPayment).Methods("POST")
	api.HandleFunc("/salary/payments", payrollHandler.ListPayments).Methods("GET")

	reportHandler := newReportHandler(services.Report)
	api.HandleFunc("/reports/clients/{id}/statement", reportHandler.ClientStatement).Methods("GET")
	api.HandleFunc("/reports/vehicles/{id}", reportHandler.VehicleReport).Methods("GET")
	api.HandleFunc("/reports/profit-loss", reportHandler.ProfitLoss).Methods("GET")
	api.HandleFunc("/reports/daily", reportHandler.DailyTotals).Methods("GET")
	api.HandleFunc("/reports/monthly", reportHandler.MonthlyTotals).Methods("GET")

	registryHandler := newRegistryHandler(services.Registry)
	api.HandleFunc("/clients", registryHandler.CreateClient).Methods("POST")
	api.HandleFunc("/clients", registryHandler.ListClients).Methods("GET")
	api.HandleFunc("/clients/{id}/payments", registryHandler.RecordClientPayment).Methods("POST")
	api.HandleFunc("/vehicles", registryHandler.CreateVehicle).Methods("POST")
	api.HandleFunc("/vehicles", registryHandler.ListVehicles).Methods("GET")
	api.HandleFunc("/vehicles/{id}/expenses", registryHandler.RecordVehicleExpense).Methods("POST")
	api.HandleFunc("/workers", registryHandler.CreateWorker).Methods("POST")
	api.HandleFunc("/workers", registryHandler.ListWorkers).Methods("GET")
	api.HandleFunc("/workers/{id}", registryHandler.UpdateWorker).Methods("PUT")

	return router
}
