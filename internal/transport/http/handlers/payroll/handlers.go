package payrollhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"paydesk/internal/domain/directory"
	"paydesk/internal/domain/payroll"
	"paydesk/internal/domain/session"
	"paydesk/internal/platform/money"
	"paydesk/internal/transport/http/api"
	"paydesk/internal/transport/http/middleware"
	"paydesk/internal/transport/http/shared"
)

type Handler struct {
	Employees *directory.Service
	Ledger    *payroll.Ledger
	Payslips  *payroll.PayslipWriter
	Session   *session.Service
}

func NewHandler(employees *directory.Service, ledger *payroll.Ledger, payslips *payroll.PayslipWriter, sess *session.Service) *Handler {
	return &Handler{Employees: employees, Ledger: ledger, Payslips: payslips, Session: sess}
}

type processPayload struct {
	EmployeeID string        `json:"employeeId"`
	Input      payroll.Input `json:"input"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Get("/records", h.handleListRecords)
		r.Get("/records/{recordID}", h.handleGetRecord)
		r.Get("/records/{recordID}/payslip", h.handleDownloadPayslip)
		r.Post("/preview", h.handlePreview)
		r.Post("/process", h.handleProcess)
	})
	r.Get("/stats", h.handleStats)
}

func (h *Handler) handleListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.Ledger.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_records_failed", "failed to list payroll records", middleware.GetRequestID(r.Context()))
		return
	}
	page := shared.ParsePagination(r, 50, 200)
	api.Success(w, map[string]any{
		"total":   len(records),
		"records": shared.Page(records, page),
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Ledger.Get(r.Context(), chi.URLParam(r, "recordID"))
	if errors.Is(err, payroll.ErrRecordNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "payroll record not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_record_failed", "failed to load payroll record", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, rec, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDownloadPayslip(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Ledger.Get(r.Context(), chi.URLParam(r, "recordID"))
	if errors.Is(err, payroll.ErrRecordNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "payroll record not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_record_failed", "failed to load payroll record", middleware.GetRequestID(r.Context()))
		return
	}

	path, err := h.Payslips.Write(*rec)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslip_failed", "failed to generate payslip", middleware.GetRequestID(r.Context()))
		return
	}
	data, err := h.Payslips.Read(path)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslip_failed", "failed to read payslip", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+rec.ID+".pdf")
	_, _ = w.Write(data)
}

// handlePreview computes a breakdown without touching the ledger.
func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	var payload processPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	emp, err := h.Employees.Get(r.Context(), payload.EmployeeID)
	if errors.Is(err, directory.ErrEmployeeNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "preview_failed", "failed to compute preview", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, payroll.Compute(emp.Salary, payload.Input), middleware.GetRequestID(r.Context()))
}

// handleProcess runs the one-shot begin-and-finalize flow.
func (h *Handler) handleProcess(w http.ResponseWriter, r *http.Request) {
	var payload processPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	rec, err := h.Session.Process(r.Context(), payload.EmployeeID, payload.Input)
	if errors.Is(err, directory.ErrEmployeeNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if errors.Is(err, session.ErrNotIdle) {
		api.Fail(w, http.StatusConflict, "invalid_state", "another action is in progress", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_process_failed", "failed to process payroll", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, rec, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Session.Stats(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "stats_failed", "failed to compute stats", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{
		"totalEmployees":        stats.TotalEmployees,
		"activeEmployees":       stats.ActiveEmployees,
		"totalPayroll":          stats.TotalPayroll,
		"totalPayrollFormatted": money.Format(stats.TotalPayroll),
	}, middleware.GetRequestID(r.Context()))
}
