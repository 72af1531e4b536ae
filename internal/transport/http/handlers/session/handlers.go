package sessionhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"paydesk/internal/domain/directory"
	"paydesk/internal/domain/payroll"
	"paydesk/internal/domain/session"
	"paydesk/internal/transport/http/api"
	"paydesk/internal/transport/http/middleware"
)

// Handler exposes the session state machine over HTTP. Each endpoint maps
// to exactly one trigger; a trigger fired from the wrong state comes back
// as 409 invalid_state.
type Handler struct {
	Session *session.Service
}

func NewHandler(sess *session.Service) *Handler {
	return &Handler{Session: sess}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/session", func(r chi.Router) {
		r.Get("/", h.handleView)
		r.Post("/edit", h.handleEdit)
		r.Post("/save", h.handleSave)
		r.Post("/cancel", h.handleCancel)
		r.Post("/process/{employeeID}", h.handleBeginProcess)
		r.Post("/preview", h.handlePreview)
		r.Post("/finalize", h.handleFinalize)
		r.Post("/close", h.handleClose)
	})
}

func (h *Handler) handleView(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Session.View(), middleware.GetRequestID(r.Context()))
}

type editPayload struct {
	EmployeeID string `json:"employeeId"`
}

// handleEdit opens the employee form: without an employeeId it is an add,
// with one it is an edit of that employee.
func (h *Handler) handleEdit(w http.ResponseWriter, r *http.Request) {
	var payload editPayload
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
			return
		}
	}

	var err error
	if payload.EmployeeID == "" {
		err = h.Session.BeginAdd()
	} else {
		err = h.Session.BeginEdit(r.Context(), payload.EmployeeID)
	}
	if h.failed(w, r, err, "session_edit_failed") {
		return
	}
	api.Success(w, h.Session.View(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var draft directory.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	emp, err := h.Session.Save(r.Context(), draft)
	if errors.Is(err, directory.ErrNegativeSalary) {
		api.Fail(w, http.StatusBadRequest, "invalid_salary", "salary must not be negative", middleware.GetRequestID(r.Context()))
		return
	}
	if h.failed(w, r, err, "session_save_failed") {
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	if h.failed(w, r, h.Session.CancelEdit(), "session_cancel_failed") {
		return
	}
	api.Success(w, h.Session.View(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleBeginProcess(w http.ResponseWriter, r *http.Request) {
	err := h.Session.BeginProcess(r.Context(), chi.URLParam(r, "employeeID"))
	if h.failed(w, r, err, "session_process_failed") {
		return
	}
	api.Success(w, h.Session.View(), middleware.GetRequestID(r.Context()))
}

// handlePreview recomputes the open run's breakdown as the form changes.
func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	var in payroll.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	out, err := h.Session.Preview(in)
	if h.failed(w, r, err, "session_preview_failed") {
		return
	}
	api.Success(w, out, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleFinalize(w http.ResponseWriter, r *http.Request) {
	var in payroll.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	rec, err := h.Session.FinalizeProcess(r.Context(), in)
	if h.failed(w, r, err, "session_finalize_failed") {
		return
	}
	api.Created(w, rec, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleClose(w http.ResponseWriter, r *http.Request) {
	if h.failed(w, r, h.Session.CloseProcess(), "session_close_failed") {
		return
	}
	api.Success(w, h.Session.View(), middleware.GetRequestID(r.Context()))
}

// failed writes the common session error responses and reports whether the
// request is finished.
func (h *Handler) failed(w http.ResponseWriter, r *http.Request, err error, code string) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, session.ErrNotIdle),
		errors.Is(err, session.ErrNotEditing),
		errors.Is(err, session.ErrNotProcessing):
		api.Fail(w, http.StatusConflict, "invalid_state", err.Error(), middleware.GetRequestID(r.Context()))
	case errors.Is(err, directory.ErrEmployeeNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
	default:
		api.Fail(w, http.StatusInternalServerError, code, "request failed", middleware.GetRequestID(r.Context()))
	}
	return true
}
