package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kiraleos/wellness-backend/internal/store"
)

// Request bodies accepted on create. Anything else in the body is rejected.

type CreateLogRequest struct {
	Mood   string `json:"mood"`
	Energy int    `json:"energy"`
	Note   string `json:"note"`
}

type CreateAlarmRequest struct {
	Label   string `json:"label"`
	Time    string `json:"time"`
	Enabled *bool  `json:"enabled"`
}

type CreateContactRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

type CreateSafetyPlanRequest struct {
	WarningSigns     string `json:"warning_signs"`
	CopingStrategies string `json:"coping_strategies"`
	SupportContacts  string `json:"support_contacts"`
	SafeEnvironment  string `json:"safe_environment"`
}

type CreateWellnessItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Completed   bool   `json:"completed"`
}

// Logs

func (h *APIHandler) CreateLogHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateLogRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}
	entry := &store.LogEntry{UserID: userIDFrom(r), Mood: req.Mood, Energy: req.Energy, Note: req.Note}
	if err := h.store.CreateLog(r.Context(), entry); err != nil {
		h.writeStoreError(w, r, "create log", err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (h *APIHandler) ListLogsHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.ListLogs(r.Context(), userIDFrom(r))
	if err != nil {
		h.writeStoreError(w, r, "list logs", err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *APIHandler) GetLogHandler(w http.ResponseWriter, r *http.Request) {
	entry, err := h.store.GetLog(r.Context(), chi.URLParam(r, "id"), userIDFrom(r))
	if err != nil {
		h.writeStoreError(w, r, "get log", err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *APIHandler) UpdateLogHandler(w http.ResponseWriter, r *http.Request) {
	var patch store.LogPatch
	if err := decodeStrict(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}
	entry, err := h.store.UpdateLog(r.Context(), chi.URLParam(r, "id"), userIDFrom(r), patch)
	if err != nil {
		h.writeStoreError(w, r, "update log", err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *APIHandler) DeleteLogHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteLog(r.Context(), chi.URLParam(r, "id"), userIDFrom(r)); err != nil {
		h.writeStoreError(w, r, "delete log", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Alarms

func (h *APIHandler) CreateAlarmHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateAlarmRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}
	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	alarm := &store.Alarm{UserID: userIDFrom(r), Label: req.Label, Time: req.Time, Enabled: enabled}
	if err := h.store.CreateAlarm(r.Context(), alarm); err != nil {
		h.writeStoreError(w, r, "create alarm", err)
		return
	}
	writeJSON(w, http.StatusCreated, alarm)
}

func (h *APIHandler) ListAlarmsHandler(w http.ResponseWriter, r *http.Request) {
	alarms, err := h.store.ListAlarms(r.Context(), userIDFrom(r))
	if err != nil {
		h.writeStoreError(w, r, "list alarms", err)
		return
	}
	writeJSON(w, http.StatusOK, alarms)
}

func (h *APIHandler) GetAlarmHandler(w http.ResponseWriter, r *http.Request) {
	alarm, err := h.store.GetAlarm(r.Context(), chi.URLParam(r, "id"), userIDFrom(r))
	if err != nil {
		h.writeStoreError(w, r, "get alarm", err)
		return
	}
	writeJSON(w, http.StatusOK, alarm)
}

func (h *APIHandler) UpdateAlarmHandler(w http.ResponseWriter, r *http.Request) {
	var patch store.AlarmPatch
	if err := decodeStrict(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}
	alarm, err := h.store.UpdateAlarm(r.Context(), chi.URLParam(r, "id"), userIDFrom(r), patch)
	if err != nil {
		h.writeStoreError(w, r, "update alarm", err)
		return
	}
	writeJSON(w, http.StatusOK, alarm)
}

func (h *APIHandler) DeleteAlarmHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteAlarm(r.Context(), chi.URLParam(r, "id"), userIDFrom(r)); err != nil {
		h.writeStoreError(w, r, "delete alarm", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Emergency contacts

func (h *APIHandler) CreateContactHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateContactRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}
	contact := &store.EmergencyContact{UserID: userIDFrom(r), Name: req.Name, Phone: req.Phone, Relationship: req.Relationship}
	if err := h.store.CreateContact(r.Context(), contact); err != nil {
		h.writeStoreError(w, r, "create contact", err)
		return
	}
	writeJSON(w, http.StatusCreated, contact)
}

func (h *APIHandler) ListContactsHandler(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.store.ListContacts(r.Context(), userIDFrom(r))
	if err != nil {
		h.writeStoreError(w, r, "list contacts", err)
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}

func (h *APIHandler) GetContactHandler(w http.ResponseWriter, r *http.Request) {
	contact, err := h.store.GetContact(r.Context(), chi.URLParam(r, "id"), userIDFrom(r))
	if err != nil {
		h.writeStoreError(w, r, "get contact", err)
		return
	}
	writeJSON(w, http.StatusOK, contact)
}

func (h *APIHandler) UpdateContactHandler(w http.ResponseWriter, r *http.Request) {
	var patch store.ContactPatch
	if err := decodeStrict(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}
	contact, err := h.store.UpdateContact(r.Context(), chi.URLParam(r, "id"), userIDFrom(r), patch)
	if err != nil {
		h.writeStoreError(w, r, "update contact", err)
		return
	}
	writeJSON(w, http.StatusOK, contact)
}

func (h *APIHandler) DeleteContactHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteContact(r.Context(), chi.URLParam(r, "id"), userIDFrom(r)); err != nil {
		h.writeStoreError(w, r, "delete contact", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Safety plans

func (h *APIHandler) CreateSafetyPlanHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateSafetyPlanRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}
	plan := &store.SafetyPlan{
		UserID:           userIDFrom(r),
		WarningSigns:     req.WarningSigns,
		CopingStrategies: req.CopingStrategies,
		SupportContacts:  req.SupportContacts,
		SafeEnvironment:  req.SafeEnvironment,
	}
	if err := h.store.CreateSafetyPlan(r.Context(), plan); err != nil {
		h.writeStoreError(w, r, "create safety plan", err)
		return
	}
	writeJSON(w, http.StatusCreated, plan)
}

func (h *APIHandler) ListSafetyPlansHandler(w http.ResponseWriter, r *http.Request) {
	plans, err := h.store.ListSafetyPlans(r.Context(), userIDFrom(r))
	if err != nil {
		h.writeStoreError(w, r, "list safety plans", err)
		return
	}
	writeJSON(w, http.StatusOK, plans)
}

func (h *APIHandler) GetSafetyPlanHandler(w http.ResponseWriter, r *http.Request) {
	plan, err := h.store.GetSafetyPlan(r.Context(), chi.URLParam(r, "id"), userIDFrom(r))
	if err != nil {
		h.writeStoreError(w, r, "get safety plan", err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (h *APIHandler) UpdateSafetyPlanHandler(w http.ResponseWriter, r *http.Request) {
	var patch store.SafetyPlanPatch
	if err := decodeStrict(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}
	plan, err := h.store.UpdateSafetyPlan(r.Context(), chi.URLParam(r, "id"), userIDFrom(r), patch)
	if err != nil {
		h.writeStoreError(w, r, "update safety plan", err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (h *APIHandler) DeleteSafetyPlanHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteSafetyPlan(r.Context(), chi.URLParam(r, "id"), userIDFrom(r)); err != nil {
		h.writeStoreError(w, r, "delete safety plan", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Wellness plan items

func (h *APIHandler) CreateWellnessItemHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateWellnessItemRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}
	item := &store.WellnessItem{
		UserID:      userIDFrom(r),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Completed:   req.Completed,
	}
	if err := h.store.CreateWellnessItem(r.Context(), item); err != nil {
		h.writeStoreError(w, r, "create wellness item", err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *APIHandler) ListWellnessItemsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.ListWellnessItems(r.Context(), userIDFrom(r))
	if err != nil {
		h.writeStoreError(w, r, "list wellness items", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *APIHandler) GetWellnessItemHandler(w http.ResponseWriter, r *http.Request) {
	item, err := h.store.GetWellnessItem(r.Context(), chi.URLParam(r, "id"), userIDFrom(r))
	if err != nil {
		h.writeStoreError(w, r, "get wellness item", err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *APIHandler) UpdateWellnessItemHandler(w http.ResponseWriter, r *http.Request) {
	var patch store.WellnessItemPatch
	if err := decodeStrict(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}
	item, err := h.store.UpdateWellnessItem(r.Context(), chi.URLParam(r, "id"), userIDFrom(r), patch)
	if err != nil {
		h.writeStoreError(w, r, "update wellness item", err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *APIHandler) DeleteWellnessItemHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteWellnessItem(r.Context(), chi.URLParam(r, "id"), userIDFrom(r)); err != nil {
		h.writeStoreError(w, r, "delete wellness item", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
