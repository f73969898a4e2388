package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiraleos/wellness-backend/internal/store"
)

func TestLogRecords(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := srv.do(t, "alice", http.MethodPost, "/logs", map[string]interface{}{"mood": "tired", "energy": 3, "note": "long day"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[store.LogEntry](t, rec)
	assert.Equal(t, "alice", created.UserID)

	rec = srv.do(t, "alice", http.MethodPatch, "/logs/"+created.ID, map[string]interface{}{"energy": 5})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 5, decode[store.LogEntry](t, rec).Energy)

	rec = srv.do(t, "alice", http.MethodPatch, "/logs/"+created.ID, map[string]interface{}{"user_id": "bob"})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "fields outside the patch set are rejected")

	rec = srv.do(t, "alice", http.MethodPatch, "/logs/"+created.ID, map[string]interface{}{"energy": 42})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, "bob", http.MethodGet, "/logs/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(t, "alice", http.MethodGet, "/logs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]store.LogEntry](t, rec), 1)

	rec = srv.do(t, "bob", http.MethodGet, "/logs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = srv.do(t, "alice", http.MethodDelete, "/logs/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = srv.do(t, "alice", http.MethodGet, "/logs/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAlarmRecords(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := srv.do(t, "alice", http.MethodPost, "/alarms", map[string]interface{}{"label": "Meds", "time": "08:00"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	alarm := decode[store.Alarm](t, rec)
	assert.True(t, alarm.Enabled, "alarms are enabled unless stated otherwise")

	rec = srv.do(t, "alice", http.MethodPost, "/alarms", map[string]interface{}{"time": "8am"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, "alice", http.MethodPatch, "/alarms/"+alarm.ID, map[string]interface{}{"enabled": false})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[store.Alarm](t, rec).Enabled)

	rec = srv.do(t, "alice", http.MethodGet, "/alarms/"+alarm.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, "alice", http.MethodDelete, "/alarms/"+alarm.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestContactRecords(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := srv.do(t, "alice", http.MethodPost, "/contacts", map[string]interface{}{"name": "Sam", "phone": "555-0100", "relationship": "sister"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	contact := decode[store.EmergencyContact](t, rec)

	rec = srv.do(t, "alice", http.MethodPost, "/contacts", map[string]interface{}{"name": "No Phone"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, "alice", http.MethodPatch, "/contacts/"+contact.ID, map[string]interface{}{"phone": "555-0199"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "555-0199", decode[store.EmergencyContact](t, rec).Phone)

	rec = srv.do(t, "alice", http.MethodGet, "/contacts", nil)
	assert.Len(t, decode[[]store.EmergencyContact](t, rec), 1)

	rec = srv.do(t, "bob", http.MethodDelete, "/contacts/"+contact.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSafetyPlanRecords(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := srv.do(t, "alice", http.MethodPost, "/safety-plans", map[string]interface{}{
		"warning_signs":     "withdrawing",
		"coping_strategies": "music, walk",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	plan := decode[store.SafetyPlan](t, rec)

	rec = srv.do(t, "alice", http.MethodPatch, "/safety-plans/"+plan.ID, map[string]interface{}{"support_contacts": "Sam"})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[store.SafetyPlan](t, rec)
	assert.Equal(t, "Sam", updated.SupportContacts)
	assert.Equal(t, "withdrawing", updated.WarningSigns)

	rec = srv.do(t, "alice", http.MethodGet, "/safety-plans/"+plan.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = srv.do(t, "alice", http.MethodGet, "/safety-plans", nil)
	assert.Len(t, decode[[]store.SafetyPlan](t, rec), 1)

	rec = srv.do(t, "alice", http.MethodDelete, "/safety-plans/"+plan.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestWellnessItemRecords(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := srv.do(t, "alice", http.MethodPost, "/wellness-items", map[string]interface{}{"title": "Drink water", "category": "health"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	item := decode[store.WellnessItem](t, rec)
	assert.False(t, item.Completed)

	rec = srv.do(t, "alice", http.MethodPost, "/wellness-items", map[string]interface{}{"title": "x", "priority": 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, "alice", http.MethodPatch, "/wellness-items/"+item.ID, map[string]interface{}{"completed": true})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[store.WellnessItem](t, rec).Completed)

	rec = srv.do(t, "alice", http.MethodGet, "/wellness-items", nil)
	assert.Len(t, decode[[]store.WellnessItem](t, rec), 1)

	rec = srv.do(t, "alice", http.MethodDelete, "/wellness-items/"+item.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = srv.do(t, "alice", http.MethodGet, "/wellness-items/"+item.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
