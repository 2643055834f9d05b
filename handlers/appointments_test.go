package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tutorly/middleware"
	"tutorly/models"
	"tutorly/services/appointment"
	"tutorly/services/scheduling"
	"tutorly/utils"
)

func newTestRouter(t *testing.T, store appointment.AppointmentStore, now time.Time) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := &appointment.DefaultAppointmentService{
		Store:             store,
		Logger:            zap.NewNop(),
		DefaultHourlyRate: appointment.DefaultHourlyRate,
	}
	sched := scheduling.NewSchedulingService(scheduling.FixedClock(now))
	h := NewAppointmentHandler(svc, sched, zap.NewNop())

	router := gin.New()
	api := router.Group("/api/appointments")
	api.Use(middleware.JWTAuthMiddleware())
	api.GET("", h.ListBuckets)
	api.PATCH("/:id/cancel", h.Cancel)
	return router
}

func bearer(t *testing.T, userID, role string) string {
	t.Helper()
	token, err := utils.GenerateToken(userID, role, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func seedAppointment(id string, status models.Status, start time.Time, studentID string) models.Appointment {
	return models.Appointment{
		ID:        id,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    status,
		Students:  models.Refs(studentID),
		Tutors:    models.Refs("tut-1"),
	}
}

func TestListBuckets_StudentSeesOwnAppointments(t *testing.T) {
	now := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	store := appointment.NewInMemoryStore(
		seedAppointment("mine", models.StatusConfirmed, now.Add(24*time.Hour), "stu-1"),
		seedAppointment("unpaid", models.StatusAwaitingPayment, now.Add(48*time.Hour), "stu-1"),
		seedAppointment("other", models.StatusConfirmed, now.Add(24*time.Hour), "stu-2"),
	)
	router := newTestRouter(t, store, now)

	req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
	req.Header.Set("Authorization", bearer(t, "stu-1", models.RoleStudent))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var buckets models.AppointmentBuckets
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &buckets))
	assert.Len(t, buckets.Upcoming, 2)
	assert.Len(t, buckets.AwaitingPayment, 1)
	for _, a := range buckets.Upcoming {
		assert.NotEqual(t, "other", a.ID)
	}
}

func TestListBuckets_TutorGetsNoAwaitingPayment(t *testing.T) {
	now := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	store := appointment.NewInMemoryStore(
		seedAppointment("unpaid", models.StatusAwaitingPayment, now.Add(time.Hour), "stu-1"),
	)
	router := newTestRouter(t, store, now)

	req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
	req.Header.Set("Authorization", bearer(t, "tut-1", models.RoleTutor))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var buckets models.AppointmentBuckets
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &buckets))
	assert.Empty(t, buckets.AwaitingPayment)
	assert.Len(t, buckets.Upcoming, 1)
}

func TestListBuckets_RequiresToken(t *testing.T) {
	now := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	router := newTestRouter(t, appointment.NewInMemoryStore(), now)

	req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCancel_CompletedReturnsConflict(t *testing.T) {
	now := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	store := appointment.NewInMemoryStore(
		seedAppointment("done", models.StatusCompleted, now.Add(-24*time.Hour), "stu-1"),
	)
	router := newTestRouter(t, store, now)

	req := httptest.NewRequest(http.MethodPatch, "/api/appointments/done/cancel", nil)
	req.Header.Set("Authorization", bearer(t, "stu-1", models.RoleStudent))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "cannot be cancelled")
}

func TestCancel_PendingSucceedsAndReturnsRefreshedList(t *testing.T) {
	now := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	store := appointment.NewInMemoryStore(
		seedAppointment("a1", models.StatusPending, now.Add(24*time.Hour), "stu-1"),
	)
	router := newTestRouter(t, store, now)

	req := httptest.NewRequest(http.MethodPatch, "/api/appointments/a1/cancel", nil)
	req.Header.Set("Authorization", bearer(t, "stu-1", models.RoleStudent))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Appointments []models.Appointment `json:"appointments"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, models.StatusCancelled, resp.Appointments[0].Status)
}
