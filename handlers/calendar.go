package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tutorly/models"
	"tutorly/services/scheduling"
	"tutorly/utils"
)

// Calendar renders one calendar page: the viewer's appointments inside the
// requested view range, positioned on the grid, plus title and navigation
// targets. Query params: view=day|week|month (default day), date (defaults
// to today), direction=next|previous|today applied to date before rendering.
func (h *AppointmentHandler) Calendar(c *gin.Context) {
	filter, _ := viewerFilter(c)

	view := models.CalendarView(c.DefaultQuery("view", string(models.ViewDay)))
	if !view.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "invalid view", "view must be day, week or month")
		return
	}

	reference, err := parseDateParam(c.Query("date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", err.Error())
		return
	}
	if reference.IsZero() {
		reference = h.Sched.Navigate(view, reference, scheduling.DirectionToday)
	}
	if dir := c.Query("direction"); dir != "" {
		if dir != scheduling.DirectionNext && dir != scheduling.DirectionPrevious && dir != scheduling.DirectionToday {
			utils.JSONError(c, http.StatusBadRequest, "invalid direction", "direction must be next, previous or today")
			return
		}
		reference = h.Sched.Navigate(view, reference, dir)
	}

	appts, err := h.Service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.Sched.CalendarPage(appts, view, reference))
}

// Slots returns the candidate bookable windows for a day. Query params:
// date (defaults to today), duration in minutes (defaults to the
// configured slot duration).
func (h *AppointmentHandler) Slots(c *gin.Context) {
	date, err := parseDateParam(c.Query("date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", err.Error())
		return
	}
	if date.IsZero() {
		date = h.Sched.Navigate(models.ViewDay, date, scheduling.DirectionToday)
	}

	var duration time.Duration
	if raw := c.Query("duration"); raw != "" {
		minutes, err := time.ParseDuration(raw + "m")
		if err != nil || minutes <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid duration", "duration must be a positive number of minutes")
			return
		}
		duration = minutes
	}

	c.JSON(http.StatusOK, gin.H{"slots": h.Sched.DaySlots(date, duration)})
}

// parseDateParam accepts a bare date or an RFC3339 timestamp. Empty input
// returns the zero time so callers can substitute today.
func parseDateParam(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
