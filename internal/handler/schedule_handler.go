package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/misbahapp/prayer-notification-scheduling/internal/domain"
)

// ScheduleHandler exposes the persisted day schedules for inspection.
type ScheduleHandler struct {
	store domain.ScheduleStore
}

func NewScheduleHandler(store domain.ScheduleStore) *ScheduleHandler {
	return &ScheduleHandler{
		store: store,
	}
}

func (h *ScheduleHandler) HandleGetDay(c *gin.Context) {
	ctx := c.Request.Context()

	date := c.Param("date")
	if _, err := domain.ParseDateKey(date); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "date must be YYYY-MM-DD")
		return
	}

	notifications, err := h.store.GetDay(ctx, date)
	if err != nil {
		if isNotFound(err) {
			respondError(c, http.StatusNotFound, "not_found", "no schedule for date")
			return
		}
		slog.ErrorContext(ctx, "failed to load day schedule",
			slog.String("date", date),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "storage_error", "failed to load schedule")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":          date,
		"notifications": notifications,
	})
}
