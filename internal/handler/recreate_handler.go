package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/misbahapp/prayer-notification-scheduling/internal/service/recreation"
)

// RecreateHandler triggers the daily recreation cycle. The optional `at`
// query parameter substitutes a virtual reference instant for testing.
type RecreateHandler struct {
	coordinator *recreation.Coordinator
}

func NewRecreateHandler(coordinator *recreation.Coordinator) *RecreateHandler {
	return &RecreateHandler{
		coordinator: coordinator,
	}
}

func (h *RecreateHandler) HandleRecreate(c *gin.Context) {
	ctx := c.Request.Context()

	at := time.Now()
	if raw := c.Query("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", "at must be RFC3339")
			return
		}
		at = parsed
	}

	outcome, err := h.coordinator.RecreateIfNeededAt(ctx, at)
	if err != nil {
		slog.ErrorContext(ctx, "daily recreation failed",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "processing_error", "recreation failed")
		return
	}

	resp := gin.H{
		"ran":  outcome.Ran,
		"date": outcome.Date,
	}
	if outcome.Ran {
		resp["cancelled_dates"] = outcome.CancelledDates
		resp["scheduled"] = len(outcome.Schedule.Scheduled)
		resp["skipped_past"] = len(outcome.Schedule.SkippedPast)
		resp["skipped_disabled"] = len(outcome.Schedule.SkippedDisabled)
		resp["failed"] = len(outcome.Schedule.Failed)
	}

	c.JSON(http.StatusOK, resp)
}
