package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/misbahapp/prayer-notification-scheduling/internal/domain"
	"github.com/misbahapp/prayer-notification-scheduling/internal/service/action"
)

// CallbackHandler receives delivery and button-tap callbacks from the
// notification gateway.
type CallbackHandler struct {
	router *action.Router
}

func NewCallbackHandler(router *action.Router) *CallbackHandler {
	return &CallbackHandler{
		router: router,
	}
}

type callbackRequest struct {
	ActionID string                     `json:"action_id"`
	Payload  domain.NotificationPayload `json:"payload"`
}

func (h *CallbackHandler) HandleCallback(c *gin.Context) {
	ctx := c.Request.Context()

	var req callbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid callback request body",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	act, err := domain.DecodeAction(req.ActionID, req.Payload)
	if err != nil {
		// Unknown actions and malformed payloads are dropped, not retried:
		// the gateway would resend them forever on a non-2xx.
		slog.WarnContext(ctx, "dropping undecodable callback",
			slog.String("action_id", req.ActionID),
			slog.String("prayer", req.Payload.Prayer.String()),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	slog.InfoContext(ctx, "processing notification callback",
		slog.String("action_id", req.ActionID),
		slog.String("prayer", req.Payload.Prayer.String()),
		slog.String("date", req.Payload.Date),
	)

	if err := h.router.Handle(ctx, act); err != nil {
		slog.ErrorContext(ctx, "failed to handle notification action",
			slog.String("action_id", req.ActionID),
			slog.String("prayer", req.Payload.Prayer.String()),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "processing_error", "failed to process callback")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func respondError(c *gin.Context, status int, errType, message string) {
	c.JSON(status, gin.H{
		"error":   errType,
		"message": message,
	})
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrScheduleNotFound)
}
