// File: handlers/scheduling.go
package handlers

import (
	"errors"
	"net/http"

	"slotbook/middleware"
	"slotbook/models"
	"slotbook/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SchedulingHandler exposes the booking engine over HTTP.
type SchedulingHandler struct {
	Service scheduling.SchedulingService
	Logger  *zap.Logger
}

// NewSchedulingHandler constructs a SchedulingHandler.
func NewSchedulingHandler(svc scheduling.SchedulingService, logger *zap.Logger) *SchedulingHandler {
	return &SchedulingHandler{Service: svc, Logger: logger}
}

// respondError maps an engine failure kind to an HTTP status.
func (h *SchedulingHandler) respondError(c *gin.Context, err error) {
	kind := scheduling.KindOf(err)

	status := http.StatusInternalServerError
	switch kind {
	case scheduling.KindInvalidInput,
		scheduling.KindSlotUnavailable,
		scheduling.KindSlotAlreadyBooked,
		scheduling.KindAlreadyCancelled,
		scheduling.KindDuplicateAvailability:
		status = http.StatusBadRequest
	case scheduling.KindNotFound:
		status = http.StatusNotFound
	case scheduling.KindForbidden:
		status = http.StatusForbidden
	case scheduling.KindStoreUnavailable:
		status = http.StatusServiceUnavailable
	}

	if status >= http.StatusInternalServerError {
		h.Logger.Error("scheduling request failed", zap.Error(err))
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}

	message := err.Error()
	var se *scheduling.Error
	if errors.As(err, &se) {
		message = se.Message
	}
	c.JSON(status, gin.H{"error": message})
}

func callerFrom(c *gin.Context) (models.Caller, bool) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Caller not authenticated"})
		return models.Caller{}, false
	}
	return caller, true
}
