// File: handlers/availability.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetAvailabilityRequest is the payload for publishing a day's open slots.
type SetAvailabilityRequest struct {
	Date  string   `json:"date" binding:"required"`
	Slots []string `json:"slots" binding:"required"`
}

// SetAvailabilityHandler handles POST /availability. The professor id comes
// from the authenticated caller, never from the payload.
func (h *SchedulingHandler) SetAvailabilityHandler(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Warn("Invalid availability request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	record, created, err := h.Service.SetAvailability(c.Request.Context(), caller.ID, req.Date, req.Slots)
	if err != nil {
		h.respondError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, record)
}

// GetAvailabilityHandler handles GET /professor/:id/availability with an
// optional ?date= filter. Returned slot sets are the truly open view.
func (h *SchedulingHandler) GetAvailabilityHandler(c *gin.Context) {
	professorID := c.Param("id")
	date := c.Query("date")

	records, err := h.Service.GetAvailability(c.Request.Context(), professorID, date)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
