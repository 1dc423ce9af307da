// File: handlers/appointment.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookAppointmentRequest is the payload for reserving a slot.
type BookAppointmentRequest struct {
	ProfessorID string `json:"professorId" binding:"required"`
	Date        string `json:"date" binding:"required"`
	TimeSlot    string `json:"timeSlot" binding:"required"`
}

// BookAppointmentHandler handles POST /appointments/book. The student id is
// the authenticated caller.
func (h *SchedulingHandler) BookAppointmentHandler(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Warn("Invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	appt, err := h.Service.Book(c.Request.Context(), caller.ID, req.ProfessorID, req.Date, req.TimeSlot)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// GetMyAppointmentsHandler handles GET /appointments/mine for either role.
func (h *SchedulingHandler) GetMyAppointmentsHandler(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	appts, err := h.Service.ListMine(c.Request.Context(), caller)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

// GetProfessorAppointmentsHandler handles GET /appointments/professor.
func (h *SchedulingHandler) GetProfessorAppointmentsHandler(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	appts, err := h.Service.ListForProfessor(c.Request.Context(), caller.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

// GetAppointmentByIDHandler handles GET /appointments/:id, visible only to
// the student or professor on the record.
func (h *SchedulingHandler) GetAppointmentByIDHandler(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	appt, err := h.Service.GetByID(c.Request.Context(), c.Param("id"), caller)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CancelAppointmentHandler handles PUT /appointments/:id/cancel for the
// owning professor.
func (h *SchedulingHandler) CancelAppointmentHandler(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	appt, err := h.Service.Cancel(c.Request.Context(), c.Param("id"), caller.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}
