package handlers

import (
	"errors"
	"net/http"

	"github.com/scr1b3s/taskmaster/internal/dto"
	"github.com/scr1b3s/taskmaster/internal/service"

	"github.com/gin-gonic/gin"
)

type TimerHandler struct {
	svc *service.TimerService
}

func NewTimerHandler(svc *service.TimerService) *TimerHandler {
	return &TimerHandler{svc: svc}
}

// Start godoc
// @Summary      Start the focus timer for a task (idempotent)
// @Tags         timer
// @Produce      json
// @Param        id   path  string  true  "Task id (external)"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tasks/{id}/start [post]
func (h *TimerHandler) Start(c *gin.Context) {
	if err := h.svc.Start(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Stop godoc
// @Summary      Stop the focus timer for a task (idempotent)
// @Tags         timer
// @Produce      json
// @Param        id   path  string  true  "Task id (external)"
// @Success      200  {object}  map[string]bool
// @Failure      500  {object}  map[string]string
// @Router       /tasks/{id}/stop [post]
func (h *TimerHandler) Stop(c *gin.Context) {
	if err := h.svc.Stop(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// LogInterruption godoc
// @Summary      Log why a focus session was interrupted
// @Tags         timer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Task id (external)"
// @Param        body  body  dto.InterruptionRequest  true  "Reason and optional notes"
// @Success      201   {object}  map[string]bool
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /tasks/{id}/interruptions [post]
func (h *TimerHandler) LogInterruption(c *gin.Context) {
	var req dto.InterruptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.LogInterruption(c.Request.Context(), c.Param("id"), req.Reason, req.Notes); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}
