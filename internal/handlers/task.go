package handlers

import (
	"errors"
	"net/http"

	dom "github.com/scr1b3s/taskmaster/internal/domain"
	"github.com/scr1b3s/taskmaster/internal/dto"
	"github.com/scr1b3s/taskmaster/internal/service"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	svc *service.TaskService
}

func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// List godoc
// @Summary      List mirrored tasks, untriaged first
// @Tags         tasks
// @Produce      json
// @Success      200  {object}  dto.ListTasksResponse
// @Failure      500  {object}  map[string]string
// @Router       /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ListTasksResponse{Items: tasksToResponses(list)})
}

// GetByID godoc
// @Summary      Get a task by id (select for focus)
// @Tags         tasks
// @Produce      json
// @Param        id   path      string  true  "Task id (external)"
// @Success      200  {object}  dto.TaskResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	t, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, taskToResponse(t))
}

// Triage godoc
// @Summary      Triage a task into a domain
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      string  true  "Task id (external)"
// @Param        body  body      dto.TriageRequest  true  "Domain name"
// @Success      200   {object}  dto.TaskResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /tasks/{id}/triage [post]
func (h *TaskHandler) Triage(c *gin.Context) {
	var req dto.TriageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.svc.Triage(c.Request.Context(), c.Param("id"), req.Domain)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, taskToResponse(t))
}

func taskToResponse(t dom.TaskWithDomain) dto.TaskResponse {
	resp := dto.TaskResponse{
		ID:        t.GoogleTaskID,
		Title:     t.Title,
		Status:    t.Status,
		ParentID:  t.ParentID,
		IsTriaged: t.IsTriaged,
		CreatedAt: t.CreatedAt,
	}
	if t.Domain != nil {
		resp.Domain = &dto.DomainResponse{
			ID:       t.Domain.ID,
			Name:     t.Domain.Name,
			ColorHex: t.Domain.ColorHex,
		}
	}
	return resp
}

func tasksToResponses(list []dom.TaskWithDomain) []dto.TaskResponse {
	out := make([]dto.TaskResponse, len(list))
	for i := range list {
		out[i] = taskToResponse(list[i])
	}
	return out
}
