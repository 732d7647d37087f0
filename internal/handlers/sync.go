package handlers

import (
	"errors"
	"net/http"

	"github.com/scr1b3s/taskmaster/internal/dto"
	"github.com/scr1b3s/taskmaster/internal/service"

	"github.com/gin-gonic/gin"
)

type SyncHandler struct {
	svc *service.SyncService
}

func NewSyncHandler(svc *service.SyncService) *SyncHandler {
	return &SyncHandler{svc: svc}
}

// Sync godoc
// @Summary      Pull tasks from the external provider into the local store
// @Tags         sync
// @Produce      json
// @Success      200  {object}  dto.SyncResponse
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /sync [post]
func (h *SyncHandler) Sync(c *gin.Context) {
	count, err := h.svc.Sync(c.Request.Context())
	if err != nil {
		// Structured error payload, never a bare 500 page: the UI renders it.
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, service.ErrAuth):
			status = http.StatusUnauthorized
		case errors.Is(err, service.ErrProvider):
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"status": "error", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.SyncResponse{Status: "success", SyncedCount: count})
}
