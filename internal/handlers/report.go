package handlers

import (
	"net/http"

	dom "github.com/scr1b3s/taskmaster/internal/domain"
	"github.com/scr1b3s/taskmaster/internal/dto"
	"github.com/scr1b3s/taskmaster/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	svc *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// Report godoc
// @Summary      Aggregated focus statistics
// @Tags         report
// @Produce      json
// @Success      200  {object}  dto.ReportResponse
// @Failure      500  {object}  map[string]string
// @Router       /report [get]
func (h *ReportHandler) Report(c *gin.Context) {
	rep, err := h.svc.Report(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reportToResponse(rep))
}

func reportToResponse(rep dom.Report) dto.ReportResponse {
	out := dto.ReportResponse{
		TotalHours:          rep.TotalHours,
		SessionCount:        rep.SessionCount,
		AvgSessionMinutes:   rep.AvgSessionMinutes,
		Domains:             make([]dto.DomainHoursResponse, len(rep.Domains)),
		TopTasks:            make([]dto.TaskMinutesResponse, len(rep.TopTasks)),
		InterruptionReasons: make([]dto.ReasonCountResponse, len(rep.Reasons)),
		RecentInterruptions: make([]dto.InterruptionResponse, len(rep.Recent)),
	}
	for i, d := range rep.Domains {
		out.Domains[i] = dto.DomainHoursResponse{Name: d.Name, ColorHex: d.ColorHex, Hours: d.Hours}
	}
	for i, t := range rep.TopTasks {
		out.TopTasks[i] = dto.TaskMinutesResponse{TaskID: t.TaskID, Title: t.Title, Minutes: t.Minutes}
	}
	for i, r := range rep.Reasons {
		out.InterruptionReasons[i] = dto.ReasonCountResponse{Reason: r.Reason, Count: r.Count}
	}
	for i, r := range rep.Recent {
		out.RecentInterruptions[i] = dto.InterruptionResponse{OccurredAt: r.OccurredAt, Reason: r.Reason, TaskTitle: r.TaskTitle}
	}
	return out
}
