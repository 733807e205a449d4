package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"podium/internal/services"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: service}
}

func (h *ReportHandler) GetSummary(c *gin.Context) {
	data, err := h.Service.GetSummary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build summary", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}
