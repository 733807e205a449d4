package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"podium/internal/services"
)

type ReconcileHandler struct {
	Service *services.ReconcileService
}

func NewReconcileHandler(service *services.ReconcileService) *ReconcileHandler {
	return &ReconcileHandler{Service: service}
}

// @Summary      Run batch finance reconciliation
// @Description  Links won deals to projects, recomputes project aggregates and summarizes
// @Tags         Sync
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /api/admin/sync-finance [post]
func (h *ReconcileHandler) Run(c *gin.Context) {
	res, err := h.Service.Run()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reconciliation failed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"projectsUpdated": res.ProjectsUpdated,
		"dealsLinked":     res.DealsLinked,
		"summary":         res.Summary,
	})
}

// @Summary      Sync status report
// @Description  Per won deal: Unlinked / Synced / Out of Sync by payment status
// @Tags         Sync
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /api/admin/sync-finance [get]
func (h *ReconcileHandler) Status(c *gin.Context) {
	rows, summary, err := h.Service.Status()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build sync status", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  rows,
		"summary": summary,
	})
}
