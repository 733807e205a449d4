package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"podium/internal/services"
)

type SyncHandler struct {
	Service *services.FinanceService
}

func NewSyncHandler(service *services.FinanceService) *SyncHandler {
	return &SyncHandler{Service: service}
}

type budgetSyncRequest struct {
	DealID    *int    `json:"dealId"`
	ProjectID *int    `json:"projectId"`
	NewBudget float64 `json:"newBudget"`
	Source    string  `json:"source"`
}

// @Summary      Sync a budget value across deal and project
// @Description  Updates the named side and propagates the budget to the heuristic counterpart
// @Tags         Sync
// @Accept       json
// @Produce      json
// @Param        sync  body      budgetSyncRequest  true  "Budget sync"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/sync/budget [post]
func (h *SyncHandler) SyncBudget(c *gin.Context) {
	var req budgetSyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.DealID == nil && req.ProjectID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "either dealId or projectId is required"})
		return
	}
	if req.NewBudget <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "newBudget must be positive"})
		return
	}

	res, err := h.Service.SyncBudget(req.DealID, req.ProjectID, req.NewBudget, req.Source)
	if err != nil {
		if err == services.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "budget sync failed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        res.Message,
		"updatedDeal":    res.UpdatedDeal,
		"updatedProject": res.UpdatedProject,
		"syncedFrom":     res.SyncedFrom,
	})
}

// @Summary      Budget mismatch report for a company
// @Tags         Sync
// @Produce      json
// @Param        company  query     string  true  "Company name"
// @Success      200      {object}  services.CompanyReport
// @Failure      400      {object}  map[string]string
// @Router       /api/sync/budget [get]
func (h *SyncHandler) CompanyReport(c *gin.Context) {
	company := c.Query("company")
	if company == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "company is required"})
		return
	}
	report, err := h.Service.CompanyBudgetReport(company)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}
