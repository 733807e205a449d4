package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"podium/internal/models"
	"podium/internal/services"
)

type FinanceHandler struct {
	Service *services.FinanceService
}

func NewFinanceHandler(service *services.FinanceService) *FinanceHandler {
	return &FinanceHandler{Service: service}
}

// @Summary      Update deal financials
// @Description  Updates the deal's financial fields and pushes them to matching projects
// @Tags         Finances
// @Accept       json
// @Produce      json
// @Param        id      path      int                       true  "Deal ID"
// @Param        update  body      models.DealFinanceUpdate  true  "Financial fields"
// @Success      200     {object}  map[string]interface{}
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /api/admin/finances/deals/{id} [put]
func (h *FinanceHandler) UpdateDealFinance(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var upd models.DealFinanceUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deal, projectsUpdated, warning, err := h.Service.UpdateDealFinance(id, &upd)
	if err != nil {
		if err == services.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "deal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update deal finances", "details": err.Error()})
		return
	}

	resp := gin.H{"deal": deal, "projectsUpdated": projectsUpdated, "success": true}
	if warning != "" {
		resp["warning"] = warning
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary      Update project financials
// @Description  Updates the project's financial fields and pushes them to matching won deals
// @Tags         Finances
// @Accept       json
// @Produce      json
// @Param        id      path      int                          true  "Project ID"
// @Param        update  body      models.ProjectFinanceUpdate  true  "Financial fields"
// @Success      200     {object}  map[string]interface{}
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /api/admin/finances/projects/{id} [put]
func (h *FinanceHandler) UpdateProjectFinance(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var upd models.ProjectFinanceUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, dealsUpdated, warning, err := h.Service.UpdateProjectFinance(id, &upd)
	if err != nil {
		if err == services.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update project finances", "details": err.Error()})
		return
	}

	resp := gin.H{"project": project, "dealsUpdated": dealsUpdated, "success": true}
	if warning != "" {
		resp["warning"] = warning
	}
	c.JSON(http.StatusOK, resp)
}
