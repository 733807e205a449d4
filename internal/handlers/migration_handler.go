package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"podium/internal/services"
)

type MigrationHandler struct {
	Service *services.MigrationService
}

func NewMigrationHandler(service *services.MigrationService) *MigrationHandler {
	return &MigrationHandler{Service: service}
}

// @Summary      Preview the speaker-fee recompute
// @Description  Dry run: per-project current vs recomputed speaker fees
// @Tags         Migration
// @Produce      json
// @Param        default_commission_rate  query     number  false  "Fallback commission rate"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/admin/migrate-speaker-fees [get]
func (h *MigrationHandler) Preview(c *gin.Context) {
	rate, _ := strconv.ParseFloat(c.DefaultQuery("default_commission_rate", "0"), 64)
	previews, totals, err := h.Service.Preview(rate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build preview", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"preview":  true,
		"projects": previews,
		"summary":  totals,
	})
}

type applyMigrationRequest struct {
	ProjectIDs            []int   `json:"projectIds"`
	DefaultCommissionRate float64 `json:"defaultCommissionRate"`
}

// @Summary      Apply the speaker-fee recompute
// @Description  Recomputes speaker_fee = budget * (1 - commission/100); safe to rerun
// @Tags         Migration
// @Accept       json
// @Produce      json
// @Param        request  body      applyMigrationRequest  false  "Optional scope"
// @Success      200      {object}  map[string]interface{}
// @Router       /api/admin/migrate-speaker-fees [post]
func (h *MigrationHandler) Apply(c *gin.Context) {
	// the body is optional; an empty body decodes to io.EOF, which is fine,
	// and a chunked request (ContentLength -1) still gets parsed
	var req applyMigrationRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	previews, updated, err := h.Service.Apply(req.ProjectIDs, req.DefaultCommissionRate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "migration failed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"updated_count": updated,
		"projects":      previews,
	})
}
