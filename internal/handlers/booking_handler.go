package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"podium/internal/services"
)

type BookingHandler struct {
	Service *services.BookingService
}

func NewBookingHandler(service *services.BookingService) *BookingHandler {
	return &BookingHandler{Service: service}
}

// @Summary      Submit a booking inquiry
// @Description  Public contact/booking form; creates a deal in the pipeline
// @Tags         Bookings
// @Accept       json
// @Produce      json
// @Param        booking  body      services.BookingRequest  true  "Inquiry"
// @Success      201      {object}  models.Deal
// @Failure      400      {object}  map[string]string
// @Router       /api/bookings [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	var req services.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	deal, err := h.Service.Submit(&req)
	if err != nil {
		status := http.StatusInternalServerError
		if err.Error() == "event_date must be YYYY-MM-DD" {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, deal)
}
