package handlers

import (
	"fmt"
	"net/http"

	"bess-economics/internal/analysis"
	"bess-economics/internal/api/models"

	"github.com/gin-gonic/gin"
)

// SensitivityHandler handles capital-cost sweep requests
type SensitivityHandler struct{}

// NewSensitivityHandler creates a new sensitivity handler
func NewSensitivityHandler() *SensitivityHandler {
	return &SensitivityHandler{}
}

// RunSweep handles POST /api/v1/sensitivity
func (h *SensitivityHandler) RunSweep(c *gin.Context) {
	var req models.SensitivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	inputs, err := buildInputs(req.Inputs)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_INPUTS",
				Message: err.Error(),
			},
		})
		return
	}

	for _, cost := range req.CapitalCostAxis {
		if cost < 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_AXIS",
					Message: fmt.Sprintf("capital_cost_axis contains negative cost %v", cost),
				},
			})
			return
		}
	}

	points := analysis.Sweep(inputs, req.CapitalCostAxis)

	rows := make([]models.SensitivityPointRow, 0, len(points))
	for _, p := range points {
		rows = append(rows, models.SensitivityPointRow{
			CapitalCostPerKwh: p.CapitalCostPerKwh,
			PaybackYears:      p.PaybackYears,
			IRRPercent:        p.IRRPercent,
		})
	}
	c.JSON(http.StatusOK, models.SensitivityResponse{Points: rows})
}
