package handlers

import (
	"net/http"

	"bess-economics/internal/api/models"
	"bess-economics/internal/model"

	"github.com/gin-gonic/gin"
)

// ListScenarios handles GET /api/v1/scenarios.
// It surfaces the revenue assumptions and market-context reference figures
// for every scenario; nothing here enters the engine arithmetic.
func ListScenarios(c *gin.Context) {
	infos := make([]models.ScenarioInfo, 0, len(model.Scenarios))
	for _, s := range model.Scenarios {
		infos = append(infos, models.ScenarioInfo{
			Name:             string(s),
			RevenuePerKwYear: s.Constants().RevenuePerKwYear,
			Market:           marketContextInfo(s.Context()),
		})
	}
	c.JSON(http.StatusOK, models.ScenariosResponse{Scenarios: infos})
}
