package handlers

import (
	"net/http"

	"bess-economics/internal/api/models"
	"bess-economics/internal/model"
	"bess-economics/internal/projection"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles projection-related requests
type ProjectHandler struct {
	engine *projection.Engine
}

// NewProjectHandler creates a new projection handler
func NewProjectHandler() *ProjectHandler {
	return &ProjectHandler{engine: projection.New()}
}

// RunProjection handles POST /api/v1/project
func (h *ProjectHandler) RunProjection(c *gin.Context) {
	var req models.ProjectRequest
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

	res := h.engine.Project(inputs)
	c.JSON(http.StatusOK, buildProjectResponse(inputs, res))
}

// ExportProjectionCSV handles POST /api/v1/project/csv.
// It runs the same projection and streams the ledger as a CSV download.
func (h *ProjectHandler) ExportProjectionCSV(c *gin.Context) {
	var req models.ProjectRequest
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

	res := h.engine.Project(inputs)

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="cash_flow.csv"`)
	if err := projection.WriteCashFlowCSV(c.Writer, res.Years); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "EXPORT_ERROR",
				Message: err.Error(),
			},
		})
	}
}

// buildInputs converts the request payload into engine inputs, applying the
// range validation the engine itself deliberately skips.
func buildInputs(p models.ProjectInputsPayload) (model.ProjectInputs, error) {
	scenario, err := model.ParseScenario(p.RevenueScenario)
	if err != nil {
		return model.ProjectInputs{}, err
	}
	inputs := model.ProjectInputs{
		StorageCapacityKwh:   p.StorageCapacityKwh,
		CapitalCostPerKwh:    p.CapitalCostPerKwh,
		RevenueScenario:      scenario,
		DiscountRate:         p.DiscountRate,
		DebtRatio:            p.DebtRatio,
		InterestRate:         p.InterestRate,
		LoanTenorYears:       p.LoanTenorYears,
		AggregatorFeeEnabled: p.AggregatorFeeEnabled,
		AggregatorFeePercent: p.AggregatorFeePercent,
	}
	if err := inputs.Validate(); err != nil {
		return model.ProjectInputs{}, err
	}
	return inputs, nil
}

func buildProjectResponse(inputs model.ProjectInputs, res *projection.Result) models.ProjectResponse {
	years := make([]models.CashFlowYearRow, 0, len(res.Years))
	for _, y := range res.Years {
		years = append(years, models.CashFlowYearRow{
			Year:               y.Year,
			Revenue:            y.Revenue,
			AggregatorFee:      y.AggregatorFee,
			Opex:               y.Opex,
			EBITDA:             y.EBITDA,
			DebtService:        y.DebtService,
			NetCashFlow:        y.NetCashFlow,
			CumulativeCashFlow: y.CumulativeCashFlow,
		})
	}

	return models.ProjectResponse{
		Status: "completed",
		Summary: models.ProjectionSummary{
			TotalCapex:        res.TotalCapex,
			Equity:            res.Equity,
			Debt:              res.Debt,
			AnnualDebtPayment: res.AnnualDebtPayment,
			GrossRevenueYear1: res.GrossRevenueYear1,
			NPV:               res.NPV,
			IRRPercent:        res.IRR * 100,
			PaybackYears:      res.PaybackYears,
			EBITDAMarginYear1: res.EBITDAMarginYear1,
		},
		Years:  years,
		Market: marketContextInfo(inputs.RevenueScenario.Context()),
	}
}

func marketContextInfo(m model.MarketContext) models.MarketContextInfo {
	return models.MarketContextInfo{
		DRIncentivePerKw:    m.DRIncentivePerKw,
		EligiblePeriods:     m.EligiblePeriods,
		ParticipationRate:   m.ParticipationRate,
		ReferencePricePerKw: m.ReferencePricePerKw,
		ParticipatedPeriods: m.ParticipatedPeriods,
	}
}
