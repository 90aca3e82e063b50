package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bess-economics/internal/api/models"
	"bess-economics/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	projectHandler := NewProjectHandler()
	sensitivityHandler := NewSensitivityHandler()

	api := router.Group("/api/v1")
	api.POST("/project", projectHandler.RunProjection)
	api.POST("/project/csv", projectHandler.ExportProjectionCSV)
	api.POST("/sensitivity", sensitivityHandler.RunSweep)
	api.GET("/scenarios", ListScenarios)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func canonicalPayload() models.ProjectInputsPayload {
	return models.ProjectInputsPayload{
		StorageCapacityKwh: 250,
		CapitalCostPerKwh:  350,
		RevenueScenario:    "base",
		DiscountRate:       0.08,
		InterestRate:       0.08,
		LoanTenorYears:     7,
	}
}

func TestRunProjection(t *testing.T) {
	router := testRouter()

	rec := postJSON(t, router, "/api/v1/project", models.ProjectRequest{Inputs: canonicalPayload()})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ProjectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, 87500.0, resp.Summary.TotalCapex)
	assert.InDelta(t, 43172.4, resp.Summary.GrossRevenueYear1, 0.1)
	assert.Len(t, resp.Years, model.ProjectLifeYears+1)
	assert.Equal(t, -87500.0, resp.Years[0].NetCashFlow)
	assert.Equal(t, model.ScenarioBase.Context().EligiblePeriods, resp.Market.EligiblePeriods)
}

func TestRunProjection_RejectsUnknownScenario(t *testing.T) {
	router := testRouter()

	payload := canonicalPayload()
	payload.RevenueScenario = "sideways"
	rec := postJSON(t, router, "/api/v1/project", models.ProjectRequest{Inputs: payload})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_INPUTS", resp.Error.Code)
}

func TestRunProjection_RejectsMalformedBody(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/project", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportProjectionCSV(t *testing.T) {
	router := testRouter()

	rec := postJSON(t, router, "/api/v1/project/csv", models.ProjectRequest{Inputs: canonicalPayload()})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Body.String(), "Year,Revenue,Aggregator Fee,OPEX,EBITDA,Debt Service,Net Cash Flow,Cumulative")
}

func TestRunSweep(t *testing.T) {
	router := testRouter()

	rec := postJSON(t, router, "/api/v1/sensitivity", models.SensitivityRequest{
		Inputs:          canonicalPayload(),
		CapitalCostAxis: []float64{300, 400},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SensitivityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Points, 2)
	assert.Equal(t, 300.0, resp.Points[0].CapitalCostPerKwh)
	assert.Equal(t, 400.0, resp.Points[1].CapitalCostPerKwh)
}

func TestRunSweep_DefaultAxis(t *testing.T) {
	router := testRouter()

	rec := postJSON(t, router, "/api/v1/sensitivity", models.SensitivityRequest{Inputs: canonicalPayload()})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SensitivityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Points, len(model.DefaultCapitalCostAxis))
}

func TestRunSweep_RejectsNegativeAxis(t *testing.T) {
	router := testRouter()

	rec := postJSON(t, router, "/api/v1/sensitivity", models.SensitivityRequest{
		Inputs:          canonicalPayload(),
		CapitalCostAxis: []float64{300, -400},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListScenarios(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/scenarios", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ScenariosResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Scenarios, 3)
	assert.Equal(t, "downside", resp.Scenarios[0].Name)
	assert.Equal(t, 359.77, resp.Scenarios[1].RevenuePerKwYear)
}
