package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInputs() ProjectInputs {
	return ProjectInputs{
		StorageCapacityKwh: 250,
		CapitalCostPerKwh:  350,
		RevenueScenario:    ScenarioBase,
		DiscountRate:       0.08,
		DebtRatio:          0.5,
		InterestRate:       0.04,
		LoanTenorYears:     7,
	}
}

func TestProjectInputs_Validate(t *testing.T) {
	assert.NoError(t, validInputs().Validate())

	cases := map[string]func(*ProjectInputs){
		"zero capacity":     func(in *ProjectInputs) { in.StorageCapacityKwh = 0 },
		"negative cost":     func(in *ProjectInputs) { in.CapitalCostPerKwh = -1 },
		"unknown scenario":  func(in *ProjectInputs) { in.RevenueScenario = "sideways" },
		"debt ratio of 1":   func(in *ProjectInputs) { in.DebtRatio = 1 },
		"negative interest": func(in *ProjectInputs) { in.InterestRate = -0.01 },
		"negative tenor":    func(in *ProjectInputs) { in.LoanTenorYears = -1 },
		"fee over 100": func(in *ProjectInputs) {
			in.AggregatorFeeEnabled = true
			in.AggregatorFeePercent = 101
		},
	}
	for name, mutate := range cases {
		in := validInputs()
		mutate(&in)
		assert.Error(t, in.Validate(), name)
	}
}

func TestProjectInputs_Derivations(t *testing.T) {
	in := validInputs()
	assert.Equal(t, 125.0, in.PowerKw())
	assert.Equal(t, 87500.0, in.TotalCapex())
}

func TestProjectInputs_FeeRate(t *testing.T) {
	in := validInputs()
	in.AggregatorFeePercent = 10
	// Percent without the toggle is inert.
	assert.Equal(t, 0.0, in.FeeRate())

	in.AggregatorFeeEnabled = true
	assert.Equal(t, 0.1, in.FeeRate())
}

func TestParseScenario(t *testing.T) {
	for _, s := range Scenarios {
		got, err := ParseScenario(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseScenario("worst")
	assert.Error(t, err)
}

func TestScenario_ConstantsFallBackToBase(t *testing.T) {
	assert.Equal(t, ScenarioBase.Constants(), Scenario("unknown").Constants())
	assert.Equal(t, ScenarioBase.Context(), Scenario("unknown").Context())
}
