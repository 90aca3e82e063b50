package model

import "fmt"

// Scenario selects which revenue assumption the projection uses.
type Scenario string

const (
	ScenarioDownside Scenario = "downside"
	ScenarioBase     Scenario = "base"
	ScenarioUpside   Scenario = "upside"
)

// Scenarios lists all valid scenarios in display order.
var Scenarios = []Scenario{ScenarioDownside, ScenarioBase, ScenarioUpside}

// ScenarioConstants holds the per-scenario revenue assumption.
// RevenuePerKwYear is $/kW of power capacity per year, before discharge
// efficiency and degradation are applied.
type ScenarioConstants struct {
	RevenuePerKwYear float64
}

// MarketContext carries the reference market figures behind a scenario.
// These are descriptive only: they are surfaced verbatim to callers and
// never enter the cash-flow arithmetic.
type MarketContext struct {
	DRIncentivePerKw    float64
	EligiblePeriods     int
	ParticipationRate   float64
	ReferencePricePerKw float64
	ParticipatedPeriods int
}

var scenarioConstants = map[Scenario]ScenarioConstants{
	ScenarioDownside: {RevenuePerKwYear: 221.40},
	ScenarioBase:     {RevenuePerKwYear: 359.77},
	ScenarioUpside:   {RevenuePerKwYear: 498.65},
}

var marketContexts = map[Scenario]MarketContext{
	ScenarioDownside: {
		DRIncentivePerKw:    4.92,
		EligiblePeriods:     60,
		ParticipationRate:   0.75,
		ReferencePricePerKw: 4.92,
		ParticipatedPeriods: 45,
	},
	ScenarioBase: {
		DRIncentivePerKw:    7.40,
		EligiblePeriods:     60,
		ParticipationRate:   0.90,
		ReferencePricePerKw: 7.40,
		ParticipatedPeriods: 54,
	},
	ScenarioUpside: {
		DRIncentivePerKw:    9.85,
		EligiblePeriods:     65,
		ParticipationRate:   0.95,
		ReferencePricePerKw: 9.85,
		ParticipatedPeriods: 62,
	},
}

// Valid reports whether s names a known scenario.
func (s Scenario) Valid() bool {
	_, ok := scenarioConstants[s]
	return ok
}

// Constants returns the revenue assumption for the scenario.
// Unknown scenarios fall back to base so the engine stays total; callers
// that care should validate first via Valid().
func (s Scenario) Constants() ScenarioConstants {
	if c, ok := scenarioConstants[s]; ok {
		return c
	}
	return scenarioConstants[ScenarioBase]
}

// Context returns the display-only market-context record for the scenario.
func (s Scenario) Context() MarketContext {
	if m, ok := marketContexts[s]; ok {
		return m
	}
	return marketContexts[ScenarioBase]
}

// ParseScenario converts a string into a Scenario, erroring on unknown names.
func ParseScenario(s string) (Scenario, error) {
	sc := Scenario(s)
	if !sc.Valid() {
		return "", fmt.Errorf("unknown scenario: %q", s)
	}
	return sc, nil
}
