package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"bess-economics/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load project parameters from a separate YAML (e.g. examples/projects/*.yaml).
	// If both ProjectFile and Project are provided, Project overrides ProjectFile.
	ProjectFile string            `yaml:"project_file"`
	Project     ProjectConfig     `yaml:"project"`
	Sensitivity SensitivityConfig `yaml:"sensitivity"`
}

type ProjectConfig struct {
	Name                 string  `yaml:"name"`
	StorageCapacityKwh   float64 `yaml:"storage_capacity_kwh"`
	CapitalCostPerKwh    float64 `yaml:"capital_cost_per_kwh"`
	RevenueScenario      string  `yaml:"revenue_scenario"`
	DiscountRate         float64 `yaml:"discount_rate"`
	DebtRatio            float64 `yaml:"debt_ratio"`
	InterestRate         float64 `yaml:"interest_rate"`
	LoanTenorYears       int     `yaml:"loan_tenor_years"`
	AggregatorFeeEnabled bool    `yaml:"aggregator_fee_enabled"`
	AggregatorFeePercent float64 `yaml:"aggregator_fee_percent"`
}

type SensitivityConfig struct {
	CapitalCostAxis []float64 `yaml:"capital_cost_axis"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	// If no scenario is given, default to base. This keeps configs concise:
	// most runs only vary sizing and cost.
	if c.Project.RevenueScenario == "" {
		c.Project.RevenueScenario = string(model.ScenarioBase)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If project_file is set, load it and merge in any explicit overrides from c.Project.
	if c.ProjectFile != "" {
		projectPath := c.ProjectFile
		if !filepath.IsAbs(projectPath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), projectPath)
			if _, err := os.Stat(cand); err == nil {
				projectPath = cand
			}
		}
		loaded, err := loadProjectFile(projectPath)
		if err != nil {
			return nil, err
		}
		c.Project = MergeProject(loaded, c.Project)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	// Validate project params by constructing model.ProjectInputs.
	inputs, err := c.Project.ToModelInputs()
	if err != nil {
		return fmt.Errorf("project config invalid: %w", err)
	}
	if err := inputs.Validate(); err != nil {
		return fmt.Errorf("project config invalid: %w", err)
	}
	for _, cost := range c.Sensitivity.CapitalCostAxis {
		if cost < 0 {
			return fmt.Errorf("sensitivity.capital_cost_axis contains negative cost %v", cost)
		}
	}
	return nil
}

func (p ProjectConfig) ToModelInputs() (model.ProjectInputs, error) {
	scenario, err := model.ParseScenario(p.RevenueScenario)
	if err != nil {
		return model.ProjectInputs{}, err
	}
	return model.ProjectInputs{
		StorageCapacityKwh:   p.StorageCapacityKwh,
		CapitalCostPerKwh:    p.CapitalCostPerKwh,
		RevenueScenario:      scenario,
		DiscountRate:         p.DiscountRate,
		DebtRatio:            p.DebtRatio,
		InterestRate:         p.InterestRate,
		LoanTenorYears:       p.LoanTenorYears,
		AggregatorFeeEnabled: p.AggregatorFeeEnabled,
		AggregatorFeePercent: p.AggregatorFeePercent,
	}, nil
}

type projectFileWrapper struct {
	Project ProjectConfig `yaml:"project"`
}

func loadProjectFile(path string) (ProjectConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ProjectConfig{}, err
	}
	var w projectFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ProjectConfig{}, err
	}
	return w.Project, nil
}

// MergeProject overlays non-zero fields from override onto base.
// This is used when loading a project file and then applying overrides from the request.
func MergeProject(base, override ProjectConfig) ProjectConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.StorageCapacityKwh != 0 {
		out.StorageCapacityKwh = override.StorageCapacityKwh
	}
	if override.CapitalCostPerKwh != 0 {
		out.CapitalCostPerKwh = override.CapitalCostPerKwh
	}
	if override.RevenueScenario != "" {
		out.RevenueScenario = override.RevenueScenario
	}
	if override.DiscountRate != 0 {
		out.DiscountRate = override.DiscountRate
	}
	// Note: these are allowed to be 0 in theory, but our configs use non-zero values.
	if override.DebtRatio != 0 {
		out.DebtRatio = override.DebtRatio
	}
	if override.InterestRate != 0 {
		out.InterestRate = override.InterestRate
	}
	if override.LoanTenorYears != 0 {
		out.LoanTenorYears = override.LoanTenorYears
	}
	if override.AggregatorFeeEnabled {
		out.AggregatorFeeEnabled = true
	}
	if override.AggregatorFeePercent != 0 {
		out.AggregatorFeePercent = override.AggregatorFeePercent
	}
	return out
}
