package config

import "maps"

// Default risk limits, expressed as fractions of portfolio value.
const (
	DefaultMaxPositionSizePct = 0.02
	DefaultMaxDailyLossPct    = 0.05
	DefaultVarConfidenceLevel = 0.95
	DefaultStopLossPct        = 0.02
	DefaultTakeProfitPct      = 0.04
)

// DefaultStressTestScenarios returns the named market-shock magnitudes used
// when the caller supplies none. Negative values are drawdowns.
func DefaultStressTestScenarios() map[string]float64 {
	return map[string]float64{
		"flash_crash":      -0.15,
		"volatility_spike": 0.3,
		"liquidity_crisis": -0.25,
	}
}

// RiskSettings bounds position sizing, daily losses and derived risk metrics.
type RiskSettings struct {
	MaxPositionSizePct  float64
	MaxDailyLossPct     float64
	VarConfidenceLevel  float64
	StressTestScenarios map[string]float64
	StopLossPct         float64
	TakeProfitPct       float64
}

// NewRiskSettings builds and validates risk limits. Zero-valued fields select
// their defaults (zero is outside every field's allowed range, so no valid
// override is shadowed). A nil scenarios map selects the default scenarios;
// a non-nil map replaces them wholesale and is copied, never aliased.
func NewRiskSettings(overrides RiskSettings) (RiskSettings, error) {
	s := overrides
	if s.MaxPositionSizePct == 0 {
		s.MaxPositionSizePct = DefaultMaxPositionSizePct
	}
	if s.MaxDailyLossPct == 0 {
		s.MaxDailyLossPct = DefaultMaxDailyLossPct
	}
	if s.VarConfidenceLevel == 0 {
		s.VarConfidenceLevel = DefaultVarConfidenceLevel
	}
	if s.StopLossPct == 0 {
		s.StopLossPct = DefaultStopLossPct
	}
	if s.TakeProfitPct == 0 {
		s.TakeProfitPct = DefaultTakeProfitPct
	}
	if s.StressTestScenarios == nil {
		s.StressTestScenarios = DefaultStressTestScenarios()
	} else {
		s.StressTestScenarios = maps.Clone(s.StressTestScenarios)
	}

	if err := s.validate(); err != nil {
		return RiskSettings{}, err
	}
	return s, nil
}

func (s RiskSettings) validate() error {
	bounds := []struct {
		field    string
		value    float64
		min, max float64
	}{
		{"max_position_size_pct", s.MaxPositionSizePct, 0.001, 0.1},
		{"max_daily_loss_pct", s.MaxDailyLossPct, 0.01, 0.2},
		{"var_confidence_level", s.VarConfidenceLevel, 0.90, 0.99},
		{"stop_loss_pct", s.StopLossPct, 0.005, 0.1},
		{"take_profit_pct", s.TakeProfitPct, 0.01, 0.2},
	}
	for _, b := range bounds {
		if b.value < b.min || b.value > b.max {
			return &RangeViolationError{Field: b.field, Value: b.value, Min: b.min, Max: b.max}
		}
	}
	return nil
}
