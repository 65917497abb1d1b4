package config

import (
	"fmt"
	"os"
	"slices"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDataRefreshInterval = 60  // seconds
	DefaultRiskRecalcInterval  = 300 // seconds
	DefaultLoggingLevel        = "INFO"
	DefaultMLModelPath         = "models/risk_model.pkl"
	DefaultFeatureWindow       = 50
)

// LoggingLevels is the closed set of accepted logging levels.
var LoggingLevels = []string{"DEBUG", "INFO", "WARNING", "ERROR"}

// Config aggregates the validated settings consumed by the rest of ARATS.
// It is assembled once at startup and never mutated afterwards.
type Config struct {
	Firebase FirebaseSettings
	Exchange ExchangeSettings
	Risk     RiskSettings

	DataRefreshInterval int // seconds between market-data refreshes
	RiskRecalcInterval  int // seconds between risk recalculations
	LoggingLevel        string
	MLModelPath         string
	FeatureWindow       int

	EnableLiveTrading bool
	EnableHedging     bool
}

// Options tunes Load. The zero value reads the process environment only.
type Options struct {
	// ConfigFile names an optional YAML overlay applied on top of the
	// environment. Credentials never come from the overlay.
	ConfigFile string
	// Lookup resolves environment variables; nil means os.LookupEnv.
	Lookup LookupFunc
}

// yamlOverlay is the optional config-file structure. Only the exchange and
// risk sections can be overridden from file; everything else stays in the
// environment.
type yamlOverlay struct {
	Exchange struct {
		ID        string `yaml:"id"`
		Sandbox   *bool  `yaml:"sandbox"`
		RateLimit *int   `yaml:"rate_limit"`
		Timeout   *int   `yaml:"timeout"`
	} `yaml:"exchange"`
	Risk struct {
		MaxPositionSizePct  float64            `yaml:"max_position_size_pct"`
		MaxDailyLossPct     float64            `yaml:"max_daily_loss_pct"`
		VarConfidenceLevel  float64            `yaml:"var_confidence_level"`
		StressTestScenarios map[string]float64 `yaml:"stress_test_scenarios"`
		StopLossPct         float64            `yaml:"stop_loss_pct"`
		TakeProfitPct       float64            `yaml:"take_profit_pct"`
	} `yaml:"risk"`
}

// Load reads the environment (and optional YAML overlay), builds each
// settings group bottom-up, validates everything and returns the assembled
// Config. Loading is all-or-nothing: the first validation failure aborts the
// load and no partial configuration is ever returned.
func Load(opts *Options, logger *zap.Logger) (Config, error) {
	if opts == nil {
		opts = &Options{}
	}
	lookup := opts.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var overlay *yamlOverlay
	if opts.ConfigFile != "" {
		o, err := loadOverlay(opts.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load config file: %w", err)
		}
		overlay = o
	}

	firebase, err := NewFirebaseSettings(
		envOrDefault(lookup, "FIREBASE_PROJECT_ID", DefaultFirebaseProjectID),
		envOrDefault(lookup, "FIREBASE_CREDENTIALS_PATH", DefaultCredentialsPath),
		logger,
	)
	if err != nil {
		return Config{}, err
	}

	apiKey, _ := lookup("EXCHANGE_API_KEY")
	apiSecret, _ := lookup("EXCHANGE_API_SECRET")
	exchangeID := ""
	sandbox := parseBool(envOrDefault(lookup, "EXCHANGE_SANDBOX", "True"))
	rateLimit, timeout := DefaultRateLimit, DefaultTimeout
	if overlay != nil {
		exchangeID = overlay.Exchange.ID
		if overlay.Exchange.Sandbox != nil {
			sandbox = *overlay.Exchange.Sandbox
		}
		if overlay.Exchange.RateLimit != nil {
			rateLimit = *overlay.Exchange.RateLimit
		}
		if overlay.Exchange.Timeout != nil {
			timeout = *overlay.Exchange.Timeout
		}
	}
	exchange, err := NewExchangeSettings(exchangeID, apiKey, apiSecret, sandbox, rateLimit, timeout)
	if err != nil {
		return Config{}, err
	}

	var riskOverrides RiskSettings
	if overlay != nil {
		riskOverrides = RiskSettings{
			MaxPositionSizePct:  overlay.Risk.MaxPositionSizePct,
			MaxDailyLossPct:     overlay.Risk.MaxDailyLossPct,
			VarConfidenceLevel:  overlay.Risk.VarConfidenceLevel,
			StressTestScenarios: overlay.Risk.StressTestScenarios,
			StopLossPct:         overlay.Risk.StopLossPct,
			TakeProfitPct:       overlay.Risk.TakeProfitPct,
		}
	}
	risk, err := NewRiskSettings(riskOverrides)
	if err != nil {
		return Config{}, err
	}

	dataRefresh, err := parseInt("DATA_REFRESH_INTERVAL",
		envOrDefault(lookup, "DATA_REFRESH_INTERVAL", "60"))
	if err != nil {
		return Config{}, err
	}
	riskRecalc, err := parseInt("RISK_RECALC_INTERVAL",
		envOrDefault(lookup, "RISK_RECALC_INTERVAL", "300"))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Firebase:            firebase,
		Exchange:            exchange,
		Risk:                risk,
		DataRefreshInterval: dataRefresh,
		RiskRecalcInterval:  riskRecalc,
		LoggingLevel:        envOrDefault(lookup, "LOGGING_LEVEL", DefaultLoggingLevel),
		MLModelPath:         DefaultMLModelPath,
		FeatureWindow:       DefaultFeatureWindow,
		EnableLiveTrading:   parseBool(envOrDefault(lookup, "ENABLE_LIVE_TRADING", "False")),
		EnableHedging:       true,
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	logger.Info("configuration loaded",
		zap.String("project_id", cfg.Firebase.ProjectID),
		zap.String("exchange", cfg.Exchange.ExchangeID),
	)
	return cfg, nil
}

func (c Config) validate() error {
	if !slices.Contains(LoggingLevels, c.LoggingLevel) {
		return &InvalidEnumValueError{Field: "logging_level", Value: c.LoggingLevel, Allowed: LoggingLevels}
	}
	return nil
}

func loadOverlay(path string) (*yamlOverlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var o yamlOverlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	return &o, nil
}
