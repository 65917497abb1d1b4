package config

import (
	"math"
	"slices"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultExchangeID = "binance"
	// DefaultRateLimit is the minimum spacing between exchange requests in
	// milliseconds; DefaultTimeout is the connection timeout in milliseconds.
	DefaultRateLimit = 1000
	DefaultTimeout   = 30000
)

// SupportedExchanges is the closed set of exchange identifiers ARATS can
// connect to.
var SupportedExchanges = []string{"binance", "coinbase", "kraken", "bybit"}

// ExchangeSettings configures connectivity to a single exchange. APIKey and
// APISecret may be empty; whichever component performs live trading enforces
// their presence.
type ExchangeSettings struct {
	ExchangeID  string
	APIKey      string
	APISecret   string
	SandboxMode bool
	RateLimit   int
	Timeout     int
}

// NewExchangeSettings builds and validates exchange settings. An empty
// exchange id selects the default.
func NewExchangeSettings(exchangeID, apiKey, apiSecret string, sandboxMode bool, rateLimit, timeout int) (ExchangeSettings, error) {
	if exchangeID == "" {
		exchangeID = DefaultExchangeID
	}
	s := ExchangeSettings{
		ExchangeID:  exchangeID,
		APIKey:      apiKey,
		APISecret:   apiSecret,
		SandboxMode: sandboxMode,
		RateLimit:   rateLimit,
		Timeout:     timeout,
	}

	if !slices.Contains(SupportedExchanges, s.ExchangeID) {
		return ExchangeSettings{}, &InvalidEnumValueError{Field: "exchange_id", Value: s.ExchangeID, Allowed: SupportedExchanges}
	}
	if s.RateLimit < 0 {
		return ExchangeSettings{}, &RangeViolationError{Field: "rate_limit", Value: float64(s.RateLimit), Min: 0, Max: math.Inf(1)}
	}
	if s.Timeout < 0 {
		return ExchangeSettings{}, &RangeViolationError{Field: "timeout", Value: float64(s.Timeout), Min: 0, Max: math.Inf(1)}
	}
	return s, nil
}

// Limiter derives a client-side request limiter from RateLimit: one request
// per interval with a burst of one. A zero RateLimit means unlimited.
func (s ExchangeSettings) Limiter() *rate.Limiter {
	if s.RateLimit <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(time.Duration(s.RateLimit)*time.Millisecond), 1)
}

// ConnTimeout returns the connection timeout as a duration.
func (s ExchangeSettings) ConnTimeout() time.Duration {
	return time.Duration(s.Timeout) * time.Millisecond
}
