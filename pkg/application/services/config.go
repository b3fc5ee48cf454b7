package services

// Config holds the forecasting policy tunables. The defaults encode a
// conservative reorder policy for short supplier lead times; they are policy
// choices, not fitted parameters.
type Config struct {
	// LeadTimeDays is the assumed days between placing a reorder and receiving stock.
	LeadTimeDays int
	// SafetyStockDays is the extra days of average usage held as buffer.
	SafetyStockDays int
	// OrderSupplyDays is how many days of average usage a suggested order covers.
	OrderSupplyDays int
	// MovingAveragePeriod caps the trailing window for usage forecasts.
	MovingAveragePeriod int
	// SmoothingAlpha is the exponential smoothing factor for sales forecasts.
	SmoothingAlpha float64
	// TrendWindow caps how many recent points feed trend classification.
	TrendWindow int
	// MinObservations is the fewest observations an entity needs to be forecast.
	MinObservations int
}

// DefaultConfig returns the standard forecasting configuration
func DefaultConfig() Config {
	return Config{
		LeadTimeDays:        7,
		SafetyStockDays:     2,
		OrderSupplyDays:     14,
		MovingAveragePeriod: 7,
		SmoothingAlpha:      0.3,
		TrendWindow:         7,
		MinObservations:     3,
	}
}
