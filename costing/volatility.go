package costing

import (
	"math"

	"github.com/Aiosol/ccf-bakery-sub001/entity"
)

// Volatility is a coarse class of how much a recipe's cost moved over a
// trailing window.
type Volatility string

const (
	VolatilityNone   Volatility = "none"
	VolatilityLow    Volatility = "low"
	VolatilityMedium Volatility = "medium"
	VolatilityHigh   Volatility = "high"
)

// Default thresholds, in currency units, used when the config leaves them
// unset.
const (
	DefaultLowThreshold  = 50
	DefaultHighThreshold = 200
)

// Classifier maps a cost-impact summary to a volatility class. Thresholds
// are presentation policy and come from configuration.
type Classifier struct {
	Low  float64
	High float64
}

// NewClassifier builds a classifier, substituting defaults for unset
// thresholds.
func NewClassifier(cfg entity.VolatilityConfig) Classifier {
	c := Classifier{Low: cfg.Low, High: cfg.High}
	if c.Low <= 0 {
		c.Low = DefaultLowThreshold
	}
	if c.High <= 0 {
		c.High = DefaultHighThreshold
	}
	return c
}

// Classify is a monotonic step function of the absolute cost delta:
// none when no ingredient was affected, then low ≤ Low < medium ≤ High < high.
func (c Classifier) Classify(s entity.CostImpactSummary) Volatility {
	if len(s.AffectedIngredients) == 0 {
		return VolatilityNone
	}
	delta := math.Abs(s.TotalCostImpact)
	switch {
	case delta <= c.Low:
		return VolatilityLow
	case delta <= c.High:
		return VolatilityMedium
	default:
		return VolatilityHigh
	}
}
