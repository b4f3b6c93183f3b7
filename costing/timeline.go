package costing

import (
	"sort"
	"time"

	"github.com/Aiosol/ccf-bakery-sub001/entity"
	"github.com/Aiosol/ccf-bakery-sub001/logger"

	"go.uber.org/zap"
)

// CurrentLabel marks the terminal timeline point at the recipe's present
// total cost.
const CurrentLabel = "current"

// ReconstructTimeline rebuilds a recipe's cost timeline from its current
// total cost and the recorded change events, oldest point first.
//
// Costs are not stored historically; only discrete change events with their
// point impact exist. The walk therefore starts at the known-current value
// and subtracts each event's recipe impact moving newest→oldest, prepending
// a point after each subtraction. The result is exact only if the event list
// is complete and impacts are independently additive; neither is validated
// here.
//
// Events with a zero timestamp are dropped from the walk and logged, rather
// than failing the whole reconstruction. Non-finite impacts shift nothing.
// With no usable events the timeline is the single current point.
func ReconstructTimeline(currentCost float64, events []entity.PriceChange) []entity.CostPoint {
	usable := make([]entity.PriceChange, 0, len(events))
	for _, ev := range events {
		if ev.ChangedAt.IsZero() {
			logger.Warn("dropping price change with unparseable date from timeline",
				zap.Uint("price_change_id", ev.ID))
			continue
		}
		usable = append(usable, ev)
	}

	// Most recent first; input order must not matter.
	sort.SliceStable(usable, func(i, j int) bool {
		return usable[i].ChangedAt.After(usable[j].ChangedAt)
	})

	points := []entity.CostPoint{{
		Label: CurrentLabel,
		Date:  time.Time{},
		Cost:  currentCost,
	}}

	running := currentCost
	for _, ev := range usable {
		if isFinite(ev.RecipeImpact) {
			running -= ev.RecipeImpact
		}
		points = append([]entity.CostPoint{{
			Label: ev.ChangedAt.Format("2006-01-02"),
			Date:  ev.ChangedAt,
			Cost:  running,
		}}, points...)
	}

	return points
}
