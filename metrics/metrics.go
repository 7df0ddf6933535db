package metrics

import (
	"context"

	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

// Keys
var (
	Pool, _ = tag.NewKey("pool")
)

// Pool kinds used as values of the Pool tag.
const (
	PoolDeque  = "deque"
	PoolRing   = "ring"
	PoolShared = "shared"
)

// Measures
var (
	Fabricated = stats.Int64("codec/outlist/fabricated", "Output lists created because a pool had no idle list", stats.UnitDimensionless)
	Overflowed = stats.Int64("codec/outlist/overflowed", "Output lists dropped because a ring pool was already full", stats.UnitDimensionless)
	Grown      = stats.Int64("codec/outlist/grown", "Number of times an output list doubled its storage", stats.UnitDimensionless)
)

// Views
var (
	fabricatedView = &view.View{
		Measure:     Fabricated,
		Aggregation: view.Count(),
		TagKeys:     []tag.Key{Pool},
	}
	overflowedView = &view.View{
		Measure:     Overflowed,
		Aggregation: view.Count(),
		TagKeys:     []tag.Key{Pool},
	}
	grownView = &view.View{
		Measure:     Grown,
		Aggregation: view.Count(),
	}
)

// DefaultViews with all views in it.
var DefaultViews = []*view.View{
	fabricatedView,
	overflowedView,
	grownView,
}

// RecordFabricated counts a list created outside of a pool of the given kind.
func RecordFabricated(kind string) {
	stats.RecordWithOptions(context.Background(),
		stats.WithTags(tag.Upsert(Pool, kind)),
		stats.WithMeasurements(Fabricated.M(1)))
}

// RecordOverflow counts a list a pool of the given kind had no room for.
func RecordOverflow(kind string) {
	stats.RecordWithOptions(context.Background(),
		stats.WithTags(tag.Upsert(Pool, kind)),
		stats.WithMeasurements(Overflowed.M(1)))
}

func RecordGrowth() {
	stats.Record(context.Background(), Grown.M(1))
}
