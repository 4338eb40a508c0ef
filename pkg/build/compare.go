package build

import "math"

// TierSummary is the numeric part of one generated tier.
type TierSummary struct {
	Tier                 string  `json:"tier"`
	TotalCost            float64 `json:"totalCost"`
	PerformanceScore     float64 `json:"performanceScore"`
	BottleneckPercentage float64 `json:"bottleneckPercentage"`
	PowerConsumption     float64 `json:"powerConsumption"`
}

// Comparison holds second-minus-first differences between two tiers.
type Comparison struct {
	From            string   `json:"from"`
	To              string   `json:"to"`
	PriceDiff       float64  `json:"priceDiff"`
	PerformanceDiff float64  `json:"performanceDiff"`
	BottleneckDiff  float64  `json:"bottleneckDiff"`
	PowerDiff       float64  `json:"powerDiff"`
	ValuePerDollar  *float64 `json:"valuePerDollar,omitempty"`
}

// Compare reports how b improves on a. ValuePerDollar is performance points
// per $1000 extra spend, set only when b costs more and performs better.
func Compare(a, b TierSummary) Comparison {
	c := Comparison{
		From:            a.Tier,
		To:              b.Tier,
		PriceDiff:       b.TotalCost - a.TotalCost,
		PerformanceDiff: b.PerformanceScore - a.PerformanceScore,
		BottleneckDiff:  b.BottleneckPercentage - a.BottleneckPercentage,
		PowerDiff:       b.PowerConsumption - a.PowerConsumption,
	}
	if c.PriceDiff > 0 && c.PerformanceDiff > 0 {
		v := math.Round(c.PerformanceDiff/c.PriceDiff*1000*10) / 10
		c.ValuePerDollar = &v
	}
	return c
}
