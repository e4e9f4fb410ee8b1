package engine

import "temple/experiments/metrics"

type Engine interface {
	// Run plays a game until the player dies or a turn or input cap is reached
	Run() (gameMetric metrics.GameMetric, turnMetrics []metrics.TurnMetric, err error)
}
