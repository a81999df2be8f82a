package service

import "time"

// IngestionMetrics records batch and row outcomes of the reconciliation engine.
type IngestionMetrics interface {
	ObserveRows(family string, succeeded, skipped int)
	ObserveBatch(family string, status string, elapsed time.Duration)
}
