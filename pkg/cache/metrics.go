package cache

import (
	"time"

	"realestate-listings/pkg/metrics"
)

// record the duration of a Redis operation started at start.
func recordOperationDuration(label string, start time.Time) {
	metrics.RedisOperationDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())
}

// increment the error counter for a Redis operation with the given label.
func incrementError(label string) {
	metrics.RedisErrorsTotal.WithLabelValues(label).Inc()
}
