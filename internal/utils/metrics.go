package utils

import (
	"time"

	"realestate-listings/pkg/metrics"
)

func RecordSQLOperationDuration(operation, table string, start time.Time) {
	metrics.SQLOperationDuration.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}

func RecordSQLError(operation, table string) {
	metrics.SQLErrorsTotal.WithLabelValues(operation, table).Inc()
}

func RecordMongoOperationDuration(operation, collection string, start time.Time) {
	duration := time.Since(start).Seconds()
	metrics.MongoOperationDuration.WithLabelValues(operation, collection).Observe(duration)
}

func RecordMongoError(operation, collection string) {
	metrics.MongoErrorsTotal.WithLabelValues(operation, collection).Inc()
}
