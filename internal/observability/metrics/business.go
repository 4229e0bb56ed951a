package metrics

import (
	"errors"
	"time"

	"magazine-catalog/internal/domain/entity"
)

// RecordDBOperation records the duration of a gateway operation and counts it as an error if err is set.
func RecordDBOperation(repository, operation string, duration time.Duration, err error) {
	DBOperationDuration.WithLabelValues(repository, operation).Observe(duration.Seconds())
	if err != nil {
		DBOperationErrors.WithLabelValues(repository, operation).Inc()
	}
}

// RecordEntityCreated counts a persisted entity.
func RecordEntityCreated(entity string) {
	EntitiesCreatedTotal.WithLabelValues(entity).Inc()
}

// RecordValidationError counts err against its entity and field when it is an
// *entity.ValidationError. Other errors are ignored.
func RecordValidationError(err error) {
	var vErr *entity.ValidationError
	if errors.As(err, &vErr) {
		RecordValidationFailure(vErr.Entity, vErr.Field)
	}
}

// RecordValidationFailure counts a rejected field value.
func RecordValidationFailure(entity, field string) {
	ValidationFailuresTotal.WithLabelValues(entity, field).Inc()
}
