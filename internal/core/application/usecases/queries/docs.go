// Package queries contains the read side of the marketplace. Handlers query
// Postgres directly through GORM and return flat views; they never load
// aggregates and never write.
package queries

import (
	"marketplace/internal/core/domain/model/workitem"
)

// tableFor returns the table holding work items of kind K.
func tableFor[K workitem.Kind]() string {
	var k K
	switch any(k).(type) {
	case workitem.ServiceRequestKind:
		return "service_requests"
	default:
		return "orders"
	}
}
