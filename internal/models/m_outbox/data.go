package m_outbox

import (
	"cloud.google.com/go/spanner"
)

// BuildInsertMap constructs a map with fields for outbox insertion.
func BuildInsertMap(r *Record) map[string]interface{} {
	return map[string]interface{}{
		ColEventID:       r.EventID,
		ColEventType:     r.EventType,
		ColAggregateType: r.AggregateType,
		ColAggregateID:   r.AggregateID,
		ColPayload:       r.Payload,
		ColStatus:        r.Status,
		ColCreatedAt:     r.CreatedAt,
		ColProcessedAt:   nil,
	}
}

// InsertMutation constructs a mutation for the outbox table.
func InsertMutation(r *Record) *spanner.Mutation {
	values := BuildInsertMap(r)
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for c, v := range values {
		cols = append(cols, c)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}
