package m_publisher

import (
	"cloud.google.com/go/spanner"
)

// BuildValues maps the entity onto its columns, primary key included.
// updated_at is stamped with the commit timestamp.
func BuildValues(e *Entity) map[string]interface{} {
	return map[string]interface{}{
		ColPublisherID: e.ID,
		ColName:        e.Name,
		ColSlug:        e.Slug,
		ColUpdatedAt:   spanner.CommitTimestamp,
	}
}

// InsertMutation builds a spanner.Insert mutation from a values map.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols, vals := split(values)
	return spanner.Insert(TableName, cols, vals)
}

// UpdateMutation builds a spanner.Update mutation. The values map must carry
// publisher_id.
func UpdateMutation(values map[string]interface{}) *spanner.Mutation {
	cols, vals := split(values)
	return spanner.Update(TableName, cols, vals)
}

// Columns lists the columns read back into an Entity, in scan order.
func Columns() []string {
	return []string{ColPublisherID, ColName, ColSlug}
}

func split(values map[string]interface{}) ([]string, []interface{}) {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for c, v := range values {
		cols = append(cols, c)
		vals = append(vals, v)
	}
	return cols, vals
}

// FromRow decodes a row selected with Columns.
func FromRow(row *spanner.Row) (*Entity, error) {
	var e Entity
	if err := row.Columns(&e.ID, &e.Name, &e.Slug); err != nil {
		return nil, err
	}
	return &e, nil
}
