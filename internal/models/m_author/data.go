package m_author

import (
	"cloud.google.com/go/spanner"
)

// BuildValues maps the entity onto its columns, primary key included.
func BuildValues(e *Entity) map[string]interface{} {
	return map[string]interface{}{
		ColAuthorID:    e.ID,
		ColName:        e.Name,
		ColNationality: e.Nationality,
		ColBiographyEs: e.BiographyEs,
		ColBiographyEn: e.BiographyEn,
		ColBirthYear:   nullYear(e.BirthYear),
		ColDeathYear:   nullYear(e.DeathYear),
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
// author_id.
func UpdateMutation(values map[string]interface{}) *spanner.Mutation {
	cols, vals := split(values)
	return spanner.Update(TableName, cols, vals)
}

// Columns lists the columns read back into an Entity, in scan order.
func Columns() []string {
	return []string{ColAuthorID, ColName, ColNationality, ColBiographyEs, ColBiographyEn, ColBirthYear, ColDeathYear, ColSlug}
}

// FromRow decodes a row selected with Columns.
func FromRow(row *spanner.Row) (*Entity, error) {
	var (
		e                    Entity
		nationality          spanner.NullString
		bioEs, bioEn         spanner.NullString
		birthYear, deathYear spanner.NullInt64
	)
	if err := row.Columns(&e.ID, &e.Name, &nationality, &bioEs, &bioEn, &birthYear, &deathYear, &e.Slug); err != nil {
		return nil, err
	}
	e.Nationality = nationality.StringVal
	e.BiographyEs = bioEs.StringVal
	e.BiographyEn = bioEn.StringVal
	e.BirthYear = yearPtr(birthYear)
	e.DeathYear = yearPtr(deathYear)
	return &e, nil
}

func nullYear(v *int) spanner.NullInt64 {
	if v == nil {
		return spanner.NullInt64{}
	}
	return spanner.NullInt64{Int64: int64(*v), Valid: true}
}

func yearPtr(v spanner.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	y := int(v.Int64)
	return &y
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
