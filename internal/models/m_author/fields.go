package m_author

// Field constants for the authors table.
const (
	TableName = "authors"

	ColAuthorID    = "author_id"
	ColName        = "name"
	ColNationality = "nationality"
	ColBiographyEs = "biography_es"
	ColBiographyEn = "biography_en"
	ColBirthYear   = "birth_year"
	ColDeathYear   = "death_year"
	ColSlug        = "slug"
	ColUpdatedAt   = "updated_at"

	SlugIndex = "authors_by_slug"
)
