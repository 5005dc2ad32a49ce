package m_publisher

// Field constants for the publishers table.
const (
	TableName = "publishers"

	ColPublisherID = "publisher_id"
	ColName        = "name"
	ColSlug        = "slug"
	ColUpdatedAt   = "updated_at"

	// SlugIndex enforces slug uniqueness.
	SlugIndex = "publishers_by_slug"
)
