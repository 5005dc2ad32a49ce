package m_author

// Entity is the persisted shape of an author. Nil years are NULL columns.
type Entity struct {
	ID          int64
	Name        string
	Nationality string
	BiographyEs string
	BiographyEn string
	BirthYear   *int
	DeathYear   *int
	Slug        string
}
