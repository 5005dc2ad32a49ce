package domain

// Author is a book writer. Authors exist independently of books.
type Author struct {
	id          int64
	name        string
	nationality string
	biographyEs string
	biographyEn string
	birthYear   *int
	deathYear   *int
	slug        string
}

// AuthorAttrs carries the fields needed to build an Author.
type AuthorAttrs struct {
	ID          int64
	Name        string
	Nationality string
	BiographyEs string
	BiographyEn string
	BirthYear   *int
	DeathYear   *int
	Slug        string
}

func NewAuthor(a AuthorAttrs) *Author {
	return &Author{
		id:          a.ID,
		name:        a.Name,
		nationality: a.Nationality,
		biographyEs: a.BiographyEs,
		biographyEn: a.BiographyEn,
		birthYear:   copyInt(a.BirthYear),
		deathYear:   copyInt(a.DeathYear),
		slug:        a.Slug,
	}
}

func (a *Author) ID() int64 { return a.id }
func (a *Author) Name() string { return a.name }
func (a *Author) Nationality() string { return a.nationality }
func (a *Author) BiographyEs() string { return a.biographyEs }
func (a *Author) BiographyEn() string { return a.biographyEn }
func (a *Author) BirthYear() *int { return copyInt(a.birthYear) }
func (a *Author) DeathYear() *int { return copyInt(a.deathYear) }
func (a *Author) Slug() string { return a.slug }

// Alive reports whether no death year is recorded.
func (a *Author) Alive() bool {
	return a.deathYear == nil
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
