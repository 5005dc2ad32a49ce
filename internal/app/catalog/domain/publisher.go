package domain

// Publisher is the house that publishes books.
type Publisher struct {
	id   int64
	name string
	slug string
}

func NewPublisher(id int64, name, slug string) *Publisher {
	return &Publisher{id: id, name: name, slug: slug}
}

func (p *Publisher) ID() int64 { return p.id }
func (p *Publisher) Name() string { return p.name }
func (p *Publisher) Slug() string { return p.slug }

// Rename replaces name and slug.
func (p *Publisher) Rename(name, slug string) {
	p.name = name
	p.slug = slug
}
