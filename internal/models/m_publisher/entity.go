package m_publisher

// Entity is the persisted shape of a publisher.
type Entity struct {
	ID   int64
	Name string
	Slug string
}
