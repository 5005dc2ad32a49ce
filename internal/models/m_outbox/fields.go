package m_outbox

const (
	TableName = "outbox_events"

	ColEventID       = "event_id"
	ColEventType     = "event_type"
	ColAggregateType = "aggregate_type"
	ColAggregateID   = "aggregate_id"
	ColPayload       = "payload"
	ColStatus        = "status"
	ColCreatedAt     = "created_at"
	ColProcessedAt   = "processed_at"
)

// Aggregate types.
const (
	AggregateBook      = "book"
	AggregateAuthor    = "author"
	AggregatePublisher = "publisher"
)

// Event types written alongside catalog changes.
const (
	EventBookCreated      = "book.created"
	EventBookUpdated      = "book.updated"
	EventBookDeleted      = "book.deleted"
	EventAuthorCreated    = "author.created"
	EventAuthorUpdated    = "author.updated"
	EventPublisherCreated = "publisher.created"
	EventPublisherUpdated = "publisher.updated"
)

// StatusPending marks an event not yet relayed.
const StatusPending = "pending"
