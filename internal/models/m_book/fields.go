package m_book

// Field constants for the books table.
const (
	TableName = "books"

	ColBookID             = "book_id"
	ColISBN               = "isbn"
	ColTitleEs            = "title_es"
	ColTitleEn            = "title_en"
	ColSynopsisEs         = "synopsis_es"
	ColSynopsisEn         = "synopsis_en"
	ColBasePrice          = "base_price"
	ColDiscountPercentage = "discount_percentage"
	ColCover              = "cover"
	ColPublicationDate    = "publication_date"
	ColPublisherID        = "publisher_id"
	ColUpdatedAt          = "updated_at"

	ISBNIndex = "books_by_isbn"
)

// Field constants for the book_authors link table, interleaved in books.
// position keeps the author order of a book.
const (
	LinkTableName = "book_authors"

	ColLinkBookID   = "book_id"
	ColLinkPosition = "position"
	ColLinkAuthorID = "author_id"
)
