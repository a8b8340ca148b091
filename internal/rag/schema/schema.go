package schema

const (
	// MetadataKeySource is the base name of the file a chunk came from.
	MetadataKeySource = "source"
	// MetadataKeyPage is the 1-based page number within the source file.
	MetadataKeyPage = "page"
	// MetadataKeyTotalPages is the page count of the source file.
	MetadataKeyTotalPages = "total_pages"
	// MetadataKeyDocumentID is the owning Document record's ID, as a string.
	// Retrieval isolation between documents relies entirely on this key.
	MetadataKeyDocumentID = "document_id"
	// MetadataKeyTitle is the owning Document's title.
	MetadataKeyTitle = "title"
	// MetadataKeyUserID is the owning user's ID, as a string.
	MetadataKeyUserID = "user_id"
	// MetadataKeyError marks a chunk that carries an extraction error message
	// instead of document text.
	MetadataKeyError = "error"
)

// Chunk is the atomic unit of extracted document text. It is produced by an
// extractor, embedded, and stored in the vector collection; it is never
// persisted relationally.
type Chunk struct {
	// ID is the unique identifier of this chunk in the vector collection.
	ID string

	// Text is the extracted page or file content.
	Text string

	// Embedding is the vector representation of Text.
	Embedding []float32

	// Metadata holds the keys above.
	Metadata map[string]interface{}
}
