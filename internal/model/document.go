package model

// Document represents a cataloged file in the management system.
// CreatedAt is the server-side insertion date in YYYY-MM-DD form; rows are
// append-only and never mutated after creation.
type Document struct {
	ID        int64  `json:"id"`
	Title     string `json:"titulo"`
	Area      Area   `json:"area"`
	CreatedAt string `json:"fecha_creacion"`
	Type      string `json:"tipo"`
	FileRef   string `json:"archivo"`
}
