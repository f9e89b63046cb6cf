package model

// Record is a free-text entry of the management program. Content may carry
// markup and is rendered as rich text by the view layer.
type Record struct {
	ID        int64  `json:"id"`
	Title     string `json:"titulo"`
	Area      Area   `json:"area"`
	CreatedAt string `json:"fecha_creacion"`
	Content   string `json:"contenido"`
}
