package postgres

import (
	"context"
	"database/sql"

	"sigtransportes/internal/model"
	"sigtransportes/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documentos (titulo, area, fecha_creacion, tipo, archivo)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, titulo, area, fecha_creacion, tipo, archivo
	`
	row := r.db.QueryRowContext(ctx, q,
		doc.Title,
		doc.Area,
		doc.CreatedAt,
		doc.Type,
		doc.FileRef,
	)
	var out model.Document
	if err := row.Scan(
		&out.ID,
		&out.Title,
		&out.Area,
		&out.CreatedAt,
		&out.Type,
		&out.FileRef,
	); err != nil {
		return nil, err
	}
	normalizeDocument(&out)
	return &out, nil
}

// List returns all documents in insertion order (ascending ID).
func (r *DocumentPostgres) List(ctx context.Context) ([]model.Document, error) {
	const q = `
		SELECT id, titulo, area, fecha_creacion, tipo, archivo
		FROM documentos
		ORDER BY id ASC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		var d model.Document
		if err := rows.Scan(
			&d.ID,
			&d.Title,
			&d.Area,
			&d.CreatedAt,
			&d.Type,
			&d.FileRef,
		); err != nil {
			return nil, err
		}
		normalizeDocument(&d)
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// normalizeDocument fills defined defaults at the storage boundary so the
// view layer always sees fully-populated rows.
func normalizeDocument(d *model.Document) {
	if d.Area == "" {
		d.Area = model.AreaUnknown
	}
}
