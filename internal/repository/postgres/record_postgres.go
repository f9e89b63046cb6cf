package postgres

import (
	"context"
	"database/sql"

	"sigtransportes/internal/model"
	"sigtransportes/internal/repository"
)

// RecordPostgres is a PostgreSQL implementation of repository.RecordRepository.
type RecordPostgres struct {
	db *sql.DB
}

// NewRecordPostgres creates a new RecordPostgres repository.
func NewRecordPostgres(db *sql.DB) *RecordPostgres {
	return &RecordPostgres{db: db}
}

var _ repository.RecordRepository = (*RecordPostgres)(nil)

// Create inserts a new record row and returns the stored record.
func (r *RecordPostgres) Create(ctx context.Context, rec *model.Record) (*model.Record, error) {
	const q = `
		INSERT INTO registros (titulo, area, fecha_creacion, contenido)
		VALUES ($1, $2, $3, $4)
		RETURNING id, titulo, area, fecha_creacion, contenido
	`
	row := r.db.QueryRowContext(ctx, q,
		rec.Title,
		rec.Area,
		rec.CreatedAt,
		rec.Content,
	)
	var out model.Record
	if err := row.Scan(
		&out.ID,
		&out.Title,
		&out.Area,
		&out.CreatedAt,
		&out.Content,
	); err != nil {
		return nil, err
	}
	normalizeRecord(&out)
	return &out, nil
}

// List returns all records in insertion order (ascending ID).
func (r *RecordPostgres) List(ctx context.Context) ([]model.Record, error) {
	const q = `
		SELECT id, titulo, area, fecha_creacion, contenido
		FROM registros
		ORDER BY id ASC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Record, 0)
	for rows.Next() {
		var rec model.Record
		if err := rows.Scan(
			&rec.ID,
			&rec.Title,
			&rec.Area,
			&rec.CreatedAt,
			&rec.Content,
		); err != nil {
			return nil, err
		}
		normalizeRecord(&rec)
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func normalizeRecord(rec *model.Record) {
	if rec.Area == "" {
		rec.Area = model.AreaUnknown
	}
}
