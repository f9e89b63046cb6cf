package repository

import (
	"context"

	"sigtransportes/internal/model"
)

// RecordRepository defines data access for free-text records.
// Append-only, like DocumentRepository.
type RecordRepository interface {
	// Create inserts a new record row and returns the stored row with its
	// assigned ID.
	Create(ctx context.Context, rec *model.Record) (*model.Record, error)

	// List returns all record rows in insertion order, fully populated.
	List(ctx context.Context) ([]model.Record, error)
}
