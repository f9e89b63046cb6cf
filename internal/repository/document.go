package repository

import (
	"context"

	"sigtransportes/internal/model"
)

// DocumentRepository defines data access for cataloged documents.
// The table is append-only: there are no update or delete operations.
type DocumentRepository interface {
	// Create inserts a new document row and returns the stored row with its
	// assigned ID. CreatedAt must already be set by the caller.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// List returns all document rows in insertion order. Rows come back
	// fully populated: a missing area reads as "Sin Área" so presentation
	// code never needs defensive field handling.
	List(ctx context.Context) ([]model.Document, error)
}
