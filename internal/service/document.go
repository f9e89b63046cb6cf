package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"sigtransportes/internal/model"
	"sigtransportes/internal/repository"
	"sigtransportes/internal/storage"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrFileRequired  = errors.New("file is required")
	ErrInvalidArea   = errors.New("invalid area")
	ErrInvalidType   = errors.New("invalid document type")
)

// docsPrefix is the fixed folder uploaded files live under in the blob store.
const docsPrefix = "documentos"

// DocumentService defines the use cases for cataloging documents.
type DocumentService interface {
	// Add streams the uploaded file to the blob store under its original
	// filename (an existing object of the same name is overwritten) and
	// creates the catalog row referencing that key. The creation date is the
	// server date at insert time.
	Add(ctx context.Context, title, area, docType string, r io.Reader, filename string, size int64) (*model.Document, error)

	// List returns all cataloged documents in insertion order.
	List(ctx context.Context) ([]model.Document, error)

	// FileURL returns a time-limited download URL for a stored file.
	FileURL(ctx context.Context, fileRef string) (string, error)
}

type documentService struct {
	store storage.Storage
	repo  repository.DocumentRepository
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, repo repository.DocumentRepository) DocumentService {
	return &documentService{store: store, repo: repo}
}

func (s *documentService) Add(ctx context.Context, title, area, docType string, r io.Reader, filename string, size int64) (*model.Document, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}
	if r == nil || filename == "" {
		return nil, ErrFileRequired
	}
	if !model.ValidArea(area) {
		return nil, ErrInvalidArea
	}
	if !model.ValidDocumentType(docType) {
		return nil, ErrInvalidType
	}

	// Original filename under the fixed folder; same name overwrites silently.
	key := path.Join(docsPrefix, path.Base(filename))

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size: size,
		Metadata: map[string]string{
			"titulo": title,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	doc := &model.Document{
		Title:     title,
		Area:      area,
		CreatedAt: time.Now().Format("2006-01-02"),
		Type:      docType,
		FileRef:   objInfo.Key,
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *documentService) List(ctx context.Context) ([]model.Document, error) {
	return s.repo.List(ctx)
}

func (s *documentService) FileURL(ctx context.Context, fileRef string) (string, error) {
	if fileRef == "" {
		return "", ErrFileRequired
	}
	return s.store.PresignGet(ctx, fileRef, 15*time.Minute)
}
