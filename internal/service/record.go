package service

import (
	"context"
	"errors"
	"time"

	"sigtransportes/internal/model"
	"sigtransportes/internal/repository"
)

var ErrContentRequired = errors.New("content is required")

// RecordService defines the use cases for free-text records.
type RecordService interface {
	// Add creates a record with the server date at insert time.
	Add(ctx context.Context, title, area, content string) (*model.Record, error)

	// List returns all records in insertion order.
	List(ctx context.Context) ([]model.Record, error)
}

type recordService struct {
	repo repository.RecordRepository
}

// NewRecordService constructs a new RecordService.
func NewRecordService(repo repository.RecordRepository) RecordService {
	return &recordService{repo: repo}
}

func (s *recordService) Add(ctx context.Context, title, area, content string) (*model.Record, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}
	if content == "" {
		return nil, ErrContentRequired
	}
	if !model.ValidArea(area) {
		return nil, ErrInvalidArea
	}

	rec := &model.Record{
		Title:     title,
		Area:      area,
		CreatedAt: time.Now().Format("2006-01-02"),
		Content:   content,
	}
	return s.repo.Create(ctx, rec)
}

func (s *recordService) List(ctx context.Context) ([]model.Record, error) {
	return s.repo.List(ctx)
}
