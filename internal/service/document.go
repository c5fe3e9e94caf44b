package service

import (
	"context"
	"database/sql"
	"errors"

	"huntapi/internal/model"
	"huntapi/internal/repository"
)

// DocumentService defines the read use cases for site documents.
type DocumentService interface {
	List(ctx context.Context, limit, offset int) ([]model.Document, error)
	Get(ctx context.Context, siteID string) (*model.Document, error)
}

type documentService struct {
	repo repository.DocumentRepository
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(repo repository.DocumentRepository) DocumentService {
	return &documentService{repo: repo}
}

func (s *documentService) List(ctx context.Context, limit, offset int) ([]model.Document, error) {
	return s.repo.List(ctx, NormalizePage(limit, offset))
}

func (s *documentService) Get(ctx context.Context, siteID string) (*model.Document, error) {
	if siteID == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.FindBySiteID(ctx, siteID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("document", "site_id", siteID)
		}
		return nil, err
	}
	return doc, nil
}
