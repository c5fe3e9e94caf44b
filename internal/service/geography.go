package service

import (
	"context"
	"database/sql"
	"errors"

	"huntapi/internal/model"
	"huntapi/internal/repository"
)

// GeographyService defines the read use cases for site geography.
type GeographyService interface {
	List(ctx context.Context, limit, offset int) ([]model.Geography, error)
	Get(ctx context.Context, siteID string) (*model.Geography, error)
}

type geographyService struct {
	repo repository.GeographyRepository
}

// NewGeographyService constructs a new GeographyService.
func NewGeographyService(repo repository.GeographyRepository) GeographyService {
	return &geographyService{repo: repo}
}

func (s *geographyService) List(ctx context.Context, limit, offset int) ([]model.Geography, error) {
	return s.repo.List(ctx, NormalizePage(limit, offset))
}

func (s *geographyService) Get(ctx context.Context, siteID string) (*model.Geography, error) {
	if siteID == "" {
		return nil, ErrIDRequired
	}
	g, err := s.repo.FindBySiteID(ctx, siteID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("geography", "site_id", siteID)
		}
		return nil, err
	}
	return g, nil
}
