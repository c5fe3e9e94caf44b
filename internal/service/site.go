package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"huntapi/internal/model"
	"huntapi/internal/repository"
)

// SiteService defines the read use cases for sites.
type SiteService interface {
	// ListNames returns site names in storage order.
	ListNames(ctx context.Context, limit, offset int) ([]model.SiteName, error)

	// GetNames returns the naming record of one site.
	GetNames(ctx context.Context, siteID string) (*model.SiteName, error)

	// GetDetail returns a site with its huntable species, document,
	// geography and harvest records.
	GetDetail(ctx context.Context, siteID string) (*model.SiteDetail, error)
}

type siteService struct {
	repos Repositories
}

// NewSiteService constructs a new SiteService.
func NewSiteService(repos Repositories) SiteService {
	return &siteService{repos: repos}
}

func (s *siteService) ListNames(ctx context.Context, limit, offset int) ([]model.SiteName, error) {
	return s.repos.Sites.List(ctx, NormalizePage(limit, offset))
}

func (s *siteService) GetNames(ctx context.Context, siteID string) (*model.SiteName, error) {
	if siteID == "" {
		return nil, ErrIDRequired
	}
	site, err := s.repos.Sites.FindByID(ctx, siteID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("site", "site_id", siteID)
		}
		return nil, err
	}
	return site, nil
}

// GetDetail fetches the site first, then each child set by site_id.
func (s *siteService) GetDetail(ctx context.Context, siteID string) (*model.SiteDetail, error) {
	site, err := s.GetNames(ctx, siteID)
	if err != nil {
		return nil, err
	}
	detail := &model.SiteDetail{SiteName: *site}

	detail.Huntable, err = s.repos.Huntable.List(ctx, repository.HuntableSpeciesFilter{SiteID: siteID}, repository.All)
	if err != nil {
		return nil, fmt.Errorf("huntable species: %w", err)
	}

	detail.Document, err = s.repos.Documents.FindBySiteID(ctx, siteID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("document: %w", err)
	}

	detail.Geography, err = s.repos.Geography.FindBySiteID(ctx, siteID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("geography: %w", err)
	}

	detail.Harvest, err = s.repos.Harvest.List(ctx, repository.HarvestFilter{SiteID: siteID}, repository.All)
	if err != nil {
		return nil, fmt.Errorf("harvest: %w", err)
	}
	return detail, nil
}
