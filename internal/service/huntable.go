package service

import (
	"context"

	"huntapi/internal/model"
	"huntapi/internal/repository"
)

// HuntableSpeciesService defines the read use cases for huntable species.
// The filtered listings report NotFound when the filter matches no row; the
// unfiltered listing returns an empty slice instead.
type HuntableSpeciesService interface {
	List(ctx context.Context, limit, offset int) ([]model.HuntableSpecies, error)
	ListBySite(ctx context.Context, siteID string, limit, offset int) ([]model.HuntableSpecies, error)
	ListBySpecies(ctx context.Context, species string, limit, offset int) ([]model.HuntableSpecies, error)
}

type huntableSpeciesService struct {
	repo repository.HuntableSpeciesRepository
}

// NewHuntableSpeciesService constructs a new HuntableSpeciesService.
func NewHuntableSpeciesService(repo repository.HuntableSpeciesRepository) HuntableSpeciesService {
	return &huntableSpeciesService{repo: repo}
}

func (s *huntableSpeciesService) List(ctx context.Context, limit, offset int) ([]model.HuntableSpecies, error) {
	return s.repo.List(ctx, repository.HuntableSpeciesFilter{}, NormalizePage(limit, offset))
}

func (s *huntableSpeciesService) ListBySite(ctx context.Context, siteID string, limit, offset int) ([]model.HuntableSpecies, error) {
	if siteID == "" {
		return nil, ErrIDRequired
	}
	return s.listFiltered(ctx, repository.HuntableSpeciesFilter{SiteID: siteID}, "site_id", siteID, limit, offset)
}

func (s *huntableSpeciesService) ListBySpecies(ctx context.Context, species string, limit, offset int) ([]model.HuntableSpecies, error) {
	if species == "" {
		return nil, ErrIDRequired
	}
	return s.listFiltered(ctx, repository.HuntableSpeciesFilter{Species: species}, "species", species, limit, offset)
}

// listFiltered returns NotFound only when f matches no row at all. An empty
// page past the end of a non-empty match set is returned as is.
func (s *huntableSpeciesService) listFiltered(ctx context.Context, f repository.HuntableSpeciesFilter, key, value string, limit, offset int) ([]model.HuntableSpecies, error) {
	pq := NormalizePage(limit, offset)
	items, err := s.repo.List(ctx, f, pq)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		return items, nil
	}
	if pq.Offset > 0 {
		total, err := s.repo.Count(ctx, f)
		if err != nil {
			return nil, err
		}
		if total > 0 {
			return items, nil
		}
	}
	return nil, notFound("huntable species", key, value)
}
