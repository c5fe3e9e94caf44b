package service

import (
	"context"

	"huntapi/internal/model"
	"huntapi/internal/repository"
)

// HarvestService defines the read use cases for harvest records. None of
// them report NotFound; an empty result is an empty slice.
type HarvestService interface {
	List(ctx context.Context, limit, offset int) ([]model.Harvest, error)
	ListCounties(ctx context.Context, limit, offset int) ([]model.Harvest, error)
	ListSites(ctx context.Context, limit, offset int) ([]model.Harvest, error)
}

type harvestService struct {
	repo repository.HarvestRepository
}

// NewHarvestService constructs a new HarvestService.
func NewHarvestService(repo repository.HarvestRepository) HarvestService {
	return &harvestService{repo: repo}
}

func (s *harvestService) List(ctx context.Context, limit, offset int) ([]model.Harvest, error) {
	return s.list(ctx, repository.AnyLevel, limit, offset)
}

func (s *harvestService) ListCounties(ctx context.Context, limit, offset int) ([]model.Harvest, error) {
	return s.list(ctx, repository.CountyLevel, limit, offset)
}

func (s *harvestService) ListSites(ctx context.Context, limit, offset int) ([]model.Harvest, error) {
	return s.list(ctx, repository.SiteLevel, limit, offset)
}

func (s *harvestService) list(ctx context.Context, level repository.HarvestLevel, limit, offset int) ([]model.Harvest, error) {
	return s.repo.List(ctx, repository.HarvestFilter{Level: level}, NormalizePage(limit, offset))
}
