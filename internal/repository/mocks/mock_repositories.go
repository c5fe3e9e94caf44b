package mocks

import (
	"context"

	"huntapi/internal/model"
	"huntapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockSiteRepository struct {
	mock.Mock
}

func (m *MockSiteRepository) List(ctx context.Context, pq repository.PageQuery) ([]model.SiteName, error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SiteName), args.Error(1)
}

func (m *MockSiteRepository) FindByID(ctx context.Context, siteID string) (*model.SiteName, error) {
	args := m.Called(ctx, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SiteName), args.Error(1)
}

type MockHuntableSpeciesRepository struct {
	mock.Mock
}

func (m *MockHuntableSpeciesRepository) List(ctx context.Context, f repository.HuntableSpeciesFilter, pq repository.PageQuery) ([]model.HuntableSpecies, error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.HuntableSpecies), args.Error(1)
}

func (m *MockHuntableSpeciesRepository) Count(ctx context.Context, f repository.HuntableSpeciesFilter) (int, error) {
	args := m.Called(ctx, f)
	return args.Int(0), args.Error(1)
}

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) List(ctx context.Context, pq repository.PageQuery) ([]model.Document, error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentRepository) FindBySiteID(ctx context.Context, siteID string) (*model.Document, error) {
	args := m.Called(ctx, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

type MockGeographyRepository struct {
	mock.Mock
}

func (m *MockGeographyRepository) List(ctx context.Context, pq repository.PageQuery) ([]model.Geography, error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Geography), args.Error(1)
}

func (m *MockGeographyRepository) FindBySiteID(ctx context.Context, siteID string) (*model.Geography, error) {
	args := m.Called(ctx, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Geography), args.Error(1)
}

type MockHarvestRepository struct {
	mock.Mock
}

func (m *MockHarvestRepository) List(ctx context.Context, f repository.HarvestFilter, pq repository.PageQuery) ([]model.Harvest, error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Harvest), args.Error(1)
}
