package mocks

import (
	"context"

	"huntapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockSiteService struct {
	mock.Mock
}

func (m *MockSiteService) ListNames(ctx context.Context, limit, offset int) ([]model.SiteName, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SiteName), args.Error(1)
}

func (m *MockSiteService) GetNames(ctx context.Context, siteID string) (*model.SiteName, error) {
	args := m.Called(ctx, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SiteName), args.Error(1)
}

func (m *MockSiteService) GetDetail(ctx context.Context, siteID string) (*model.SiteDetail, error) {
	args := m.Called(ctx, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SiteDetail), args.Error(1)
}

type MockHuntableSpeciesService struct {
	mock.Mock
}

func (m *MockHuntableSpeciesService) List(ctx context.Context, limit, offset int) ([]model.HuntableSpecies, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.HuntableSpecies), args.Error(1)
}

func (m *MockHuntableSpeciesService) ListBySite(ctx context.Context, siteID string, limit, offset int) ([]model.HuntableSpecies, error) {
	args := m.Called(ctx, siteID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.HuntableSpecies), args.Error(1)
}

func (m *MockHuntableSpeciesService) ListBySpecies(ctx context.Context, species string, limit, offset int) ([]model.HuntableSpecies, error) {
	args := m.Called(ctx, species, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.HuntableSpecies), args.Error(1)
}

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) List(ctx context.Context, limit, offset int) ([]model.Document, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentService) Get(ctx context.Context, siteID string) (*model.Document, error) {
	args := m.Called(ctx, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

type MockGeographyService struct {
	mock.Mock
}

func (m *MockGeographyService) List(ctx context.Context, limit, offset int) ([]model.Geography, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Geography), args.Error(1)
}

func (m *MockGeographyService) Get(ctx context.Context, siteID string) (*model.Geography, error) {
	args := m.Called(ctx, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Geography), args.Error(1)
}

type MockHarvestService struct {
	mock.Mock
}

func (m *MockHarvestService) List(ctx context.Context, limit, offset int) ([]model.Harvest, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Harvest), args.Error(1)
}

func (m *MockHarvestService) ListCounties(ctx context.Context, limit, offset int) ([]model.Harvest, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Harvest), args.Error(1)
}

func (m *MockHarvestService) ListSites(ctx context.Context, limit, offset int) ([]model.Harvest, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Harvest), args.Error(1)
}
