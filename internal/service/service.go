package service

import "huntapi/internal/repository"

// Repositories groups the read-only repositories the services depend on.
type Repositories struct {
	Sites     repository.SiteRepository
	Huntable  repository.HuntableSpeciesRepository
	Documents repository.DocumentRepository
	Geography repository.GeographyRepository
	Harvest   repository.HarvestRepository
}

// Services bundles every read-model service for the route layer.
type Services struct {
	Sites     SiteService
	Huntable  HuntableSpeciesService
	Documents DocumentService
	Geography GeographyService
	Harvest   HarvestService
}

// New constructs all services over repos.
func New(repos Repositories) *Services {
	return &Services{
		Sites:     NewSiteService(repos),
		Huntable:  NewHuntableSpeciesService(repos.Huntable),
		Documents: NewDocumentService(repos.Documents),
		Geography: NewGeographyService(repos.Geography),
		Harvest:   NewHarvestService(repos.Harvest),
	}
}
