package repository

import (
	"context"

	"huntapi/internal/model"
)

// SiteRepository reads the sites table.
type SiteRepository interface {
	// List returns site names in storage order.
	List(ctx context.Context, pq PageQuery) ([]model.SiteName, error)

	// FindByID returns a site by its ID or sql.ErrNoRows.
	FindByID(ctx context.Context, siteID string) (*model.SiteName, error)
}
