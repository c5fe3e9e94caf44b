package repository

import (
	"context"

	"huntapi/internal/model"
)

// GeographyRepository reads the geography table.
type GeographyRepository interface {
	List(ctx context.Context, pq PageQuery) ([]model.Geography, error)

	// FindBySiteID returns the geography of a site or sql.ErrNoRows.
	FindBySiteID(ctx context.Context, siteID string) (*model.Geography, error)
}
