package sqlrepo

import (
	"context"
	"database/sql"

	"huntapi/internal/database"
	"huntapi/internal/model"
	"huntapi/internal/repository"
)

const geographyColumns = `SELECT site_id, region, county, huntable_acres, address, latitude, longitude FROM geography`

// GeographySQL is a database/sql implementation of repository.GeographyRepository.
type GeographySQL struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewGeographySQL creates a new GeographySQL repository.
func NewGeographySQL(db *sql.DB, d database.Dialect) *GeographySQL {
	return &GeographySQL{db: db, dialect: d}
}

var _ repository.GeographyRepository = (*GeographySQL)(nil)

func scanGeography(s scanner) (model.Geography, error) {
	var out model.Geography
	err := s.Scan(
		&out.SiteID,
		&out.Region,
		&out.County,
		&out.HuntableAcres,
		&out.Address,
		&out.Latitude,
		&out.Longitude,
	)
	return out, err
}

// List returns geography records in storage order.
func (r *GeographySQL) List(ctx context.Context, pq repository.PageQuery) ([]model.Geography, error) {
	q, args := newSelect(geographyColumns, r.dialect.RowOrder()).build(r.dialect, pq)
	return queryAll(ctx, r.db, q, args, scanGeography)
}

// FindBySiteID fetches the geography of a site.
func (r *GeographySQL) FindBySiteID(ctx context.Context, siteID string) (*model.Geography, error) {
	q, args := newSelect(geographyColumns, "").and("site_id = ?", siteID).build(r.dialect, repository.All)
	return queryOne(ctx, r.db, q, args, scanGeography)
}
