package sqlrepo

import (
	"context"
	"database/sql"

	"huntapi/internal/database"
	"huntapi/internal/model"
	"huntapi/internal/repository"
)

const harvestColumns = `SELECT record_id, site_id, site, is_county, year, species, season, subcategory, COALESCE(harvest_count, 0) FROM harvest`

// HarvestSQL is a database/sql implementation of repository.HarvestRepository.
type HarvestSQL struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewHarvestSQL creates a new HarvestSQL repository.
func NewHarvestSQL(db *sql.DB, d database.Dialect) *HarvestSQL {
	return &HarvestSQL{db: db, dialect: d}
}

var _ repository.HarvestRepository = (*HarvestSQL)(nil)

func scanHarvest(s scanner) (model.Harvest, error) {
	var out model.Harvest
	err := s.Scan(
		&out.RecordID,
		&out.SiteID,
		&out.Site,
		&out.IsCounty,
		&out.Year,
		&out.Species,
		&out.Season,
		&out.Subcategory,
		&out.HarvestCount,
	)
	return out, err
}

// List returns harvest records matching f ordered by record_id.
func (r *HarvestSQL) List(ctx context.Context, f repository.HarvestFilter, pq repository.PageQuery) ([]model.Harvest, error) {
	q := newSelect(harvestColumns, "record_id")
	if f.SiteID != "" {
		q.and("site_id = ?", f.SiteID)
	}
	switch f.Level {
	case repository.CountyLevel:
		q.and("is_county = ?", true)
	case repository.SiteLevel:
		q.and("is_county = ?", false)
	}
	stmt, args := q.build(r.dialect, pq)
	return queryAll(ctx, r.db, stmt, args, scanHarvest)
}
