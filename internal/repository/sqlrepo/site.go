package sqlrepo

import (
	"context"
	"database/sql"

	"huntapi/internal/database"
	"huntapi/internal/model"
	"huntapi/internal/repository"
)

const siteColumns = `SELECT site_id, full_name, abbreviated_name, site_type FROM sites`

// SiteSQL is a database/sql implementation of repository.SiteRepository.
type SiteSQL struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewSiteSQL creates a new SiteSQL repository.
func NewSiteSQL(db *sql.DB, d database.Dialect) *SiteSQL {
	return &SiteSQL{db: db, dialect: d}
}

var _ repository.SiteRepository = (*SiteSQL)(nil)

func scanSite(s scanner) (model.SiteName, error) {
	var out model.SiteName
	err := s.Scan(
		&out.SiteID,
		&out.FullName,
		&out.AbbreviatedName,
		&out.SiteType,
	)
	return out, err
}

// List returns site names in storage order using LIMIT/OFFSET pagination.
func (r *SiteSQL) List(ctx context.Context, pq repository.PageQuery) ([]model.SiteName, error) {
	q, args := newSelect(siteColumns, r.dialect.RowOrder()).build(r.dialect, pq)
	return queryAll(ctx, r.db, q, args, scanSite)
}

// FindByID fetches a single site by its ID.
func (r *SiteSQL) FindByID(ctx context.Context, siteID string) (*model.SiteName, error) {
	q, args := newSelect(siteColumns, "").and("site_id = ?", siteID).build(r.dialect, repository.All)
	return queryOne(ctx, r.db, q, args, scanSite)
}
