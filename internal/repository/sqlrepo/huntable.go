package sqlrepo

import (
	"context"
	"database/sql"

	"huntapi/internal/database"
	"huntapi/internal/model"
	"huntapi/internal/repository"
)

const huntableColumns = `SELECT site_id, species, season, stipulation FROM huntable_species`

// HuntableSpeciesSQL is a database/sql implementation of
// repository.HuntableSpeciesRepository.
type HuntableSpeciesSQL struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewHuntableSpeciesSQL creates a new HuntableSpeciesSQL repository.
func NewHuntableSpeciesSQL(db *sql.DB, d database.Dialect) *HuntableSpeciesSQL {
	return &HuntableSpeciesSQL{db: db, dialect: d}
}

var _ repository.HuntableSpeciesRepository = (*HuntableSpeciesSQL)(nil)

func scanHuntable(s scanner) (model.HuntableSpecies, error) {
	var out model.HuntableSpecies
	err := s.Scan(
		&out.SiteID,
		&out.Species,
		&out.Season,
		&out.Stipulation,
	)
	return out, err
}

func huntableSelect(f repository.HuntableSpeciesFilter) *selectQuery {
	q := newSelect(huntableColumns, "record_id")
	if f.SiteID != "" {
		q.and("site_id = ?", f.SiteID)
	}
	if f.Species != "" {
		q.and("species = ?", f.Species)
	}
	return q
}

// List returns huntable species matching f ordered by record_id.
func (r *HuntableSpeciesSQL) List(ctx context.Context, f repository.HuntableSpeciesFilter, pq repository.PageQuery) ([]model.HuntableSpecies, error) {
	q, args := huntableSelect(f).build(r.dialect, pq)
	return queryAll(ctx, r.db, q, args, scanHuntable)
}

// Count returns the number of huntable species matching f.
func (r *HuntableSpeciesSQL) Count(ctx context.Context, f repository.HuntableSpeciesFilter) (int, error) {
	q, args := huntableSelect(f).count(r.dialect, "huntable_species")
	var total int
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
