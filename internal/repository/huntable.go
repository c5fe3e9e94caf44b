package repository

import (
	"context"

	"huntapi/internal/model"
)

// HuntableSpeciesFilter narrows a huntable species query. Empty fields match
// everything.
type HuntableSpeciesFilter struct {
	SiteID  string
	Species string
}

// IsZero reports whether the filter matches every row.
func (f HuntableSpeciesFilter) IsZero() bool {
	return f.SiteID == "" && f.Species == ""
}

// HuntableSpeciesRepository reads the huntable_species table.
type HuntableSpeciesRepository interface {
	// List returns matching records ordered by record_id.
	List(ctx context.Context, f HuntableSpeciesFilter, pq PageQuery) ([]model.HuntableSpecies, error)

	// Count returns the number of records matching f.
	Count(ctx context.Context, f HuntableSpeciesFilter) (int, error)
}
