package repository

import (
	"context"

	"huntapi/internal/model"
)

// HarvestLevel selects the aggregation level of harvest records.
type HarvestLevel int

const (
	AnyLevel HarvestLevel = iota
	CountyLevel
	SiteLevel
)

// HarvestFilter narrows a harvest query. Empty fields match everything.
type HarvestFilter struct {
	SiteID string
	Level  HarvestLevel
}

// HarvestRepository reads the harvest table.
type HarvestRepository interface {
	// List returns matching records ordered by record_id.
	List(ctx context.Context, f HarvestFilter, pq PageQuery) ([]model.Harvest, error)
}
