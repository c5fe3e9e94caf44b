package repository

import (
	"context"

	"huntapi/internal/model"
)

// DocumentRepository reads the documents table.
type DocumentRepository interface {
	List(ctx context.Context, pq PageQuery) ([]model.Document, error)

	// FindBySiteID returns the document of a site or sql.ErrNoRows.
	FindBySiteID(ctx context.Context, siteID string) (*model.Document, error)
}
