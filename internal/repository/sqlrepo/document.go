package sqlrepo

import (
	"context"
	"database/sql"

	"huntapi/internal/database"
	"huntapi/internal/model"
	"huntapi/internal/repository"
)

const documentColumns = `SELECT site_id, site_markdown, url FROM documents`

// DocumentSQL is a database/sql implementation of repository.DocumentRepository.
type DocumentSQL struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewDocumentSQL creates a new DocumentSQL repository.
func NewDocumentSQL(db *sql.DB, d database.Dialect) *DocumentSQL {
	return &DocumentSQL{db: db, dialect: d}
}

var _ repository.DocumentRepository = (*DocumentSQL)(nil)

func scanDocument(s scanner) (model.Document, error) {
	var out model.Document
	err := s.Scan(
		&out.SiteID,
		&out.SiteMarkdown,
		&out.URL,
	)
	return out, err
}

// List returns documents in storage order.
func (r *DocumentSQL) List(ctx context.Context, pq repository.PageQuery) ([]model.Document, error) {
	q, args := newSelect(documentColumns, r.dialect.RowOrder()).build(r.dialect, pq)
	return queryAll(ctx, r.db, q, args, scanDocument)
}

// FindBySiteID fetches the document of a site.
func (r *DocumentSQL) FindBySiteID(ctx context.Context, siteID string) (*model.Document, error) {
	q, args := newSelect(documentColumns, "").and("site_id = ?", siteID).build(r.dialect, repository.All)
	return queryOne(ctx, r.db, q, args, scanDocument)
}
