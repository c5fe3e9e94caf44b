// Package sqlrepo implements the repository interfaces with database/sql.
// Every statement is an explicit, parameterized SELECT and every row is
// mapped by a hand-written scan function.
package sqlrepo

import (
	"context"
	"database/sql"
	"strings"

	"huntapi/internal/database"
	"huntapi/internal/repository"
)

// selectQuery assembles a SELECT with optional AND-ed conditions and paging.
type selectQuery struct {
	from    string
	where   []string
	args    []any
	orderBy string
}

func newSelect(from, orderBy string) *selectQuery {
	return &selectQuery{from: from, orderBy: orderBy}
}

func (q *selectQuery) and(cond string, arg any) *selectQuery {
	q.where = append(q.where, cond)
	q.args = append(q.args, arg)
	return q
}

func (q *selectQuery) whereClause() string {
	if len(q.where) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(q.where, " AND ")
}

// build renders the statement. Offset is only applied together with a
// positive limit.
func (q *selectQuery) build(d database.Dialect, pq repository.PageQuery) (string, []any) {
	var b strings.Builder
	b.WriteString(q.from)
	b.WriteString(q.whereClause())
	if q.orderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(q.orderBy)
	}
	args := append([]any(nil), q.args...)
	if pq.Limit > 0 {
		b.WriteString(" LIMIT ? OFFSET ?")
		args = append(args, pq.Limit, max(pq.Offset, 0))
	}
	return d.Rebind(b.String()), args
}

// count renders SELECT COUNT(*) over the same conditions.
func (q *selectQuery) count(d database.Dialect, table string) (string, []any) {
	return d.Rebind("SELECT COUNT(*) FROM " + table + q.whereClause()), q.args
}

type scanner interface {
	Scan(dest ...any) error
}

// queryAll runs q and maps every row with scan. The result is never nil so
// an empty page serializes as [].
func queryAll[T any](ctx context.Context, db *sql.DB, q string, args []any, scan func(scanner) (T, error)) ([]T, error) {
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// queryOne runs q and maps its single row. A missing row surfaces as
// sql.ErrNoRows.
func queryOne[T any](ctx context.Context, db *sql.DB, q string, args []any, scan func(scanner) (T, error)) (*T, error) {
	item, err := scan(db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, err
	}
	return &item, nil
}
