package service

import "huntapi/internal/repository"

const (
	// DefaultLimit is used when the caller gives no positive limit.
	DefaultLimit = 100
	// MaxLimit caps every page; larger limits are clamped, not rejected.
	MaxLimit = 100
)

// NormalizePage applies the default, the upper bound and a zero floor for
// offset.
func NormalizePage(limit, offset int) repository.PageQuery {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return repository.PageQuery{Limit: limit, Offset: offset}
}
