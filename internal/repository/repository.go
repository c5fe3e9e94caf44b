// Package repository contains read-only data access abstractions.
// The SQL implementation lives in the sqlrepo subpackage.
package repository

// PageQuery holds limit/offset pagination parameters.
// A Limit of zero or less means no limit.
type PageQuery struct {
	Limit  int
	Offset int
}

// All selects every row.
var All = PageQuery{}
