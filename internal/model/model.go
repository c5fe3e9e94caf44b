// Package model contains the response-shaped records served by the API.
// They carry JSON tags only; storage rows are mapped into them explicitly by
// the repository layer.
package model
