// Package testutil provides a migrated SQLite store with fixture rows for
// tests that exercise real SQL.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"huntapi/internal/config"
	"huntapi/internal/database"
	"huntapi/internal/database/migration"
	"huntapi/internal/model"
)

// Fixture is the data inserted by Seed.
type Fixture struct {
	Sites     []model.SiteName
	Huntable  []model.HuntableSpecies
	Documents []model.Document
	Geography []model.Geography
	Harvest   []model.Harvest
}

// DefaultFixture has three sites. BRSH has no document and no geography,
// CLAY has no huntable species.
func DefaultFixture() Fixture {
	return Fixture{
		Sites: []model.SiteName{
			{SiteID: "ANTL", FullName: "Antlers WMA", AbbreviatedName: "Antlers", SiteType: "WMA"},
			{SiteID: "BRSH", FullName: "Brush Creek SFWA", AbbreviatedName: "Brush Creek", SiteType: "SFWA"},
			{SiteID: "CLAY", FullName: "Clayton Lake SP", AbbreviatedName: "Clayton", SiteType: "SP"},
		},
		Huntable: []model.HuntableSpecies{
			{SiteID: "ANTL", Species: "Deer", Season: "Statewide", Stipulation: "Archery only"},
			{SiteID: "ANTL", Species: "Turkey", Season: "Spring", Stipulation: ""},
			{SiteID: "BRSH", Species: "Deer", Season: "Site specific", Stipulation: "Draw permit"},
		},
		Documents: []model.Document{
			{SiteID: "ANTL", SiteMarkdown: "# Antlers WMA\n\nOpen **sunrise** to sunset.", URL: "https://example.org/sites/antl"},
			{SiteID: "CLAY", SiteMarkdown: "# Clayton", URL: "https://example.org/sites/clay"},
		},
		Geography: []model.Geography{
			{SiteID: "ANTL", Region: "4", County: "Pushmataha", HuntableAcres: 1200, Address: "Route 2, Antlers", Latitude: 34.2312, Longitude: -95.6201},
			{SiteID: "CLAY", Region: "2", County: "Pushmataha", HuntableAcres: 510, Address: "Clayton Lake Rd", Latitude: 34.5501, Longitude: -95.3402},
		},
		Harvest: []model.Harvest{
			{RecordID: 1, SiteID: "ANTL", Site: "Antlers", IsCounty: false, Year: 2023, Species: "Deer", Season: "Archery", Subcategory: "Antlered", HarvestCount: 42},
			{RecordID: 2, SiteID: "ANTL", Site: "Pushmataha", IsCounty: true, Year: 2023, Species: "Deer", Season: "Archery", Subcategory: "Antlered", HarvestCount: 310},
			{RecordID: 3, SiteID: "BRSH", Site: "Brush Creek", IsCounty: false, Year: 2022, Species: "Turkey", Season: "Spring", Subcategory: "Gobbler", HarvestCount: 7},
			{RecordID: 4, SiteID: "CLAY", Site: "Pushmataha", IsCounty: true, Year: 2022, Species: "Turkey", Season: "Spring", Subcategory: "Gobbler", HarvestCount: 0},
		},
	}
}

// OpenSQLite opens a migrated, empty SQLite store in a temp dir. The pool is
// closed when the test ends.
func OpenSQLite(t *testing.T) (*sql.DB, database.Dialect) {
	t.Helper()

	db, dialect, err := database.Open(config.DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "huntil.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migration.EnsureMigrated(context.Background(), db, dialect, zerolog.Nop()))
	return db, dialect
}

// Seed inserts f in slice order, so insertion order equals slice order.
func Seed(t *testing.T, db *sql.DB, f Fixture) {
	t.Helper()
	ctx := context.Background()

	for _, s := range f.Sites {
		_, err := db.ExecContext(ctx,
			`INSERT INTO sites (site_id, full_name, abbreviated_name, site_type) VALUES (?, ?, ?, ?)`,
			s.SiteID, s.FullName, s.AbbreviatedName, s.SiteType)
		require.NoError(t, err)
	}
	for _, h := range f.Huntable {
		_, err := db.ExecContext(ctx,
			`INSERT INTO huntable_species (site_id, species, season, stipulation) VALUES (?, ?, ?, ?)`,
			h.SiteID, h.Species, h.Season, h.Stipulation)
		require.NoError(t, err)
	}
	for _, d := range f.Documents {
		_, err := db.ExecContext(ctx,
			`INSERT INTO documents (site_id, site_markdown, url) VALUES (?, ?, ?)`,
			d.SiteID, d.SiteMarkdown, d.URL)
		require.NoError(t, err)
	}
	for _, g := range f.Geography {
		_, err := db.ExecContext(ctx,
			`INSERT INTO geography (site_id, region, county, huntable_acres, address, latitude, longitude) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			g.SiteID, g.Region, g.County, g.HuntableAcres, g.Address, g.Latitude, g.Longitude)
		require.NoError(t, err)
	}
	for _, h := range f.Harvest {
		_, err := db.ExecContext(ctx,
			`INSERT INTO harvest (record_id, site_id, site, is_county, year, species, season, subcategory, harvest_count) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			h.RecordID, h.SiteID, h.Site, h.IsCounty, h.Year, h.Species, h.Season, h.Subcategory, h.HarvestCount)
		require.NoError(t, err)
	}
}
