package sqlrepo

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huntapi/internal/model"
	"huntapi/internal/repository"
	"huntapi/internal/testutil"
)

func TestSQLite_RoundTrip(t *testing.T) {
	db, dialect := testutil.OpenSQLite(t)
	fx := testutil.DefaultFixture()
	testutil.Seed(t, db, fx)
	ctx := context.Background()

	t.Run("sites in insertion order", func(t *testing.T) {
		sites, err := NewSiteSQL(db, dialect).List(ctx, repository.PageQuery{Limit: 100})
		require.NoError(t, err)
		assert.Equal(t, fx.Sites, sites)
	})

	t.Run("site by id", func(t *testing.T) {
		repo := NewSiteSQL(db, dialect)
		site, err := repo.FindByID(ctx, "ANTL")
		require.NoError(t, err)
		assert.Equal(t, fx.Sites[0], *site)

		_, err = repo.FindByID(ctx, "NOPE")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("huntable species", func(t *testing.T) {
		repo := NewHuntableSpeciesSQL(db, dialect)

		all, err := repo.List(ctx, repository.HuntableSpeciesFilter{}, repository.PageQuery{Limit: 100})
		require.NoError(t, err)
		assert.Equal(t, fx.Huntable, all)

		deer, err := repo.List(ctx, repository.HuntableSpeciesFilter{Species: "Deer"}, repository.PageQuery{Limit: 100})
		require.NoError(t, err)
		assert.Equal(t, []model.HuntableSpecies{fx.Huntable[0], fx.Huntable[2]}, deer)

		n, err := repo.Count(ctx, repository.HuntableSpeciesFilter{SiteID: "ANTL"})
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		n, err = repo.Count(ctx, repository.HuntableSpeciesFilter{SiteID: "CLAY"})
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("documents", func(t *testing.T) {
		repo := NewDocumentSQL(db, dialect)

		docs, err := repo.List(ctx, repository.PageQuery{Limit: 100})
		require.NoError(t, err)
		assert.Equal(t, fx.Documents, docs)

		doc, err := repo.FindBySiteID(ctx, "ANTL")
		require.NoError(t, err)
		assert.Equal(t, fx.Documents[0], *doc)

		_, err = repo.FindBySiteID(ctx, "BRSH")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("geography", func(t *testing.T) {
		repo := NewGeographySQL(db, dialect)

		geo, err := repo.List(ctx, repository.PageQuery{Limit: 100})
		require.NoError(t, err)
		assert.Equal(t, fx.Geography, geo)

		g, err := repo.FindBySiteID(ctx, "CLAY")
		require.NoError(t, err)
		assert.Equal(t, fx.Geography[1], *g)
	})

	t.Run("harvest", func(t *testing.T) {
		repo := NewHarvestSQL(db, dialect)

		all, err := repo.List(ctx, repository.HarvestFilter{}, repository.PageQuery{Limit: 100})
		require.NoError(t, err)
		assert.Equal(t, fx.Harvest, all)

		site, err := repo.List(ctx, repository.HarvestFilter{SiteID: "ANTL"}, repository.All)
		require.NoError(t, err)
		assert.Equal(t, fx.Harvest[:2], site)
	})
}

func TestSQLite_Pagination(t *testing.T) {
	db, dialect := testutil.OpenSQLite(t)
	fx := testutil.DefaultFixture()
	testutil.Seed(t, db, fx)
	repo := NewSiteSQL(db, dialect)
	ctx := context.Background()

	for offset := 0; offset <= len(fx.Sites)+1; offset++ {
		for limit := 1; limit <= len(fx.Sites)+1; limit++ {
			got, err := repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
			require.NoError(t, err)

			end := min(offset+limit, len(fx.Sites))
			want := []model.SiteName{}
			if offset < len(fx.Sites) {
				want = fx.Sites[offset:end]
			}
			assert.Equal(t, want, got, "offset=%d limit=%d", offset, limit)
		}
	}
}

func TestSQLite_HarvestPartition(t *testing.T) {
	db, dialect := testutil.OpenSQLite(t)
	fx := testutil.DefaultFixture()
	testutil.Seed(t, db, fx)
	repo := NewHarvestSQL(db, dialect)
	ctx := context.Background()

	all, err := repo.List(ctx, repository.HarvestFilter{}, repository.All)
	require.NoError(t, err)
	counties, err := repo.List(ctx, repository.HarvestFilter{Level: repository.CountyLevel}, repository.All)
	require.NoError(t, err)
	sites, err := repo.List(ctx, repository.HarvestFilter{Level: repository.SiteLevel}, repository.All)
	require.NoError(t, err)

	seen := map[int]int{}
	for _, h := range counties {
		assert.True(t, h.IsCounty)
		seen[h.RecordID]++
	}
	for _, h := range sites {
		assert.False(t, h.IsCounty)
		seen[h.RecordID]++
	}

	assert.Len(t, counties, 2)
	assert.Len(t, sites, 2)
	assert.Len(t, seen, len(all))
	for _, h := range all {
		assert.Equal(t, 1, seen[h.RecordID], "record %d", h.RecordID)
	}
}

func TestSQLite_EmptyTables(t *testing.T) {
	db, dialect := testutil.OpenSQLite(t)
	ctx := context.Background()

	sites, err := NewSiteSQL(db, dialect).List(ctx, repository.PageQuery{Limit: 100})
	require.NoError(t, err)
	assert.NotNil(t, sites)
	assert.Empty(t, sites)

	harvest, err := NewHarvestSQL(db, dialect).List(ctx, repository.HarvestFilter{Level: repository.CountyLevel}, repository.PageQuery{Limit: 100})
	require.NoError(t, err)
	assert.NotNil(t, harvest)
	assert.Empty(t, harvest)
}
