package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"huntapi/internal/http/middleware"
	"huntapi/internal/model"
	"huntapi/internal/service"
	serviceMocks "huntapi/internal/service/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(middleware.RequestID())
	return app
}

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := newTestApp()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
		assert.Equal(t, resp.Header.Get(middleware.RequestIDHeader), body.RequestID)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := newTestApp()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRoot(t *testing.T) {
	app := newTestApp()
	app.Get("/", Root())

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Hello world", body["message"])
}

func TestListSites(t *testing.T) {
	mockSvc := new(serviceMocks.MockSiteService)
	app := newTestApp()
	app.Get("/sites/names", ListSites(mockSvc))

	t.Run("success", func(t *testing.T) {
		sites := []model.SiteName{{SiteID: "ANTL", FullName: "Antlers WMA"}}
		mockSvc.On("ListNames", mock.Anything, 10, 5).Return(sites, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/sites/names?limit=10&offset=5", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got []model.SiteName
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, sites, got)
		mockSvc.AssertExpectations(t)
	})

	t.Run("defaults", func(t *testing.T) {
		mockSvc.On("ListNames", mock.Anything, service.DefaultLimit, 0).Return([]model.SiteName{}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/sites/names", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("large limit is passed through for clamping", func(t *testing.T) {
		mockSvc.On("ListNames", mock.Anything, 1000, 0).Return([]model.SiteName{}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/sites/names?limit=1000", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("ListNames", mock.Anything, service.DefaultLimit, 0).Return(nil, errors.New("connection refused")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/sites/names", nil))
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		body := decodeError(t, resp)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		assert.Equal(t, "internal server error", body.Error.Message)
		mockSvc.AssertExpectations(t)
	})
}

func TestPageParams(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := newTestApp()
	app.Get("/documents", ListDocuments(mockSvc))

	tests := []struct {
		query string
		code  string
	}{
		{query: "limit=abc", code: "INVALID_LIMIT"},
		{query: "limit=0", code: "INVALID_LIMIT"},
		{query: "limit=-3", code: "INVALID_LIMIT"},
		{query: "limit=1.5", code: "INVALID_LIMIT"},
		{query: "offset=abc", code: "INVALID_OFFSET"},
		{query: "offset=-1", code: "INVALID_OFFSET"},
		{query: "limit=10&offset=x", code: "INVALID_OFFSET"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents?"+tt.query, nil))
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tt.code, decodeError(t, resp).Error.Code)
		})
	}
	mockSvc.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetSiteNames(t *testing.T) {
	mockSvc := new(serviceMocks.MockSiteService)
	app := newTestApp()
	app.Get("/sites/:site_id/names", GetSiteNames(mockSvc))

	t.Run("success", func(t *testing.T) {
		site := &model.SiteName{SiteID: "ANTL", FullName: "Antlers WMA", AbbreviatedName: "Antlers", SiteType: "WMA"}
		mockSvc.On("GetNames", mock.Anything, "ANTL").Return(site, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/sites/ANTL/names", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, map[string]string{
			"site_id":          "ANTL",
			"full_name":        "Antlers WMA",
			"abbreviated_name": "Antlers",
			"site_type":        "WMA",
		}, got)
	})

	t.Run("not found", func(t *testing.T) {
		err := &service.NotFoundError{Resource: "site", Key: "site_id", Value: "NOPE"}
		mockSvc.On("GetNames", mock.Anything, "NOPE").Return(nil, err).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/sites/NOPE/names", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		body := decodeError(t, resp)
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
		assert.Contains(t, body.Error.Message, "NOPE")
	})

	mockSvc.AssertExpectations(t)
}

func TestGetSiteDetail(t *testing.T) {
	mockSvc := new(serviceMocks.MockSiteService)
	app := newTestApp()
	app.Get("/sites/:site_id", GetSiteDetail(mockSvc))

	detail := &model.SiteDetail{
		SiteName: model.SiteName{SiteID: "BRSH"},
		Huntable: []model.HuntableSpecies{{SiteID: "BRSH", Species: "Deer"}},
		Harvest:  []model.Harvest{},
	}
	mockSvc.On("GetDetail", mock.Anything, "BRSH").Return(detail, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/sites/BRSH", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "BRSH", got["site_id"])
	assert.Nil(t, got["document"])
	assert.Nil(t, got["geography"])
	assert.Len(t, got["huntable"], 1)
	assert.Equal(t, []any{}, got["harvest"])
	mockSvc.AssertExpectations(t)
}

func TestListHuntableSpecies(t *testing.T) {
	mockSvc := new(serviceMocks.MockHuntableSpeciesService)
	app := newTestApp()
	app.Get("/huntable-species", ListHuntableSpecies(mockSvc))
	app.Get("/huntable-species/site/:site_id", ListHuntableSpeciesBySite(mockSvc))
	app.Get("/huntable-species/species/:species", ListHuntableSpeciesBySpecies(mockSvc))

	t.Run("all empty", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, service.DefaultLimit, 0).Return([]model.HuntableSpecies{}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/huntable-species/", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got []model.HuntableSpecies
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("by site not found", func(t *testing.T) {
		err := &service.NotFoundError{Resource: "huntable species", Key: "site_id", Value: "NOPE"}
		mockSvc.On("ListBySite", mock.Anything, "NOPE", service.DefaultLimit, 0).Return(nil, err).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/huntable-species/site/NOPE", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "huntable species with site_id=NOPE not found", decodeError(t, resp).Error.Message)
	})

	t.Run("by species decodes path", func(t *testing.T) {
		rows := []model.HuntableSpecies{{SiteID: "ANTL", Species: "White-tailed Deer"}}
		mockSvc.On("ListBySpecies", mock.Anything, "White-tailed Deer", 20, 40).Return(rows, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/huntable-species/species/White-tailed%20Deer?limit=20&offset=40", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("invalid limit", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/huntable-species/site/ANTL?limit=zero", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_LIMIT", decodeError(t, resp).Error.Code)
	})

	mockSvc.AssertExpectations(t)
}

func TestGeographyHandlers(t *testing.T) {
	mockSvc := new(serviceMocks.MockGeographyService)
	app := newTestApp()
	app.Get("/geography", ListGeography(mockSvc))
	app.Get("/geography/:site_id", GetGeography(mockSvc))

	mockSvc.On("List", mock.Anything, service.DefaultLimit, 0).Return([]model.Geography{{SiteID: "ANTL", Latitude: 34.2}}, nil).Once()
	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/geography/", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	mockSvc.On("Get", mock.Anything, "NOPE").Return(nil, &service.NotFoundError{Resource: "geography", Key: "site_id", Value: "NOPE"}).Once()
	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/geography/NOPE", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	mockSvc.On("Get", mock.Anything, "ANTL").Return(nil, errors.New("timeout")).Once()
	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/geography/ANTL", nil))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.NotContains(t, decodeError(t, resp).Error.Message, "timeout")

	mockSvc.AssertExpectations(t)
}

func TestDocumentHandlers(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := newTestApp()
	app.Get("/documents/:site_id", GetDocument(mockSvc))

	doc := &model.Document{SiteID: "ANTL", SiteMarkdown: "# Antlers", URL: "https://example.org"}
	mockSvc.On("Get", mock.Anything, "ANTL").Return(doc, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/ANTL", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got model.Document
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, *doc, got)
	mockSvc.AssertExpectations(t)
}

func TestHarvestHandlers(t *testing.T) {
	mockSvc := new(serviceMocks.MockHarvestService)
	app := newTestApp()
	app.Get("/harvest", ListHarvest(mockSvc))
	app.Get("/harvest/counties", ListCountyHarvest(mockSvc))
	app.Get("/harvest/sites", ListSiteHarvest(mockSvc))

	tests := []struct {
		path   string
		method string
	}{
		{path: "/harvest/", method: "List"},
		{path: "/harvest/counties", method: "ListCounties"},
		{path: "/harvest/sites", method: "ListSites"},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			mockSvc.On(tt.method, mock.Anything, 5, 0).Return([]model.Harvest{}, nil).Once()

			resp, _ := app.Test(httptest.NewRequest(http.MethodGet, tt.path+"?limit=5", nil))
			assert.Equal(t, http.StatusOK, resp.StatusCode)

			var got []model.Harvest
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
			assert.Empty(t, got)
		})
	}
	mockSvc.AssertExpectations(t)
}

func TestErrorHandler(t *testing.T) {
	app := newTestApp()
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("boom") })
	app.Get("/bad", func(c *fiber.Ctx) error { return fiber.ErrBadRequest })

	tests := []struct {
		path   string
		status int
		code   string
	}{
		{path: "/missing", status: http.StatusNotFound, code: "NOT_FOUND"},
		{path: "/boom", status: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
		{path: "/bad", status: http.StatusBadRequest, code: "BAD_REQUEST"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, _ := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, resp.StatusCode)

			body := decodeError(t, resp)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.NotEmpty(t, body.RequestID)
		})
	}
}
