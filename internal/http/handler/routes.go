package handler

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"huntapi/docs"
	"huntapi/internal/http/middleware"
	"huntapi/internal/service"
)

// Options carries the dependencies of the HTTP routes.
type Options struct {
	DB       *sql.DB
	Services *service.Services
	// Metrics is exposed on /metrics when set.
	Metrics prometheus.Gatherer
	// Prefix is mounted in front of every data route, e.g. "/api/v1".
	Prefix string
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Operational routes live at the root, data routes under opts.Prefix.
func RegisterRoutes(app *fiber.App, opts Options) {
	app.Get("/health", HealthCheck(opts.DB))
	app.Get("/healthz", LivenessProbe())
	if opts.Metrics != nil {
		app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(opts.Metrics, promhttp.HandlerOpts{})))
	}
	app.Get("/swagger/*", Swagger(opts.Prefix))

	svcs := opts.Services
	api := app.Group(opts.Prefix)

	api.Get("/", Root())

	// /sites/names must be registered before /sites/:site_id.
	api.Get("/sites/names", ListSites(svcs.Sites))
	api.Get("/sites/:site_id/names", GetSiteNames(svcs.Sites))
	api.Get("/sites/:site_id", GetSiteDetail(svcs.Sites))

	api.Get("/huntable-species", ListHuntableSpecies(svcs.Huntable))
	api.Get("/huntable-species/site/:site_id", ListHuntableSpeciesBySite(svcs.Huntable))
	api.Get("/huntable-species/species/:species", ListHuntableSpeciesBySpecies(svcs.Huntable))

	api.Get("/geography", ListGeography(svcs.Geography))
	api.Get("/geography/:site_id", GetGeography(svcs.Geography))

	api.Get("/documents", ListDocuments(svcs.Documents))
	api.Get("/documents/:site_id", GetDocument(svcs.Documents))

	api.Get("/harvest", ListHarvest(svcs.Harvest))
	api.Get("/harvest/counties", ListCountyHarvest(svcs.Harvest))
	api.Get("/harvest/sites", ListSiteHarvest(svcs.Harvest))
}

// Swagger serves the Swagger UI with the host and scheme of the request.
func Swagger(prefix string) fiber.Handler {
	basePath := prefix
	if basePath == "" {
		basePath = "/"
	}
	return func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		docs.SwaggerInfo.Host = c.Hostname()
		docs.SwaggerInfo.Schemes = []string{scheme}
		docs.SwaggerInfo.BasePath = basePath

		return swagger.HandlerDefault(c)
	}
}
