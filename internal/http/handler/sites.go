package handler

import (
	"github.com/gofiber/fiber/v2"

	"huntapi/internal/service"
)

// ListSites returns site names in storage order.
//
// @Summary List site names
// @Tags sites
// @Produce json
// @Param offset query int false "rows to skip" default(0)
// @Param limit query int false "page size, clamped to 100" default(100)
// @Success 200 {array} model.SiteName
// @Failure 400 {object} errorPayload
// @Router /sites/names [get]
func ListSites(svc service.SiteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, perr := pageParams(c)
		if perr != nil {
			return badParam(c, perr)
		}
		res, err := svc.ListNames(c.UserContext(), limit, offset)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetSiteNames returns the naming record of one site.
//
// @Summary Get site names
// @Tags sites
// @Produce json
// @Param site_id path string true "site id"
// @Success 200 {object} model.SiteName
// @Failure 404 {object} errorPayload
// @Router /sites/{site_id}/names [get]
func GetSiteNames(svc service.SiteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		site, err := svc.GetNames(c.UserContext(), pathParam(c, "site_id"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(site)
	}
}

// GetSiteDetail returns a site with everything that references it.
//
// @Summary Get site detail
// @Tags sites
// @Produce json
// @Param site_id path string true "site id"
// @Success 200 {object} model.SiteDetail
// @Failure 404 {object} errorPayload
// @Router /sites/{site_id} [get]
func GetSiteDetail(svc service.SiteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		detail, err := svc.GetDetail(c.UserContext(), pathParam(c, "site_id"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(detail)
	}
}
