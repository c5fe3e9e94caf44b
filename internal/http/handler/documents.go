package handler

import (
	"github.com/gofiber/fiber/v2"

	"huntapi/internal/service"
)

// ListDocuments returns every site document.
//
// @Summary List documents
// @Tags documents
// @Produce json
// @Param offset query int false "rows to skip" default(0)
// @Param limit query int false "page size, clamped to 100" default(100)
// @Success 200 {array} model.Document
// @Failure 400 {object} errorPayload
// @Router /documents/ [get]
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, perr := pageParams(c)
		if perr != nil {
			return badParam(c, perr)
		}
		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetDocument returns the document of one site.
//
// @Summary Get document
// @Tags documents
// @Produce json
// @Param site_id path string true "site id"
// @Success 200 {object} model.Document
// @Failure 404 {object} errorPayload
// @Router /documents/{site_id} [get]
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := svc.Get(c.UserContext(), pathParam(c, "site_id"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(doc)
	}
}
