package handler

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"huntapi/internal/service"
)

type paramError struct {
	code    string
	message string
}

var (
	errInvalidLimit  = &paramError{code: "INVALID_LIMIT", message: "limit must be a positive integer"}
	errInvalidOffset = &paramError{code: "INVALID_OFFSET", message: "offset must be a non-negative integer"}
)

// pageParams reads limit and offset from the query string. An absent limit
// is the service default; values above the maximum are clamped downstream.
func pageParams(c *fiber.Ctx) (limit, offset int, perr *paramError) {
	limit, offset = service.DefaultLimit, 0

	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return 0, 0, errInvalidLimit
		}
		limit = n
	}
	if s := c.Query("offset"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return 0, 0, errInvalidOffset
		}
		offset = n
	}
	return limit, offset, nil
}

func badParam(c *fiber.Ctx, perr *paramError) error {
	return writeError(c, fiber.StatusBadRequest, perr.code, perr.message)
}

// pathParam returns the percent-decoded route parameter, so species names
// with spaces can be used as path segments.
func pathParam(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
