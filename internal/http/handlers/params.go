package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// pageParams reads limit/offset query parameters, falling back to the
// configured default page size. A limit of "all" means the default cap.
func pageParams(c *fiber.Ctx, defaultLimit int) (limit, offset int) {
	limit = defaultLimit
	if v := c.Query("limit"); v != "" && v != "all" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

// queryFilter returns a pointer to the query value, nil when absent.
// The "all" sentinel is normalized away in the repository layer.
func queryFilter(c *fiber.Ctx, key string) *string {
	if v := c.Query(key); v != "" {
		return &v
	}
	return nil
}
