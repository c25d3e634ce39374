package handler

import (
	"net/url"
	"strconv"

	"trajmatch/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// pointIndex parses the :index path parameter. ok is false once the 400 has been written.
func pointIndex(c echo.Context) (int, bool, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return 0, false, response.BadRequest(c, "INVALID_INDEX", "Point index must be an integer")
	}

	return index, true, nil
}

// routeName returns the :name path parameter. Names containing '/' arrive escaped.
func routeName(c echo.Context) string {
	name := c.Param("name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		return unescaped
	}

	return name
}
