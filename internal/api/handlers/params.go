package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseIDParam parses the :id path parameter as an unsigned integer
func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", c.Param("id"))
	}
	return uint(id), nil
}

// parseUintQuery parses an optional unsigned-integer query parameter,
// returning nil when the parameter is absent
func parseUintQuery(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	result := uint(value)
	return &result, nil
}

// parseBoolQuery parses an optional boolean query parameter,
// returning nil when the parameter is absent
func parseBoolQuery(c *gin.Context, name string) (*bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	return &value, nil
}
