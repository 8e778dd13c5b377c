package tools

import (
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool arguments are coerced, never rejected: anything missing, mistyped or
// out of range falls back to its documented default.

func intArg(request mcp.CallToolRequest, key string, def, min, max int) int {
	value, ok := request.GetArguments()[key]
	if !ok {
		return def
	}

	var n int
	switch v := value.(type) {
	case float64:
		n = int(v)
	case int:
		n = v
	case string:
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return def
		}
		n = parsed
	default:
		return def
	}

	if n < min || n > max {
		return def
	}
	return n
}

func stringArg(request mcp.CallToolRequest, key, def string) string {
	value, ok := request.GetArguments()[key]
	if !ok {
		return def
	}

	s, ok := value.(string)
	if !ok || s == "" {
		return def
	}
	return s
}
