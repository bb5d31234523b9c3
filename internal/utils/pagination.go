package utils

import "strconv"

// Pagination holds the coerced page/limit pair used by every list endpoint.
type Pagination struct {
	Page   int
	Limit  int
	Offset int
}

const (
	defaultPage  = 1
	defaultLimit = 4
)

// ParsePagination coerces the raw query parameters into positive integers.
// Absent, non-numeric or non-positive values fall back to the defaults
// (page 1, limit 4) rather than raising errors.
func ParsePagination(pageStr, limitStr string) Pagination {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = defaultPage
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	return Pagination{Page: page, Limit: limit, Offset: (page - 1) * limit}
}

// TotalPages computes ceil(totalCount / limit).
func TotalPages(totalCount int64, limit int) int {
	if totalCount <= 0 {
		return 0
	}
	return int((totalCount + int64(limit) - 1) / int64(limit))
}
