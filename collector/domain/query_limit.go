package domain

import "errors"

// QueryLimit caps how many records a history query may return.
type QueryLimit int

// NewQueryLimit creates a new QueryLimit with validation to ensure the limit
// is positive.
func NewQueryLimit(val int) (QueryLimit, error) {
	if val <= 0 {
		return 0, errors.New("query limit must be greater than 0")
	}
	return QueryLimit(val), nil
}
