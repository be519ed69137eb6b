package http

import (
	"net/http"
	"strconv"

	apperrors "dogroom/pkg/errors"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// ExtractCursorLimit reads the cursor and limit query parameters used by
// paged listing endpoints. The cursor is opaque to clients; an absent cursor
// starts at the beginning of the index.
func ExtractCursorLimit(r *http.Request) (string, int, error) {
	query := r.URL.Query()

	cursor := query.Get("cursor")

	limit := DefaultPageLimit
	if s := query.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return "", 0, apperrors.InvalidInput("invalid limit parameter: " + s)
		}
		limit = v
	}

	if limit < 1 {
		limit = 1
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	return cursor, limit, nil
}
