package services

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"
)

// ErrBadCursor is returned when a load-more call carries a cursor that
// cannot be decoded. Callers should restart pagination from the beginning.
var ErrBadCursor = errors.New("invalid pagination cursor")

// Page is one slice of a cursor-paginated result set. Exhausted is set
// when the page came back shorter than the requested size; a full page
// does not imply more data, the next call confirms that.
type Page[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
	Exhausted  bool   `json:"exhausted"`
}

// cursor pins the position of the last returned row under the query's
// compound ordering. The id is a deterministic tiebreak so rows that share
// every sort-key value still have a total order. Changing any filter or
// sort parameter makes an old cursor meaningless; callers must start over.
type cursor struct {
	AverageRatings float64   `json:"avg"`
	UpdatedAt      time.Time `json:"updated_at"`
	CreatedAt      time.Time `json:"created_at"`
	ID             string    `json:"id"`
}

func encodeCursor(c cursor) string {
	raw, err := json.Marshal(c)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

func decodeCursor(s string) (cursor, error) {
	var c cursor
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return c, ErrBadCursor
	}
	if err := json.Unmarshal(raw, &c); err != nil {
		return c, ErrBadCursor
	}
	return c, nil
}

// pageOf assembles a Page from the fetched rows. last builds the cursor
// for the final row when the page is full.
func pageOf[T any](items []T, limit int, last func(T) cursor) Page[T] {
	page := Page[T]{
		Items:     items,
		Exhausted: len(items) < limit,
	}
	if len(items) > 0 {
		page.NextCursor = encodeCursor(last(items[len(items)-1]))
	}
	return page
}

func sortDir(desc bool) string {
	if desc {
		return "desc"
	}
	return "asc"
}
