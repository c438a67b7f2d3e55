package repository

import (
	"fmt"
	"time"

	"github.com/alexanderramin/tubepile/internal/domain"
)

const timeLayout = time.RFC3339Nano

// formatTime converts a timestamp to its stored UTC text form.
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime parses a stored timestamp, naming the column on failure.
func parseTime(column, s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", column, err)
	}
	return t, nil
}

// notFound wraps domain.ErrGroupNotFound with the requested ID.
func notFound(id string) error {
	return fmt.Errorf("%w: %q", domain.ErrGroupNotFound, id)
}

// clone returns a detached copy so callers cannot mutate stored records.
func clone(g *domain.PileGroup) *domain.PileGroup {
	c := *g
	return &c
}
