package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveGroupID resolves a pile group identifier, which can be a full UUID
// or a unique UUID prefix as printed by `group list`.
func resolveGroupID(ctx context.Context, app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("group ID is required")
	}

	groups, err := app.Groups.List(ctx)
	if err != nil {
		return "", err
	}

	for _, g := range groups {
		if g.ID == input {
			return g.ID, nil
		}
	}

	var matches []string
	lower := strings.ToLower(input)
	for _, g := range groups {
		if strings.HasPrefix(strings.ToLower(g.ID), lower) {
			matches = append(matches, g.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", errGroupNotResolved{input: input}
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("group ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// errGroupNotResolved is returned when no stored group matches an ID
// argument. Commands that treat a missing group as a no-op check for it.
type errGroupNotResolved struct {
	input string
}

func (e errGroupNotResolved) Error() string {
	return fmt.Sprintf("pile group not found: %q", e.input)
}
