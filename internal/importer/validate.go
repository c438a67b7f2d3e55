package importer

import (
	"errors"
	"fmt"
)

// ValidateGroupFile checks every group in the file and returns all problems
// found, each prefixed with the group's position.
func ValidateGroupFile(file *GroupFile) []error {
	if len(file.Groups) == 0 {
		return []error{fmt.Errorf("groups: at least one pile group is required")}
	}

	var errs []error
	for i, gi := range file.Groups {
		g := gi.toDomain()
		err := g.Validate()
		if err == nil {
			continue
		}
		label := fmt.Sprintf("groups[%d]", i)
		if gi.Name != "" {
			label = fmt.Sprintf("groups[%d] (%s)", i, gi.Name)
		}
		errs = append(errs, fmt.Errorf("%s: %w", label, err))
	}
	return errs
}

// JoinErrors collapses validation errors into one error, or nil.
func JoinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%d validation error(s): %w", len(errs), errors.Join(errs...))
}
