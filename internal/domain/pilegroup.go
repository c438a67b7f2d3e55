package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrGroupNotFound is returned when a pile group ID has no record.
var ErrGroupNotFound = errors.New("pile group not found")

// PileGroup is a named batch of identical tubular piles sharing one geometry.
type PileGroup struct {
	ID            string
	Name          string
	PileCount     int
	OuterDiameter float64 // mm
	WallThickness float64 // mm
	PileLength    float64 // m
	PaintLength   float64 // m, 0 disables painting
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Painted reports whether any paint area applies to the group.
func (g *PileGroup) Painted() bool {
	return g.PaintLength > 0
}

// ReplaceFields copies every user-editable field from src, leaving ID and
// CreatedAt untouched.
func (g *PileGroup) ReplaceFields(src PileGroup) {
	g.Name = src.Name
	g.PileCount = src.PileCount
	g.OuterDiameter = src.OuterDiameter
	g.WallThickness = src.WallThickness
	g.PileLength = src.PileLength
	g.PaintLength = src.PaintLength
}

// SameFields reports whether two groups carry identical user-editable fields.
func (g *PileGroup) SameFields(o *PileGroup) bool {
	return g.Name == o.Name &&
		g.PileCount == o.PileCount &&
		g.OuterDiameter == o.OuterDiameter &&
		g.WallThickness == o.WallThickness &&
		g.PileLength == o.PileLength &&
		g.PaintLength == o.PaintLength
}

// Validate checks that the geometry describes a physically valid tube.
// The store never calls it; input surfaces do before writing.
func (g *PileGroup) Validate() error {
	var problems []string
	if strings.TrimSpace(g.Name) == "" {
		problems = append(problems, "name is required")
	}
	if g.PileCount < 1 {
		problems = append(problems, "pile count must be at least 1")
	}

	dims := []struct {
		label string
		value float64
	}{
		{"outer diameter", g.OuterDiameter},
		{"wall thickness", g.WallThickness},
		{"pile length", g.PileLength},
		{"paint length", g.PaintLength},
	}
	finite := true
	for _, d := range dims {
		if math.IsNaN(d.value) || math.IsInf(d.value, 0) {
			problems = append(problems, d.label+" must be a finite number")
			finite = false
		}
	}
	if !finite {
		return &ValidationError{Problems: problems}
	}

	if g.OuterDiameter <= 0 {
		problems = append(problems, "outer diameter must be positive")
	}
	if g.WallThickness <= 0 {
		problems = append(problems, "wall thickness must be positive")
	} else if g.OuterDiameter > 0 && g.WallThickness*2 >= g.OuterDiameter {
		problems = append(problems, fmt.Sprintf("wall thickness %.1f mm must be less than half the outer diameter (%.1f mm)", g.WallThickness, g.OuterDiameter/2))
	}
	if g.PileLength <= 0 {
		problems = append(problems, "pile length must be positive")
	}
	if g.PaintLength < 0 {
		problems = append(problems, "paint length cannot be negative")
	}
	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: problems}
}

// DisplayID returns the first 8 characters of the ID.
func (g *PileGroup) DisplayID() string {
	if len(g.ID) >= 8 {
		return g.ID[:8]
	}
	return g.ID
}

// ValidationError lists every problem found in a pile group.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid pile group: " + strings.Join(e.Problems, "; ")
}
