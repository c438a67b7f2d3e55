package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/tubepile/internal/calc"
	"github.com/alexanderramin/tubepile/internal/domain"
	"github.com/charmbracelet/huh"
)

// pileFormValues holds the raw text of the pile group form. huh writes
// into these fields on every keystroke, which is what drives the live
// preview.
type pileFormValues struct {
	name   string
	count  string
	od     string
	wt     string
	length string
	paint  string
}

// newPileFormValues returns blank values, or the fields of g when editing.
func newPileFormValues(g *domain.PileGroup) *pileFormValues {
	if g == nil {
		return &pileFormValues{}
	}
	return &pileFormValues{
		name:   g.Name,
		count:  strconv.Itoa(g.PileCount),
		od:     strconv.FormatFloat(g.OuterDiameter, 'f', -1, 64),
		wt:     strconv.FormatFloat(g.WallThickness, 'f', -1, 64),
		length: strconv.FormatFloat(g.PileLength, 'f', -1, 64),
		paint:  strconv.FormatFloat(g.PaintLength, 'f', -1, 64),
	}
}

// preview computes metrics from whatever is currently typed.
func (v *pileFormValues) preview() calc.Metrics {
	return calc.Calculate(calc.Input{
		OuterDiameter: lenientFloat(v.od),
		WallThickness: lenientFloat(v.wt),
		PileLength:    lenientFloat(v.length),
		PaintLength:   lenientFloat(v.paint),
		PileCount:     lenientInt(v.count),
	})
}

// group converts the submitted values into validated fields. A blank
// paint length means no painting.
func (v *pileFormValues) group() (domain.PileGroup, error) {
	count, err := strconv.Atoi(strings.TrimSpace(v.count))
	if err != nil {
		return domain.PileGroup{}, fmt.Errorf("pile count %q: %w", v.count, err)
	}
	var nums [4]float64
	for i, s := range []string{v.od, v.wt, v.length, v.paint} {
		if s == "" && i == 3 {
			continue
		}
		if nums[i], err = parseFloat(s); err != nil {
			return domain.PileGroup{}, fmt.Errorf("invalid number %q: %w", s, err)
		}
	}

	g := domain.PileGroup{
		Name:          v.name,
		PileCount:     count,
		OuterDiameter: nums[0],
		WallThickness: nums[1],
		PileLength:    nums[2],
		PaintLength:   nums[3],
	}
	return g, g.Validate()
}

// validateWallThickness requires a positive thickness below half of the
// outer diameter currently in the form.
func (v *pileFormValues) validateWallThickness(s string) error {
	if err := validatePositiveFloat(s); err != nil {
		return err
	}
	wt := lenientFloat(s)
	if od := lenientFloat(v.od); od > 0 && 2*wt >= od {
		return fmt.Errorf("wall thickness must be less than half of %s mm", v.od)
	}
	return nil
}

// pileGroupForm builds the add/edit form over v.
func pileGroupForm(v *pileFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Group Name").
				Placeholder("Berth A").
				Value(&v.name).
				Validate(validateRequired("group name", nil)),
			huh.NewInput().
				Title("Pile Count").
				Placeholder("1").
				Value(&v.count).
				Validate(validateRequired("pile count", validatePositiveInt)),
			huh.NewInput().
				Title("Outer Diameter (mm)").
				Placeholder("508").
				Value(&v.od).
				Validate(validateRequired("outer diameter", validatePositiveFloat)),
			huh.NewInput().
				Title("Wall Thickness (mm)").
				Placeholder("12").
				Value(&v.wt).
				Validate(validateRequired("wall thickness", v.validateWallThickness)),
			huh.NewInput().
				Title("Pile Length (m)").
				Placeholder("24").
				Value(&v.length).
				Validate(validateRequired("pile length", validatePositiveFloat)),
			huh.NewInput().
				Title("Paint Length (m, blank for none)").
				Placeholder("0").
				Value(&v.paint).
				Validate(validateNonNegativeFloat),
		),
	).WithTheme(tubepileHuhTheme()).WithShowHelp(false)
}
