package cli

import (
	"fmt"

	"github.com/alexanderramin/tubepile/internal/domain"
	"github.com/spf13/pflag"
)

// pileFlags binds the pile geometry flags shared by calc, group add and
// group update.
type pileFlags struct {
	name          string
	count         int
	outerDiameter float64
	wallThickness float64
	pileLength    float64
	paintLength   float64
}

func (f *pileFlags) register(fs *pflag.FlagSet, withName bool) {
	if withName {
		fs.StringVar(&f.name, "name", "", "Group name")
	}
	fs.IntVar(&f.count, "count", 1, "Number of piles")
	fs.Float64Var(&f.outerDiameter, "od", 0, "Outer diameter (mm)")
	fs.Float64Var(&f.wallThickness, "wt", 0, "Wall thickness (mm)")
	fs.Float64Var(&f.pileLength, "length", 0, "Pile length (m)")
	fs.Float64Var(&f.paintLength, "paint", 0, "Painted length per pile (m), 0 for none")
}

func (f *pileFlags) group() domain.PileGroup {
	return domain.PileGroup{
		Name:          f.name,
		PileCount:     f.count,
		OuterDiameter: f.outerDiameter,
		WallThickness: f.wallThickness,
		PileLength:    f.pileLength,
		PaintLength:   f.paintLength,
	}
}

// merge returns current with every explicitly set flag applied.
func (f *pileFlags) merge(fs *pflag.FlagSet, current *domain.PileGroup) domain.PileGroup {
	var name string
	if fs.Changed("name") {
		name = f.name
	}
	return domain.PileGroup{
		Name:          domain.CoalesceStr(name, current.Name),
		PileCount:     domain.IntFromPtrWithDefault(current.PileCount, changedInt(fs, "count", &f.count)),
		OuterDiameter: domain.Float64FromPtrWithDefault(current.OuterDiameter, changedFloat(fs, "od", &f.outerDiameter)),
		WallThickness: domain.Float64FromPtrWithDefault(current.WallThickness, changedFloat(fs, "wt", &f.wallThickness)),
		PileLength:    domain.Float64FromPtrWithDefault(current.PileLength, changedFloat(fs, "length", &f.pileLength)),
		PaintLength:   domain.Float64FromPtrWithDefault(current.PaintLength, changedFloat(fs, "paint", &f.paintLength)),
	}
}

func changedInt(fs *pflag.FlagSet, name string, v *int) *int {
	if fs.Changed(name) {
		return v
	}
	return nil
}

func changedFloat(fs *pflag.FlagSet, name string, v *float64) *float64 {
	if fs.Changed(name) {
		return v
	}
	return nil
}

// requireFlags reports every named flag the user did not set.
func requireFlags(fs *pflag.FlagSet, names ...string) error {
	var missing []string
	for _, n := range names {
		if !fs.Changed(n) {
			missing = append(missing, "--"+n)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("required flag(s) not set: %v", missing)
	}
	return nil
}
