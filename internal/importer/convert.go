package importer

import (
	"github.com/alexanderramin/tubepile/internal/domain"
)

// Convert turns a validated file into pile groups without IDs; the store
// assigns identity on insert. Call ValidateGroupFile first.
func Convert(file *GroupFile) []domain.PileGroup {
	groups := make([]domain.PileGroup, 0, len(file.Groups))
	for _, gi := range file.Groups {
		groups = append(groups, gi.toDomain())
	}
	return groups
}

// FromGroups builds an export file from stored groups, preserving order.
func FromGroups(groups []*domain.PileGroup) *GroupFile {
	file := &GroupFile{Groups: make([]GroupImport, 0, len(groups))}
	for _, g := range groups {
		paint := g.PaintLength
		file.Groups = append(file.Groups, GroupImport{
			Name:            g.Name,
			PileCount:       g.PileCount,
			OuterDiameterMM: g.OuterDiameter,
			WallThicknessMM: g.WallThickness,
			PileLengthM:     g.PileLength,
			PaintLengthM:    &paint,
		})
	}
	return file
}

func (gi GroupImport) toDomain() domain.PileGroup {
	return domain.PileGroup{
		Name:          gi.Name,
		PileCount:     gi.PileCount,
		OuterDiameter: gi.OuterDiameterMM,
		WallThickness: gi.WallThicknessMM,
		PileLength:    gi.PileLengthM,
		PaintLength:   domain.Float64FromPtrWithDefault(0, gi.PaintLengthM),
	}
}
