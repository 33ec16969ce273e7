package wizard

import (
	"fmt"
	"strconv"
	"strings"
)

// Category identifies which preparation field a session remark points at.
// The wire values match the legacy "<category>:<index>" encoded keys.
type Category string

const (
	CategoryCollabFeeling     Category = "collab_ressenti"
	CategoryCollabEvaluation  Category = "collab_evaluation"
	CategoryCollabObjective   Category = "collab_objectif"
	CategoryCollabTraining    Category = "collab_formation"
	CategoryCollabCompetency  Category = "collab_competence"
	CategoryManagerSynthesis  Category = "manager_synthese"
	CategoryManagerEvaluation Category = "manager_evaluation"
	CategoryManagerStrength   Category = "manager_point_fort"
	CategoryManagerAxis       Category = "manager_axe"
	CategoryManagerTraining   Category = "manager_formation"
	CategoryManagerNotes      Category = "manager_notes"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryCollabFeeling, CategoryCollabEvaluation, CategoryCollabObjective,
		CategoryCollabTraining, CategoryCollabCompetency, CategoryManagerSynthesis,
		CategoryManagerEvaluation, CategoryManagerStrength, CategoryManagerAxis,
		CategoryManagerTraining, CategoryManagerNotes:
		return true
	}
	return false
}

// FieldKey is the typed form of the encoded remark key. Index addresses an
// entry of the preparation array the category refers to; categories pointing
// at a single free-text field carry index 0.
type FieldKey struct {
	Category Category
	Index    int
}

func NewFieldKey(category Category, index int) FieldKey {
	return FieldKey{Category: category, Index: index}
}

func (k FieldKey) String() string {
	return fmt.Sprintf("%s:%d", k.Category, k.Index)
}

// ParseFieldKey decodes "<category>:<index>". Unknown categories and
// malformed keys return an error; callers rendering remarks fall back to the
// raw key in that case rather than dropping the remark.
func ParseFieldKey(raw string) (FieldKey, error) {
	category, indexStr, found := strings.Cut(raw, ":")
	if !found {
		return FieldKey{}, fmt.Errorf("field key %q: missing separator", raw)
	}
	if !Category(category).IsValid() {
		return FieldKey{}, fmt.Errorf("field key %q: unknown category", raw)
	}
	index, err := strconv.Atoi(indexStr)
	if err != nil || index < 0 {
		return FieldKey{}, fmt.Errorf("field key %q: bad index", raw)
	}
	return FieldKey{Category: Category(category), Index: index}, nil
}
