package regform

import (
	"regexp"
	"sort"

	"github.com/google/uuid"
)

// ValidateFieldSet runs the save-time schema checks: unique ids, known
// types and operators, option lists on select kinds, compilable
// patterns, and no conditional pointing at a field that does not
// exist. The returned map is field id -> reason, empty when the set is
// valid.
func ValidateFieldSet(fields []FormField) map[string]string {
	problems := make(map[string]string)

	ids := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.ID == "" {
			problems[f.Label] = "field id must not be empty"
			continue
		}
		if ids[f.ID] {
			problems[f.ID] = "duplicate field id"
			continue
		}
		ids[f.ID] = true
	}

	for _, f := range fields {
		if _, seen := problems[f.ID]; seen {
			continue
		}
		switch {
		case !f.Type.Valid():
			problems[f.ID] = "unknown field type"
		case f.Type.HasOptions() && len(f.Options) == 0:
			problems[f.ID] = "select fields need at least one option"
		case f.Conditional != nil && !f.Conditional.Operator.Valid():
			problems[f.ID] = "unknown conditional operator"
		case f.Conditional != nil && !ids[f.Conditional.DependsOn]:
			problems[f.ID] = "conditional references a non-existent field"
		case f.Conditional != nil && f.Conditional.DependsOn == f.ID:
			problems[f.ID] = "conditional must not reference the field itself"
		case f.Rules != nil && f.Rules.Pattern != "":
			if _, err := regexp.Compile(f.Rules.Pattern); err != nil {
				problems[f.ID] = "invalid validation pattern"
			}
		}
	}

	return problems
}

// NormalizeOrder sorts the fields by their declared order and
// renumbers them contiguously from 1, so saved configs always carry
// unique, gap-free order values.
func NormalizeOrder(fields []FormField) []FormField {
	sorted := make([]FormField, len(fields))
	copy(sorted, fields)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	for i := range sorted {
		sorted[i].Order = i + 1
	}
	return sorted
}

// RegenerateIDs gives every field a fresh id and remaps conditional
// references accordingly. Used when duplicating a config to another
// event so field ids never alias across events.
func RegenerateIDs(fields []FormField) []FormField {
	mapping := make(map[string]string, len(fields))
	out := make([]FormField, len(fields))
	copy(out, fields)

	for i := range out {
		fresh := uuid.NewString()
		mapping[out[i].ID] = fresh
		out[i].ID = fresh
	}
	for i := range out {
		if out[i].Conditional != nil {
			cond := *out[i].Conditional
			if remapped, ok := mapping[cond.DependsOn]; ok {
				cond.DependsOn = remapped
			}
			out[i].Conditional = &cond
		}
	}
	return out
}
