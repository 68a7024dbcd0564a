// Package service contains the business logic for the composition service.
package service

import (
	"sort"

	"github.com/tanphat1102/kitchen-chicken-sub000/internal/domain/model"
)

// CatalogIndex indexes the customization catalog so options can be
// resolved by identity without the caller knowing which category declared
// them. The index is immutable after construction and safe for
// concurrent reads.
type CatalogIndex struct {
	steps         []model.Step
	optionsByStep map[int64]map[int64]model.Option
	stepByID      map[int64]model.Step
}

// NewCatalogIndex builds an index from the catalog's ordered steps and
// the option lists keyed by category. Each step sees only the options of
// its own category; cross-category duplicates are not assumed.
func NewCatalogIndex(steps []model.Step, optionsByCategory map[int64][]model.Option) *CatalogIndex {
	ordered := make([]model.Step, len(steps))
	copy(ordered, steps)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StepNumber < ordered[j].StepNumber
	})

	idx := &CatalogIndex{
		steps:         ordered,
		optionsByStep: make(map[int64]map[int64]model.Option, len(ordered)),
		stepByID:      make(map[int64]model.Step, len(ordered)),
	}

	for _, step := range ordered {
		idx.stepByID[step.ID] = step
		byID := make(map[int64]model.Option)
		for _, opt := range optionsByCategory[step.CategoryID] {
			byID[opt.ID] = opt
		}
		idx.optionsByStep[step.ID] = byID
	}

	return idx
}

// groupOptionsByCategory buckets a flat option list by category id, the
// shape NewCatalogIndex consumes.
func groupOptionsByCategory(options []model.Option) map[int64][]model.Option {
	grouped := make(map[int64][]model.Option)
	for _, opt := range options {
		grouped[opt.CategoryID] = append(grouped[opt.CategoryID], opt)
	}
	return grouped
}

// ResolveOption looks up an option within the option set bound to the
// given step's category. A miss reports ok=false and must never abort
// the caller: a pick referencing a retired option simply contributes
// zero to totals.
func (x *CatalogIndex) ResolveOption(stepID, optionID int64) (model.Option, bool) {
	byID, ok := x.optionsByStep[stepID]
	if !ok {
		return model.Option{}, false
	}
	opt, ok := byID[optionID]
	return opt, ok
}

// StepsOrdered returns the steps sorted ascending by ordinal. This
// ordering is authoritative for wizard sequencing.
func (x *CatalogIndex) StepsOrdered() []model.Step {
	out := make([]model.Step, len(x.steps))
	copy(out, x.steps)
	return out
}

// Step returns the step with the given id.
func (x *CatalogIndex) Step(stepID int64) (model.Step, bool) {
	s, ok := x.stepByID[stepID]
	return s, ok
}

// ActiveOptions returns the options of the step's category that may be
// offered for new picks, in stable id order. Inactive options are
// excluded here but still resolve through ResolveOption for previously
// saved compositions.
func (x *CatalogIndex) ActiveOptions(stepID int64) []model.Option {
	byID, ok := x.optionsByStep[stepID]
	if !ok {
		return nil
	}
	out := make([]model.Option, 0, len(byID))
	for _, opt := range byID {
		if opt.IsActive {
			out = append(out, opt)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
