package service

import (
	"time"

	"github.com/tanphat1102/kitchen-chicken-sub000/internal/domain/model"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/metrics"
)

// Aggregator defines the interface for deriving totals and per-step
// summaries from a selection.
type Aggregator interface {
	ComputeTotals(sel *model.Selection, idx *CatalogIndex) model.Totals
	StepSummaries(sel *model.Selection, idx *CatalogIndex) []model.StepSummary
}

// TotalsAggregator implements Aggregator with a single O(total picks)
// fold over the selection. Totals are recomputed on every call; selection
// sets in this domain are small, bounded by step count times options per
// step, so no incremental variant is kept.
type TotalsAggregator struct{}

// NewTotalsAggregator creates a new TotalsAggregator.
func NewTotalsAggregator() *TotalsAggregator {
	return &TotalsAggregator{}
}

// ComputeTotals resolves every pick through the catalog index and
// accumulates price and calories. The fold is total over malformed data:
// an unresolvable pick contributes zero, negative amounts are clamped,
// and the result is never negative.
func (a *TotalsAggregator) ComputeTotals(sel *model.Selection, idx *CatalogIndex) model.Totals {
	start := time.Now()

	var totals model.Totals
	if sel == nil || idx == nil {
		return totals
	}

	for _, stepID := range sel.StepIDs() {
		for _, pick := range sel.Picks(stepID) {
			opt, ok := idx.ResolveOption(stepID, pick.OptionID)
			if !ok {
				continue
			}
			totals.Add(opt.Price, opt.Cal, pick.Quantity)
		}
	}

	metrics.RecordTotalsComputation(time.Since(start))
	return totals
}

// StepSummaries builds per-step display summaries for order review
// screens, following catalog step order. Steps without picks produce no
// summary; picks whose option cannot be resolved are listed with a zero
// price so the customer still sees what was saved.
func (a *TotalsAggregator) StepSummaries(sel *model.Selection, idx *CatalogIndex) []model.StepSummary {
	if sel == nil || idx == nil {
		return nil
	}

	summaries := make([]model.StepSummary, 0, len(sel.StepIDs()))
	covered := make(map[int64]bool)

	appendStep := func(stepID int64, stepName string) {
		picks := sel.Picks(stepID)
		if len(picks) == 0 {
			return
		}
		summary := model.StepSummary{StepID: stepID, StepName: stepName}
		for _, pick := range picks {
			item := model.StepSummaryItem{OptionID: pick.OptionID, Quantity: pick.Quantity}
			if opt, ok := idx.ResolveOption(stepID, pick.OptionID); ok {
				item.Name = opt.Name
				if opt.Price > 0 {
					item.Price = opt.Price
				}
			}
			if pick.Quantity > 0 {
				summary.Subtotal += item.Price * pick.Quantity
			}
			summary.Items = append(summary.Items, item)
		}
		summaries = append(summaries, summary)
		covered[stepID] = true
	}

	for _, step := range idx.StepsOrdered() {
		appendStep(step.ID, step.Name)
	}
	// Picks referencing steps the catalog no longer declares still show up.
	for _, stepID := range sel.StepIDs() {
		if !covered[stepID] {
			appendStep(stepID, "")
		}
	}

	return summaries
}
