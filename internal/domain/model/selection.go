package model

import "sort"

// Pick is a chosen option plus a positive quantity.
// A pick with quantity <= 0 is never stored; removal is the
// representation of "not selected".
type Pick struct {
	OptionID int64 `json:"optionId"`
	Quantity int64 `json:"quantity"`
}

// Selection is the canonical in-memory selection state for one dish
// composition: a mapping from step identity to the picks made in that
// step. Keys exist only for steps with at least one pick, and within one
// step's pick list each option appears at most once.
//
// Selection is not safe for concurrent use; each dish composition owns
// exactly one Selection and mutates it from a single goroutine.
type Selection struct {
	picks map[int64][]Pick
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{picks: make(map[int64][]Pick)}
}

// Toggle inserts a pick with quantity 1 for (stepID, optionID) when no
// pick exists for the pair, and removes the pick entirely when one does.
// This is the sole entry point for first-time selection and deselection.
func (s *Selection) Toggle(stepID, optionID int64) {
	list := s.picks[stepID]
	for i, p := range list {
		if p.OptionID == optionID {
			s.removeAt(stepID, list, i)
			return
		}
	}
	s.picks[stepID] = append(list, Pick{OptionID: optionID, Quantity: 1})
}

// Increment raises the quantity of an existing pick by one. Incrementing
// a pick that does not exist is a no-op.
func (s *Selection) Increment(stepID, optionID int64) {
	list := s.picks[stepID]
	for i := range list {
		if list[i].OptionID == optionID {
			list[i].Quantity++
			return
		}
	}
}

// Decrement lowers the quantity of an existing pick by one, removing the
// pick when the quantity would drop to zero. Decrementing a pick that
// does not exist is a no-op.
func (s *Selection) Decrement(stepID, optionID int64) {
	list := s.picks[stepID]
	for i := range list {
		if list[i].OptionID == optionID {
			if list[i].Quantity <= 1 {
				s.removeAt(stepID, list, i)
			} else {
				list[i].Quantity--
			}
			return
		}
	}
}

// Add merges quantity units of an option into the selection, creating
// the pick when absent. Used by the wire adapter, where a flat payload
// may carry the same option more than once and duplicates must collapse
// into a single pick. Non-positive quantities are ignored.
func (s *Selection) Add(stepID, optionID, quantity int64) {
	if quantity <= 0 {
		return
	}
	list := s.picks[stepID]
	for i := range list {
		if list[i].OptionID == optionID {
			list[i].Quantity += quantity
			return
		}
	}
	s.picks[stepID] = append(list, Pick{OptionID: optionID, Quantity: quantity})
}

// SetQuantity sets the quantity of (stepID, optionID) to an exact value,
// inserting the pick when absent. A non-positive quantity removes the
// pick. Used by the cart mutation engine, which receives absolute
// quantities rather than deltas.
func (s *Selection) SetQuantity(stepID, optionID, quantity int64) {
	list := s.picks[stepID]
	for i := range list {
		if list[i].OptionID == optionID {
			if quantity <= 0 {
				s.removeAt(stepID, list, i)
			} else {
				list[i].Quantity = quantity
			}
			return
		}
	}
	if quantity > 0 {
		s.picks[stepID] = append(list, Pick{OptionID: optionID, Quantity: quantity})
	}
}

// removeAt deletes list[i], dropping the step entry when the list empties.
func (s *Selection) removeAt(stepID int64, list []Pick, i int) {
	list = append(list[:i], list[i+1:]...)
	if len(list) == 0 {
		delete(s.picks, stepID)
	} else {
		s.picks[stepID] = list
	}
}

// HasAnySelection reports whether at least one step holds a pick.
// It gates submission of a new composition.
func (s *Selection) HasAnySelection() bool {
	return len(s.picks) > 0
}

// Picks returns a copy of the pick list for the given step, or nil when
// the step has no picks.
func (s *Selection) Picks(stepID int64) []Pick {
	list := s.picks[stepID]
	if len(list) == 0 {
		return nil
	}
	out := make([]Pick, len(list))
	copy(out, list)
	return out
}

// Quantity returns the quantity picked for (stepID, optionID), zero when
// the pick does not exist.
func (s *Selection) Quantity(stepID, optionID int64) int64 {
	for _, p := range s.picks[stepID] {
		if p.OptionID == optionID {
			return p.Quantity
		}
	}
	return 0
}

// StepIDs returns the ids of all steps holding picks, sorted ascending.
func (s *Selection) StepIDs() []int64 {
	ids := make([]int64, 0, len(s.picks))
	for id := range s.picks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// TotalPicks returns the number of distinct picks across all steps.
func (s *Selection) TotalPicks() int {
	n := 0
	for _, list := range s.picks {
		n += len(list)
	}
	return n
}
