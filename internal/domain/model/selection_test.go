package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSelection_Toggle tests first-time selection and deselection.
func TestSelection_Toggle(t *testing.T) {
	s := NewSelection()

	s.Toggle(1, 10)
	assert.Equal(t, int64(1), s.Quantity(1, 10))
	assert.True(t, s.HasAnySelection())

	// Toggling the same pair removes the pick entirely, regardless of quantity.
	s.Increment(1, 10)
	s.Toggle(1, 10)
	assert.Equal(t, int64(0), s.Quantity(1, 10))
	assert.False(t, s.HasAnySelection())
	assert.Nil(t, s.Picks(1))
}

// TestSelection_IncrementDecrement tests quantity adjustments on existing picks.
func TestSelection_IncrementDecrement(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*Selection)
		expected int64
	}{
		{
			name: "increment raises quantity",
			setup: func(s *Selection) {
				s.Toggle(2, 20)
				s.Increment(2, 20)
			},
			expected: 2,
		},
		{
			name: "increment on missing pick is a no-op",
			setup: func(s *Selection) {
				s.Increment(2, 20)
			},
			expected: 0,
		},
		{
			name: "decrement lowers quantity",
			setup: func(s *Selection) {
				s.Toggle(2, 20)
				s.Increment(2, 20)
				s.Increment(2, 20)
				s.Decrement(2, 20)
			},
			expected: 2,
		},
		{
			name: "decrement at quantity 1 removes the pick",
			setup: func(s *Selection) {
				s.Toggle(2, 20)
				s.Decrement(2, 20)
			},
			expected: 0,
		},
		{
			name: "decrement on missing pick is a no-op",
			setup: func(s *Selection) {
				s.Decrement(2, 20)
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelection()
			tt.setup(s)
			assert.Equal(t, tt.expected, s.Quantity(2, 20))
		})
	}
}

// TestSelection_Invariants verifies that arbitrary operation sequences
// never produce a non-positive quantity or an empty step entry.
func TestSelection_Invariants(t *testing.T) {
	type op struct {
		kind     string
		stepID   int64
		optionID int64
	}

	sequences := [][]op{
		{{"toggle", 1, 10}, {"toggle", 1, 10}, {"toggle", 1, 10}},
		{{"toggle", 1, 10}, {"dec", 1, 10}, {"dec", 1, 10}},
		{{"inc", 1, 10}, {"dec", 1, 10}, {"toggle", 1, 10}, {"inc", 1, 10}, {"dec", 1, 10}, {"dec", 1, 10}},
		{{"toggle", 1, 10}, {"toggle", 1, 11}, {"toggle", 2, 20}, {"dec", 1, 10}, {"dec", 1, 11}, {"dec", 2, 20}},
		{{"toggle", 3, 30}, {"inc", 3, 30}, {"inc", 3, 30}, {"toggle", 3, 31}, {"dec", 3, 31}},
	}

	for _, seq := range sequences {
		s := NewSelection()
		for _, o := range seq {
			switch o.kind {
			case "toggle":
				s.Toggle(o.stepID, o.optionID)
			case "inc":
				s.Increment(o.stepID, o.optionID)
			case "dec":
				s.Decrement(o.stepID, o.optionID)
			}

			for _, stepID := range s.StepIDs() {
				picks := s.Picks(stepID)
				assert.NotEmpty(t, picks, "step entry with empty pick list retained")
				seen := make(map[int64]bool)
				for _, p := range picks {
					assert.Greater(t, p.Quantity, int64(0), "pick stored with non-positive quantity")
					assert.False(t, seen[p.OptionID], "duplicate option within one step")
					seen[p.OptionID] = true
				}
			}
		}
	}
}

// TestSelection_Add tests duplicate merging used by the wire adapter.
func TestSelection_Add(t *testing.T) {
	s := NewSelection()

	s.Add(1, 10, 2)
	s.Add(1, 10, 3)
	assert.Equal(t, int64(5), s.Quantity(1, 10))
	assert.Len(t, s.Picks(1), 1)

	// Non-positive quantities never enter the store.
	s.Add(1, 11, 0)
	s.Add(1, 12, -4)
	assert.Equal(t, int64(0), s.Quantity(1, 11))
	assert.Equal(t, int64(0), s.Quantity(1, 12))
}

// TestSelection_StepEmptiness verifies that emptying one step during
// composition is legal; only submission is gated on HasAnySelection.
func TestSelection_StepEmptiness(t *testing.T) {
	s := NewSelection()
	s.Toggle(1, 10)
	s.Toggle(2, 20)

	s.Toggle(1, 10)
	assert.Nil(t, s.Picks(1))
	assert.True(t, s.HasAnySelection(), "other steps keep the composition submittable")

	s.Toggle(2, 20)
	assert.False(t, s.HasAnySelection())
}

func TestSelection_TotalPicks(t *testing.T) {
	s := NewSelection()
	assert.Equal(t, 0, s.TotalPicks())

	s.Toggle(1, 10)
	s.Toggle(1, 11)
	s.Toggle(2, 20)
	assert.Equal(t, 3, s.TotalPicks())
	assert.Equal(t, []int64{1, 2}, s.StepIDs())
}
