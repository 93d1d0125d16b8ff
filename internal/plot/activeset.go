package plot

import (
	"slices"

	"github.com/wandb/leetplot/internal/observability/errs"
)

// ErrStaleGeneration is returned when an item from an older render pass is
// used to change the active set.
var ErrStaleGeneration = errs.Newf("plot: item belongs to a stale generation")

// SelectionState is derived from the number of active items.
type SelectionState int

const (
	StateEmpty SelectionState = iota
	StateSingle
	StateMultiple
)

func (s SelectionState) String() string {
	switch s {
	case StateSingle:
		return "single"
	case StateMultiple:
		return "multiple"
	default:
		return "empty"
	}
}

// ActiveSet is the ordered set of active (selected) items of one chart.
//
// All items in the set belong to one generation. Observing a newer
// generation through Sync clears the set.
type ActiveSet struct {
	generation uint64
	items      []PlottedItem
}

// Sync moves the set to generation gen, clearing it if gen is new.
// It reports whether the set was cleared.
func (s *ActiveSet) Sync(gen uint64) bool {
	if gen == s.generation {
		return false
	}
	s.generation = gen
	cleared := len(s.items) > 0
	s.items = nil
	return cleared
}

func (s *ActiveSet) Generation() uint64 { return s.generation }

func (s *ActiveSet) check(items ...PlottedItem) error {
	for _, item := range items {
		if item.Generation != s.generation {
			return ErrStaleGeneration
		}
	}
	return nil
}

// Add appends item. Adding an index twice is not deduplicated.
func (s *ActiveSet) Add(item PlottedItem) error {
	if err := s.check(item); err != nil {
		return err
	}
	s.items = append(s.items, item)
	return nil
}

// Remove drops all items with the given index.
func (s *ActiveSet) Remove(index int) {
	s.items = slices.DeleteFunc(s.items, func(item PlottedItem) bool {
		return item.Index == index
	})
}

// Replace swaps the whole set for items.
func (s *ActiveSet) Replace(items []PlottedItem) error {
	if err := s.check(items...); err != nil {
		return err
	}
	s.items = slices.Clone(items)
	return nil
}

// Clear empties the set.
func (s *ActiveSet) Clear() {
	s.items = nil
}

// SelectAll replaces the set with every item of set, syncing to its
// generation first. A set older than the current generation is refused.
func (s *ActiveSet) SelectAll(set ItemSet) error {
	if set.Generation < s.generation {
		return ErrStaleGeneration
	}
	s.Sync(set.Generation)
	s.items = slices.Clone(set.Items)
	return nil
}

// Click applies the click semantics for item.
//
// With toggle (ctrl held) the item's membership is flipped. Otherwise the
// set collapses to just the item, or to nothing if the item was the only
// active one.
func (s *ActiveSet) Click(item PlottedItem, toggle bool) error {
	if err := s.check(item); err != nil {
		return err
	}

	active := s.Contains(item.Index)
	switch {
	case toggle && active:
		s.Remove(item.Index)
	case toggle:
		s.items = append(s.items, item)
	case len(s.items) > 1:
		s.items = []PlottedItem{item}
	case active:
		s.items = nil
	default:
		s.items = []PlottedItem{item}
	}
	return nil
}

// Contains reports whether an item with the given index is active.
func (s *ActiveSet) Contains(index int) bool {
	return slices.ContainsFunc(s.items, func(item PlottedItem) bool {
		return item.Index == index
	})
}

// Items returns a copy of the active items in activation order.
func (s *ActiveSet) Items() []PlottedItem { return slices.Clone(s.items) }

func (s *ActiveSet) Len() int { return len(s.items) }

func (s *ActiveSet) State() SelectionState {
	switch len(s.items) {
	case 0:
		return StateEmpty
	case 1:
		return StateSingle
	default:
		return StateMultiple
	}
}

// Indices returns the indices of the active items in activation order.
func (s *ActiveSet) Indices() []int {
	indices := make([]int, len(s.items))
	for i, item := range s.items {
		indices[i] = item.Index
	}
	return indices
}
