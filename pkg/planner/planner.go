package planner

import (
	"errors"
	"sort"

	"github.com/docker/docker/api/types/image"
	"github.com/samber/lo"
)

// ErrMalformedSnapshot is returned when the image listing contains a parent
// chain that loops back on itself, which should be impossible for a healthy
// engine but must not send us into infinite recursion.
var ErrMalformedSnapshot = errors.New("image listing contains a cyclic parent chain")

// PlanDeletionOrder returns the full set of images that removing the selected
// ones implies, ordered so that each entry can be deleted before any entry
// that depends on it. The selection is closed downward: every descendant of a
// selected image is part of the plan. The returned sequence is sorted deepest
// layer first and filtered down to the images a delete request should
// actually be issued for: leaves, plus any tagged image. Untagged images that
// still have children are left out because deleting their children removes
// them implicitly.
//
// The ordering is a correctness requirement for the caller: a parent layer
// must not be removed while a child still depends on it, so deletions have to
// be issued one at a time in the returned order.
func PlanDeletionOrder(selectedIDs []string, images []image.Summary) ([]image.Summary, error) {
	forest := NewForest(images)

	depths := forest.Depths()
	for _, img := range images {
		if _, ok := depths[img.ID]; !ok {
			return nil, ErrMalformedSnapshot
		}
	}

	// the mark is propagated strictly downward and is never cleared: once an
	// ancestor is selected, the whole subtree goes
	marked := make(map[string]bool, len(images))
	var markSubtree func(id string)
	markSubtree = func(id string) {
		if marked[id] {
			return
		}
		marked[id] = true
		for _, child := range forest.Children(id) {
			markSubtree(child.ID)
		}
	}
	for _, id := range selectedIDs {
		if _, ok := forest.Lookup(id); ok {
			markSubtree(id)
		}
	}

	ordered := make([]image.Summary, len(images))
	copy(ordered, images)
	// stable so that equal-depth images keep their listing order; only the
	// order across depths matters for correctness
	sort.SliceStable(ordered, func(i, j int) bool {
		return depths[ordered[i].ID] > depths[ordered[j].ID]
	})

	return lo.Filter(ordered, func(img image.Summary, _ int) bool {
		if !marked[img.ID] {
			return false
		}
		return len(forest.Children(img.ID)) == 0 || !IsDangling(img)
	}), nil
}
