package planner

import (
	"github.com/docker/docker/api/types/image"
)

// CollectDeletableDescendants returns the descendants of the subject image
// that have to be removed before the subject itself can be: a fully untagged
// subtree contributes its deepest dangling leaves, and any tagged descendant
// is included directly because it blocks deletion of the layers beneath it.
// The subject is only part of the result when it is itself a dangling leaf.
// An unknown subject yields an empty result, since the image may already be
// gone by the time we look.
//
// Results come out deepest-first within each branch, but are not ordered by
// depth across branches. Use PlanDeletionOrder when strict ordering matters.
func CollectDeletableDescendants(subjectID string, images []image.Summary) []image.Summary {
	forest := NewForest(images)

	subject, ok := forest.Lookup(subjectID)
	if !ok {
		return nil
	}

	visited := make(map[string]bool, len(images))
	return collectDeletable(forest, subject, visited)
}

func collectDeletable(forest *Forest, subject image.Summary, visited map[string]bool) []image.Summary {
	// a corrupted listing could make the parent chain loop back on itself;
	// refusing to revisit a node keeps the recursion finite
	if visited[subject.ID] {
		return nil
	}
	visited[subject.ID] = true

	children := forest.Children(subject.ID)
	if len(children) == 0 && IsDangling(subject) {
		return []image.Summary{subject}
	}

	result := []image.Summary{}
	for _, child := range children {
		result = append(result, collectDeletable(forest, child, visited)...)
		if !IsDangling(child) {
			result = append(result, child)
		}
	}

	return result
}
