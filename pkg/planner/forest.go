package planner

import (
	"github.com/docker/docker/api/types/image"
	"github.com/samber/lo"
)

// NoneTag is the sentinel the docker API puts in a tag slot that has no
// human-assigned tag.
const NoneTag = "<none>:<none>"

// IsDangling reports whether an image carries no human-assigned tag. An image
// with an empty tag list counts as dangling: a vacuous "every tag is the
// sentinel" is still true.
func IsDangling(img image.Summary) bool {
	return lo.EveryBy(img.RepoTags, func(tag string) bool {
		return tag == NoneTag
	})
}

// Forest indexes one flat snapshot of the image listing by parent ID, so that
// an image's immediate children can be found without rescanning the listing.
// The snapshot is never mutated; a Forest is only valid for the snapshot it
// was built from.
type Forest struct {
	images   []image.Summary
	byID     map[string]image.Summary
	children map[string][]image.Summary
}

// NewForest builds the parent->children index for a snapshot.
func NewForest(images []image.Summary) *Forest {
	f := &Forest{
		images:   images,
		byID:     make(map[string]image.Summary, len(images)),
		children: make(map[string][]image.Summary, len(images)),
	}

	for _, img := range images {
		f.byID[img.ID] = img
	}

	for _, img := range images {
		if img.ParentID == "" {
			continue
		}
		f.children[img.ParentID] = append(f.children[img.ParentID], img)
	}

	return f
}

// Lookup returns the image with the given ID, if the snapshot contains it.
func (f *Forest) Lookup(id string) (image.Summary, bool) {
	img, ok := f.byID[id]
	return img, ok
}

// Children returns the immediate children of the given image, in listing order.
func (f *Forest) Children(id string) []image.Summary {
	return f.children[id]
}

// Roots returns every image whose parent cannot be resolved within the
// snapshot. An image whose ParentID names an unknown image is treated as a
// root rather than an error: the listing is not assumed to be referentially
// complete.
func (f *Forest) Roots() []image.Summary {
	return lo.Filter(f.images, func(img image.Summary, _ int) bool {
		if img.ParentID == "" {
			return true
		}
		_, known := f.byID[img.ParentID]
		return !known
	})
}

// Depths returns each image's distance from its root, walking down from every
// root. An image that is unreachable from any root (which can only happen if
// the listing contains a cyclic parent chain) is absent from the result.
func (f *Forest) Depths() map[string]int {
	depths := make(map[string]int, len(f.images))

	var visit func(img image.Summary, depth int)
	visit = func(img image.Summary, depth int) {
		if _, seen := depths[img.ID]; seen {
			return
		}
		depths[img.ID] = depth
		for _, child := range f.Children(img.ID) {
			visit(child, depth+1)
		}
	}

	for _, root := range f.Roots() {
		visit(root, 0)
	}

	return depths
}
