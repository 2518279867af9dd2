package commands

import (
	"context"

	"github.com/docker/docker/api/types/image"
)

// ImageRuntime abstracts the engine operations this tool needs, so that tests
// can substitute a mock without a running daemon.
type ImageRuntime interface {
	// ListImages returns a full, flat, unfiltered listing of every image
	// layer known to the engine, including intermediate and dangling layers.
	ListImages(ctx context.Context) ([]image.Summary, error)

	// RemoveImage removes a single image by ID. It must never prune the
	// image's children itself: ordering deletions is the planner's job.
	RemoveImage(ctx context.Context, id string, force bool) ([]image.DeleteResponse, error)

	// Close releases the underlying client resources.
	Close() error
}
