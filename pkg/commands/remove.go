package commands

import (
	"context"

	"github.com/MarcelRaschke/lazyrmi/pkg/planner"
	"github.com/MarcelRaschke/lazyrmi/pkg/utils"
	"github.com/docker/docker/api/types/image"
	"github.com/samber/lo"
)

// PlanRemoval computes the ordered batch of deletions that removing the
// selected images implies: every descendant of a selected image goes too,
// deepest layers first
func (c *DockerCommand) PlanRemoval(images []*Image, selectedIDs []string) ([]image.Summary, error) {
	plan, err := planner.PlanDeletionOrder(selectedIDs, Snapshot(images))
	if err != nil {
		return nil, WrapError(err)
	}
	return plan, nil
}

// CollectSubjectRemoval computes the deletions for a single subject image:
// the descendants that block it, in post-order, then the subject itself. A
// subject missing from the snapshot yields an empty batch, since it may
// already be gone
func (c *DockerCommand) CollectSubjectRemoval(images []*Image, subjectID string) []image.Summary {
	snapshot := Snapshot(images)
	batch := planner.CollectDeletableDescendants(subjectID, snapshot)

	subject, ok := lo.Find(snapshot, func(img image.Summary) bool {
		return img.ID == subjectID
	})
	if !ok {
		return batch
	}

	alreadyIncluded := lo.ContainsBy(batch, func(img image.Summary) bool {
		return img.ID == subjectID
	})
	if !alreadyIncluded {
		batch = append(batch, subject)
	}

	return batch
}

// ExecutePlan issues a delete request for every entry of the batch, strictly
// one at a time and in order. Sequential issuance is a correctness
// requirement, not a performance choice: the engine refuses to remove a layer
// that still has dependents, and the batch is ordered so each entry's
// dependents come before it.
//
// An entry the engine no longer knows about is skipped: removing a child can
// remove its parent as a side effect. Any other failure stops the batch; in
// particular a dependency conflict means the snapshot went stale mid-batch
// and carrying on would just produce more of them.
func (c *DockerCommand) ExecutePlan(ctx context.Context, batch []image.Summary, onRemoved func(image.Summary)) ([]image.Summary, error) {
	force := !c.Config.UserConfig.SkipForceRemove

	removed := make([]image.Summary, 0, len(batch))
	for _, img := range batch {
		c.Log.WithField("image", utils.ShortID(img.ID)).Info("removing image")

		if _, err := c.Runtime.RemoveImage(ctx, img.ID, force); err != nil {
			if IsImageNotFound(err) {
				c.Log.WithField("image", utils.ShortID(img.ID)).Debug("image already removed, skipping")
				continue
			}
			if IsImageInUse(err) {
				message := utils.ResolvePlaceholderString(c.Tr.ImageStillInUse, map[string]string{
					"image": utils.ShortID(img.ID),
				})
				return removed, NewComplexError(ImageStillInUse, message+": "+err.Error())
			}
			return removed, WrapError(err)
		}

		removed = append(removed, img)
		if onRemoved != nil {
			onRemoved(img)
		}
	}

	return removed, nil
}
