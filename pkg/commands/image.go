package commands

import (
	"context"
	"strings"

	"github.com/MarcelRaschke/lazyrmi/pkg/planner"
	"github.com/docker/docker/api/types/image"
	"github.com/sirupsen/logrus"
)

// Image represents a docker image layer, together with the bits we need to
// display and remove it
type Image struct {
	Name     string
	Tag      string
	ID       string
	ParentID string
	Summary  image.Summary
	Runtime  ImageRuntime
	Log      *logrus.Entry
}

// Remove removes the image
func (i *Image) Remove(ctx context.Context, force bool) error {
	_, err := i.Runtime.RemoveImage(ctx, i.ID, force)
	return err
}

// IsDangling reports whether the image carries no human-assigned tag
func (i *Image) IsDangling() bool {
	return planner.IsDangling(i.Summary)
}

// RefName returns the name:tag form we show the user, or empty for a dangling
// image
func (i *Image) RefName() string {
	if i.Tag == "" {
		return ""
	}
	return i.Name + ":" + i.Tag
}

// splitRepoTag splits a repo tag on the last colon, so that registry hosts
// with ports survive parsing
func splitRepoTag(repoTag string) (name, tag string) {
	nameParts := strings.Split(repoTag, ":")
	if len(nameParts) < 2 {
		return repoTag, ""
	}
	return strings.Join(nameParts[:len(nameParts)-1], ":"), nameParts[len(nameParts)-1]
}
