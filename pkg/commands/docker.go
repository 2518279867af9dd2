package commands

import (
	"context"
	"strings"

	"github.com/MarcelRaschke/lazyrmi/pkg/config"
	"github.com/MarcelRaschke/lazyrmi/pkg/i18n"
	"github.com/MarcelRaschke/lazyrmi/pkg/planner"
	"github.com/docker/docker/api/types/image"
	"github.com/samber/lo"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
)

// DockerCommand is our main docker interface
type DockerCommand struct {
	Log     *logrus.Entry
	Tr      *i18n.TranslationSet
	Config  *config.AppConfig
	Runtime ImageRuntime

	ImageMutex deadlock.Mutex
	Images     []*Image
}

// NewDockerCommand it runs docker commands
func NewDockerCommand(log *logrus.Entry, tr *i18n.TranslationSet, config *config.AppConfig) (*DockerCommand, error) {
	runtime, err := NewDockerRuntime()
	if err != nil {
		return nil, err
	}

	return NewDockerCommandWithRuntime(log, tr, config, runtime), nil
}

// NewDockerCommandWithRuntime lets tests inject their own runtime
func NewDockerCommandWithRuntime(log *logrus.Entry, tr *i18n.TranslationSet, config *config.AppConfig, runtime ImageRuntime) *DockerCommand {
	return &DockerCommand{
		Log:     log,
		Tr:      tr,
		Config:  config,
		Runtime: runtime,
	}
}

// Close closes the runtime
func (c *DockerCommand) Close() error {
	return c.Runtime.Close()
}

// RefreshImages takes a fresh snapshot of every image layer the engine knows
// about, intermediate layers included, and caches it
func (c *DockerCommand) RefreshImages(ctx context.Context) ([]*Image, error) {
	summaries, err := c.Runtime.ListImages(ctx)
	if err != nil {
		return nil, err
	}

	ownImages := make([]*Image, len(summaries))

	for i, img := range summaries {
		name := "none"
		tag := ""

		firstTag, ok := lo.Find(img.RepoTags, func(repoTag string) bool {
			return repoTag != planner.NoneTag
		})
		if ok {
			name, tag = splitRepoTag(firstTag)

			for prefix, replacement := range c.Config.UserConfig.Replacements.ImageNamePrefixes {
				if strings.HasPrefix(name, prefix) {
					name = strings.Replace(name, prefix, replacement, 1)
					break
				}
			}
		}

		ownImages[i] = &Image{
			ID:       img.ID,
			ParentID: img.ParentID,
			Name:     name,
			Tag:      tag,
			Summary:  img,
			Runtime:  c.Runtime,
			Log:      c.Log,
		}
	}

	c.ImageMutex.Lock()
	c.Images = ownImages
	c.ImageMutex.Unlock()

	return ownImages, nil
}

// Snapshot returns the summaries behind the given images, the shape the
// planner consumes
func Snapshot(images []*Image) []image.Summary {
	return lo.Map(images, func(img *Image, _ int) image.Summary {
		return img.Summary
	})
}
