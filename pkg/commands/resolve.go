package commands

import (
	"strings"

	"github.com/MarcelRaschke/lazyrmi/pkg/utils"
	"github.com/go-errors/errors"
	"github.com/samber/lo"
)

// ResolveSelections maps user-supplied references to image IDs within the
// given snapshot. A reference may be a full ID (with or without the digest
// algorithm prefix), a unique ID prefix, a name:tag reference, or a bare name
// with :latest implied. When dangling is set, every dangling image joins the
// selection too.
func (c *DockerCommand) ResolveSelections(images []*Image, refs []string, dangling bool) ([]string, error) {
	selected := []string{}

	for _, ref := range refs {
		id, err := c.resolveReference(images, ref)
		if err != nil {
			return nil, err
		}
		selected = append(selected, id)
	}

	if dangling {
		for _, img := range images {
			if img.IsDangling() {
				selected = append(selected, img.ID)
			}
		}
	}

	return lo.Uniq(selected), nil
}

func (c *DockerCommand) resolveReference(images []*Image, ref string) (string, error) {
	for _, img := range images {
		if img.ID == ref || img.ID == "sha256:"+ref {
			return img.ID, nil
		}
	}

	for _, img := range images {
		if lo.Contains(img.Summary.RepoTags, ref) || lo.Contains(img.Summary.RepoTags, ref+":latest") {
			return img.ID, nil
		}
	}

	matches := lo.Filter(images, func(img *Image, _ int) bool {
		return strings.HasPrefix(strings.TrimPrefix(img.ID, "sha256:"), ref)
	})

	switch len(matches) {
	case 1:
		return matches[0].ID, nil
	case 0:
		return "", errors.New(utils.ResolvePlaceholderString(c.Tr.NoSuchImage, map[string]string{"ref": ref}))
	default:
		return "", errors.New(utils.ResolvePlaceholderString(c.Tr.AmbiguousImageReference, map[string]string{"ref": ref}))
	}
}
