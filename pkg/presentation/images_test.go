package presentation

import (
	"io"
	"testing"

	"github.com/MarcelRaschke/lazyrmi/pkg/i18n"
	"github.com/MarcelRaschke/lazyrmi/pkg/planner"
	"github.com/MarcelRaschke/lazyrmi/pkg/utils"
	"github.com/docker/docker/api/types/image"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func testTr() *i18n.TranslationSet {
	log := logrus.New()
	log.Out = io.Discard
	return i18n.NewTranslationSet(log.WithField("test", "test"), i18n.EN)
}

func TestGetImageDisplayStrings(t *testing.T) {
	t.Run("tagged image", func(t *testing.T) {
		row := GetImageDisplayStrings(image.Summary{
			ID:       "sha256:0123456789abcdef",
			RepoTags: []string{"app:latest"},
			Size:     2048,
		})

		assert.Len(t, row, 3)
		assert.Equal(t, "0123456789ab", utils.Decolorise(row[0]))
		assert.Equal(t, "app:latest", utils.Decolorise(row[1]))
		assert.Equal(t, "2.00kiB", row[2])
	})

	t.Run("dangling image", func(t *testing.T) {
		row := GetImageDisplayStrings(image.Summary{
			ID:       "sha256:0123456789abcdef",
			RepoTags: []string{planner.NoneTag},
		})

		assert.Equal(t, "<none>", utils.Decolorise(row[1]))
	})
}

func TestRemovalTable(t *testing.T) {
	output, err := RemovalTable(testTr(), []image.Summary{
		{ID: "sha256:aaa", RepoTags: []string{"app:latest"}, Size: 100},
		{ID: "sha256:bbb", RepoTags: []string{planner.NoneTag}, Size: 200},
	})

	assert.NoError(t, err)
	assert.Contains(t, utils.Decolorise(output), "ID")
	assert.Contains(t, utils.Decolorise(output), "app:latest")
	assert.Contains(t, utils.Decolorise(output), "<none>")
}

func TestTotalSize(t *testing.T) {
	total := TotalSize([]image.Summary{{Size: 100}, {Size: 200}})
	assert.Equal(t, 300, total)
}
