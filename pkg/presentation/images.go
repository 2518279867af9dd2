package presentation

import (
	"github.com/MarcelRaschke/lazyrmi/pkg/i18n"
	"github.com/MarcelRaschke/lazyrmi/pkg/planner"
	"github.com/MarcelRaschke/lazyrmi/pkg/utils"
	"github.com/docker/docker/api/types/image"
	"github.com/fatih/color"
	"github.com/samber/lo"
)

// GetImageDisplayStrings is one row of the removal table
func GetImageDisplayStrings(img image.Summary) []string {
	return []string{
		utils.ColoredString(utils.ShortID(img.ID), color.FgYellow),
		displayName(img),
		utils.FormatBinaryBytes(int(img.Size)),
	}
}

func displayName(img image.Summary) string {
	if planner.IsDangling(img) {
		return utils.ColoredString("<none>", color.FgBlue)
	}

	firstTag, _ := lo.Find(img.RepoTags, func(repoTag string) bool {
		return repoTag != planner.NoneTag
	})
	return utils.ColoredString(firstTag, color.FgGreen)
}

// RemovalTable renders the ordered batch of deletions as an aligned table
func RemovalTable(tr *i18n.TranslationSet, batch []image.Summary) (string, error) {
	table := [][]string{{tr.ColumnID, tr.ColumnImage, tr.ColumnSize}}

	for _, img := range batch {
		table = append(table, GetImageDisplayStrings(img))
	}

	return utils.RenderTable(table)
}

// TotalSize sums the sizes of the batch for the closing summary
func TotalSize(batch []image.Summary) int {
	return lo.SumBy(batch, func(img image.Summary) int {
		return int(img.Size)
	})
}
