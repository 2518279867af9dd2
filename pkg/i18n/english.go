package i18n

func englishSet() TranslationSet {
	return TranslationSet{
		ErrorOccurred:                 "An error occurred! Please create an issue at https://github.com/MarcelRaschke/lazyrmi/issues",
		ConnectionFailed:              "connection to docker client failed. You may need to restart the docker client",
		CannotAccessDockerSocketError: "Can't access docker socket, ensure docker is running and your user has access to the socket",

		NoImagesSelected:        "no images selected: pass image references or use --dangling",
		NoSuchImage:             "no such image: {{ref}}",
		AmbiguousImageReference: "image reference '{{ref}}' matches more than one image, give more characters",
		NoDanglingImages:        "no dangling images to remove",
		NothingToRemove:         "nothing to remove",

		PlanHeading:     "The following images will be removed, in this order:",
		DryRunNotice:    "dry run: no images were removed",
		ConfirmRemoval:  "Remove {{count}} image(s)? (y/n): ",
		Aborted:         "aborted",
		RemovingImage:   "removing {{image}}",
		ImageStillInUse: "cannot remove {{image}}: something still depends on it",
		RemovalSummary:  "removed {{count}} image(s), reclaimed {{size}}",

		ColumnID:    "ID",
		ColumnImage: "IMAGE",
		ColumnSize:  "SIZE",
	}
}
