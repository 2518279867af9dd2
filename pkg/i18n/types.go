package i18n

// TranslationSet is a set of localised strings for a given language
type TranslationSet struct {
	ErrorOccurred                 string
	ConnectionFailed              string
	CannotAccessDockerSocketError string

	NoImagesSelected        string
	NoSuchImage             string
	AmbiguousImageReference string
	NoDanglingImages        string
	NothingToRemove         string

	PlanHeading     string
	DryRunNotice    string
	ConfirmRemoval  string
	Aborted         string
	RemovingImage   string
	ImageStillInUse string
	RemovalSummary  string

	ColumnID    string
	ColumnImage string
	ColumnSize  string
}
