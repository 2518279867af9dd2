package i18n

func polishSet() TranslationSet {
	return TranslationSet{
		ErrorOccurred:    "Wystąpił błąd! Zgłoś problem na https://github.com/MarcelRaschke/lazyrmi/issues",
		ConnectionFailed: "połączenie z klientem docker nie powiodło się. Może być konieczny restart klienta docker",

		NoImagesSelected: "nie wybrano obrazów: podaj referencje obrazów lub użyj --dangling",
		NoSuchImage:      "nie ma takiego obrazu: {{ref}}",
		NoDanglingImages: "brak wiszących obrazów do usunięcia",
		NothingToRemove:  "nie ma nic do usunięcia",

		PlanHeading:    "Następujące obrazy zostaną usunięte, w tej kolejności:",
		DryRunNotice:   "próba: żaden obraz nie został usunięty",
		ConfirmRemoval: "Usunąć {{count}} obraz(ów)? (y/n): ",
		Aborted:        "przerwano",
		RemovingImage:  "usuwanie {{image}}",
		RemovalSummary: "usunięto {{count}} obraz(ów), odzyskano {{size}}",
	}
}
