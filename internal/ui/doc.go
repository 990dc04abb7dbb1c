package ui

// Package ui contains the Fyne desktop form: URL entry, quality and file
// type selects, the submit button and the status panel the form controller
// writes to. All UI strings are localized via Localization.
