package ui

import (
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ytfetch/internal/config"
	"github.com/ytget/ytfetch/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	serverEntry    *widget.Entry
	qualitySelect  *widget.Select
	fileTypeSelect *widget.Select
	intervalEntry  *widget.Entry
	languageSelect *widget.Select
}

// ShowSettingsDialog opens the settings dialog; onSaved runs after a save
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.serverEntry = widget.NewEntry()
	sd.serverEntry.SetPlaceHolder(config.DefaultServerURL)
	sd.serverEntry.Validator = func(input string) error {
		if strings.TrimSpace(input) == "" {
			return nil
		}
		return model.ValidateURL(strings.TrimSpace(input))
	}

	sd.qualitySelect = widget.NewSelect(qualityOptions(), nil)
	sd.fileTypeSelect = widget.NewSelect(fileTypeOptions(), nil)

	sd.intervalEntry = widget.NewEntry()
	sd.intervalEntry.SetPlaceHolder("1000")

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyServerURL)+":"),
		sd.serverEntry,

		widget.NewLabel(sd.localization.GetText(KeyQuality)+":"),
		sd.qualitySelect,

		widget.NewLabel(sd.localization.GetText(KeyFileType)+":"),
		sd.fileTypeSelect,

		widget.NewLabel(sd.localization.GetText(KeyPollInterval)+":"),
		sd.intervalEntry,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(480, 420))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.serverEntry.SetText(sd.settings.GetServerURL())
	sd.qualitySelect.SetSelected(string(sd.settings.GetQuality()))
	sd.fileTypeSelect.SetSelected(string(sd.settings.GetFileType()))
	sd.intervalEntry.SetText(strconv.Itoa(int(sd.settings.GetPollInterval() / time.Millisecond)))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Invalid server URLs are dropped; the entry validator already flagged them
	serverURL := strings.TrimSpace(sd.serverEntry.Text)
	if serverURL == "" || model.ValidateURL(serverURL) == nil {
		sd.settings.SetServerURL(serverURL)
	}

	if sd.qualitySelect.Selected != "" {
		sd.settings.SetQuality(model.Quality(sd.qualitySelect.Selected))
	}

	if sd.fileTypeSelect.Selected != "" {
		sd.settings.SetFileType(model.FileType(sd.fileTypeSelect.Selected))
	}

	if ms, err := strconv.Atoi(strings.TrimSpace(sd.intervalEntry.Text)); err == nil {
		sd.settings.SetPollInterval(time.Duration(ms) * time.Millisecond)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
