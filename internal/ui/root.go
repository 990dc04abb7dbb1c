package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/ytfetch/internal/api"
	"github.com/ytget/ytfetch/internal/config"
	"github.com/ytget/ytfetch/internal/download"
	"github.com/ytget/ytfetch/internal/model"
)

// ClientFactory builds the job server client for a server URL
type ClientFactory func(serverURL string) (download.JobClient, error)

// RootUI represents the main window: the download form and its status panel
type RootUI struct {
	window         fyne.Window
	urlEntry       *widget.Entry
	qualitySelect  *widget.Select
	fileTypeSelect *widget.Select
	submitBtn      *widget.Button
	cancelBtn      *widget.Button
	status         *StatusPanel
	settings       *config.Settings
	localization   *Localization
	logger         *zap.Logger
	newClient      ClientFactory

	// controller of the current or last submission, touched on the UI goroutine
	controller *download.Controller
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, logger *zap.Logger) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		logger:       logger,
	}
	ui.newClient = func(serverURL string) (download.JobClient, error) {
		client, err := api.NewClient(serverURL, api.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// SetClientFactory replaces the factory used to reach the job server
func (ui *RootUI) SetClientFactory(factory ClientFactory) {
	ui.newClient = factory
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.Validator = ui.validateURL
	// Submit when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		if ui.busy() {
			return
		}
		ui.onSubmit()
	}

	ui.qualitySelect = widget.NewSelect(qualityOptions(), nil)
	ui.qualitySelect.SetSelected(string(ui.settings.GetQuality()))

	ui.fileTypeSelect = widget.NewSelect(fileTypeOptions(), nil)
	ui.fileTypeSelect.SetSelected(string(ui.settings.GetFileType()))

	ui.submitBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onSubmit)
	ui.submitBtn.Importance = widget.HighImportance

	ui.cancelBtn = widget.NewButton(ui.localization.GetText(KeyCancel), ui.onCancel)
	ui.cancelBtn.Hide()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.status = NewStatusPanel(ui.localization)

	urlRow := container.NewBorder(nil, nil, settingsBtn, nil, ui.urlEntry)
	optionsRow := container.NewHBox(
		widget.NewLabel(ui.localization.GetText(KeyQuality)),
		container.NewGridWrap(fyne.NewSize(SelectMinWidth, ui.qualitySelect.MinSize().Height), ui.qualitySelect),
		widget.NewLabel(ui.localization.GetText(KeyFileType)),
		container.NewGridWrap(fyne.NewSize(SelectMinWidth, ui.fileTypeSelect.MinSize().Height), ui.fileTypeSelect),
	)
	buttonsRow := container.NewHBox(ui.submitBtn, ui.cancelBtn)

	form := container.NewVBox(urlRow, optionsRow, buttonsRow, widget.NewSeparator())
	content := container.NewBorder(form, nil, nil, nil, container.NewVScroll(ui.status.Container()))

	ui.window.SetContent(content)
	ui.logger.Debug("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.submitBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.cancelBtn.SetText(ui.localization.GetText(KeyCancel))
}

// validateURL is the entry validator; empty input is allowed while typing
func (ui *RootUI) validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	if err := model.ValidateURL(strings.TrimSpace(input)); err != nil {
		return errors.New(ui.localization.GetText(KeyInvalidURL))
	}
	return nil
}

// Request returns the current form values
func (ui *RootUI) Request() model.DownloadRequest {
	return model.DownloadRequest{
		URL:      ui.urlEntry.Text,
		Quality:  model.Quality(ui.qualitySelect.Selected),
		FileType: model.FileType(ui.fileTypeSelect.Selected),
	}
}

// onSubmit handles the download button and Enter in the URL field. The
// submission is claimed here, so a second press is rejected, and the
// network work runs on its own goroutine.
func (ui *RootUI) onSubmit() {
	sub, err := ui.start(context.Background())
	if err != nil {
		if !errors.Is(err, download.ErrBusy) {
			ui.status.ShowMessage(fmt.Sprintf(ui.localization.GetText(KeyErrorFmt), err.Error()))
			ui.logger.Error("download error", zap.Error(err))
		}
		return
	}

	go sub.Run()
}

// Submit runs a submission with the current form values and waits for it
func (ui *RootUI) Submit(ctx context.Context) error {
	sub, err := ui.start(ctx)
	if err != nil {
		return err
	}
	return sub.Run()
}

// busy reports whether a submission is in flight
func (ui *RootUI) busy() bool {
	return ui.controller != nil && ui.controller.State().IsActive()
}

// start builds a controller and claims it. It must run on the UI goroutine.
func (ui *RootUI) start(ctx context.Context) (*download.Submission, error) {
	ctrl, err := ui.prepare()
	if err != nil {
		return nil, err
	}
	sub, err := ctrl.Start(ctx)
	if err != nil {
		return nil, err
	}
	ui.submitBtn.Disable()
	return sub, nil
}

// prepare snapshots the form and builds a controller for the current
// settings. It must run on the UI goroutine.
func (ui *RootUI) prepare() (*download.Controller, error) {
	if ui.busy() {
		return nil, download.ErrBusy
	}

	client, err := ui.newClient(ui.settings.GetServerURL())
	if err != nil {
		return nil, err
	}

	opts := download.Options{
		PollInterval: ui.settings.GetPollInterval(),
		MaxPolls:     ui.settings.GetMaxPolls(),
		Timeout:      ui.settings.GetTimeout(),
		Messages:     ui.localization.Messages(),
	}

	form := formSnapshot{req: ui.Request()}
	ctrl := download.NewController(client, form, ui.status, buttonControl{button: ui.submitBtn}, ui.logger, opts)
	ctrl.SetStateCallback(ui.onStateChange)
	ui.controller = ctrl
	return ctrl, nil
}

// onStateChange shows the cancel button while a submission is active
func (ui *RootUI) onStateChange(state model.FormState) {
	fyne.Do(func() {
		if state.IsActive() {
			ui.cancelBtn.Show()
		} else {
			ui.cancelBtn.Hide()
		}
	})
}

// onCancel aborts the submission in flight
func (ui *RootUI) onCancel() {
	if ui.controller != nil {
		ui.controller.Cancel()
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.qualitySelect.SetSelected(string(ui.settings.GetQuality()))
		ui.fileTypeSelect.SetSelected(string(ui.settings.GetFileType()))
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	})
}

// formSnapshot holds the form values captured at submit time
type formSnapshot struct {
	req model.DownloadRequest
}

func (f formSnapshot) Request() model.DownloadRequest {
	return f.req
}

func qualityOptions() []string {
	options := make([]string, 0, len(model.QualityOptions()))
	for _, q := range model.QualityOptions() {
		options = append(options, string(q))
	}
	return options
}

func fileTypeOptions() []string {
	options := make([]string, 0, len(model.FileTypeOptions()))
	for _, ft := range model.FileTypeOptions() {
		options = append(options, string(ft))
	}
	return options
}
