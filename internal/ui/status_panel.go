package ui

import (
	"fmt"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ytfetch/internal/model"
)

// StatusPanel is the status display under the form. It shows either a single
// message or the finished job with a link to the file.
type StatusPanel struct {
	localization *Localization

	message     *widget.Label
	readyLabel  *widget.Label
	titleLabel  *widget.Label
	authorLabel *widget.Label
	link        *widget.Hyperlink
	resultBox   *fyne.Container
	content     *fyne.Container
}

// NewStatusPanel creates an empty status panel
func NewStatusPanel(localization *Localization) *StatusPanel {
	sp := &StatusPanel{localization: localization}

	sp.message = widget.NewLabel("")
	sp.message.Wrapping = fyne.TextWrapWord

	sp.readyLabel = widget.NewLabel("")
	sp.readyLabel.TextStyle = fyne.TextStyle{Bold: true}
	sp.titleLabel = widget.NewLabel("")
	sp.titleLabel.Wrapping = fyne.TextWrapWord
	sp.authorLabel = widget.NewLabel("")
	sp.link = widget.NewHyperlink("", nil)

	sp.resultBox = container.NewVBox(sp.readyLabel, sp.titleLabel, sp.authorLabel, sp.link)
	sp.resultBox.Hide()

	sp.content = container.NewVBox(sp.message, sp.resultBox)
	return sp
}

// Container returns the panel's canvas object
func (sp *StatusPanel) Container() fyne.CanvasObject {
	return sp.content
}

// ShowMessage replaces the panel content with text
func (sp *StatusPanel) ShowMessage(text string) {
	fyne.Do(func() {
		sp.resultBox.Hide()
		sp.message.SetText(text)
		sp.message.Show()
	})
}

// ShowResult replaces the panel content with the finished job
func (sp *StatusPanel) ShowResult(result model.Result) {
	author := result.Author
	if author == "" {
		author = DashPlaceholder
	}

	// localization is read on the UI goroutine, where the language changes
	fyne.Do(func() {
		link, err := url.Parse(result.Link)
		if err != nil {
			sp.resultBox.Hide()
			sp.message.SetText(fmt.Sprintf(sp.localization.GetText(KeyErrorFmt), err.Error()))
			sp.message.Show()
			return
		}

		sp.message.Hide()
		sp.readyLabel.SetText(IconDone + " " + sp.localization.GetText(KeyDownloadReady))
		sp.titleLabel.SetText(fmt.Sprintf(sp.localization.GetText(KeyTitleFmt), result.GetDisplayTitle()))
		sp.authorLabel.SetText(fmt.Sprintf(sp.localization.GetText(KeyAuthorFmt), author))
		sp.link.SetText(sp.localization.GetText(KeyClickToDownload))
		sp.link.SetURL(link)
		sp.resultBox.Show()
	})
}

// Text returns everything the panel currently shows, one line per element
func (sp *StatusPanel) Text() string {
	if !sp.resultBox.Visible() {
		return sp.message.Text
	}
	text := sp.readyLabel.Text + "\n" + sp.titleLabel.Text + "\n" + sp.authorLabel.Text + "\n" + sp.link.Text
	if sp.link.URL != nil {
		text += " (" + sp.link.URL.String() + ")"
	}
	return text
}

// buttonControl adapts a button so the controller can toggle it from its
// own goroutine
type buttonControl struct {
	button *widget.Button
}

func (b buttonControl) Enable() {
	fyne.Do(b.button.Enable)
}

func (b buttonControl) Disable() {
	fyne.Do(b.button.Disable)
}
