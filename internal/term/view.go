// Package term renders the download form's status on a terminal.
package term

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/ytget/ytfetch/internal/model"
)

const spinnerTick = 100 * time.Millisecond

// View prints status lines and shows a spinner while a job is processing
type View struct {
	out     io.Writer
	spinner bool

	mu   sync.Mutex
	bar  *progressbar.ProgressBar
	stop chan struct{}
	done chan struct{}
}

// NewView creates a view writing to out. With spinner false every message
// is printed on its own line, which suits pipes and logs.
func NewView(out io.Writer, spinner bool) *View {
	return &View{out: out, spinner: spinner}
}

// ShowMessage prints text, or updates the spinner description while one runs
func (v *View) ShowMessage(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.bar != nil {
		v.bar.Describe(text)
		return
	}
	fmt.Fprintln(v.out, text)
}

// ShowResult prints the finished job and its link
func (v *View) ShowResult(result model.Result) {
	v.stopSpinner()

	v.mu.Lock()
	defer v.mu.Unlock()

	author := result.Author
	if author == "" {
		author = "unknown"
	}
	fmt.Fprintln(v.out, "Download ready!")
	fmt.Fprintf(v.out, "Title: %s\n", result.GetDisplayTitle())
	fmt.Fprintf(v.out, "Author: %s\n", author)
	fmt.Fprintln(v.out, result.Link)
}

// OnStateChange starts the spinner when a job starts processing and stops
// it on any other state. Pass it to Controller.SetStateCallback.
func (v *View) OnStateChange(state model.FormState) {
	if state == model.FormStateProcessing && v.spinner {
		v.startSpinner()
		return
	}
	if state != model.FormStateProcessing {
		v.stopSpinner()
	}
}

// Enable and Disable satisfy download.SubmitControl; a terminal has
// nothing to toggle.
func (v *View) Enable()  {}
func (v *View) Disable() {}

func (v *View) startSpinner() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.bar != nil {
		return
	}

	v.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(v.out),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionEnableColorCodes(true),
	)
	v.stop = make(chan struct{})
	v.done = make(chan struct{})

	go func(bar *progressbar.ProgressBar, stop, done chan struct{}) {
		defer close(done)
		ticker := time.NewTicker(spinnerTick)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				v.mu.Lock()
				_ = bar.Add(1)
				v.mu.Unlock()
			}
		}
	}(v.bar, v.stop, v.done)
}

func (v *View) stopSpinner() {
	v.mu.Lock()
	bar, stop, done := v.bar, v.stop, v.done
	v.bar, v.stop, v.done = nil, nil, nil
	v.mu.Unlock()

	if bar == nil {
		return
	}
	close(stop)
	<-done
	_ = bar.Finish()
	fmt.Fprintln(v.out)
}
