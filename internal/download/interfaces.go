package download

import (
	"context"

	"github.com/ytget/ytfetch/internal/model"
)

// JobClient is the job server API used by the controller
type JobClient interface {
	CreateJob(ctx context.Context, req model.DownloadRequest) (model.JobHandle, error)
	Status(ctx context.Context, downloadID string) (model.StatusSnapshot, error)
	DownloadURL(downloadID string) string
}

// FormReader returns the current values of the form fields
type FormReader interface {
	Request() model.DownloadRequest
}

// StatusView is the status display of the form
type StatusView interface {
	// ShowMessage replaces the display with a single line of text
	ShowMessage(text string)

	// ShowResult replaces the display with the finished job and its link
	ShowResult(result model.Result)
}

// SubmitControl is the control that starts a submission.
// *widget.Button satisfies it.
type SubmitControl interface {
	Enable()
	Disable()
}
