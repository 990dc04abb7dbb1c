package model

// JobStatus is the status reported by the job server for a single job
type JobStatus string

const (
	// JobStatusPending means the server accepted the job but has not started it
	JobStatusPending JobStatus = "pending"

	// JobStatusProcessing means the server is fetching or converting the media
	JobStatusProcessing JobStatus = "processing"

	// JobStatusCompleted means the file is ready to be downloaded
	JobStatusCompleted JobStatus = "completed"

	// JobStatusError means the job failed on the server
	JobStatusError JobStatus = "error"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsTerminal returns true if polling must stop after this status.
// Unknown values are not terminal.
func (js JobStatus) IsTerminal() bool {
	return js == JobStatusCompleted || js == JobStatusError
}

// FormState is the state of the download form for the current submission
type FormState string

const (
	FormStateIdle       FormState = "idle"
	FormStateSubmitting FormState = "submitting"
	FormStateProcessing FormState = "processing"
	FormStateCompleted  FormState = "completed"
	FormStateError      FormState = "error"
	FormStateCancelled  FormState = "cancelled"
)

// String returns the string representation of FormState
func (fs FormState) String() string {
	return string(fs)
}

// IsActive returns true while a submission is in flight
func (fs FormState) IsActive() bool {
	return fs == FormStateSubmitting || fs == FormStateProcessing
}

// IsFinished returns true if the submission reached a terminal state
func (fs FormState) IsFinished() bool {
	return fs == FormStateCompleted || fs == FormStateError || fs == FormStateCancelled
}

// CanTransition reports whether the form may move from fs to next.
// A new submission may start from idle or from any finished state.
func (fs FormState) CanTransition(next FormState) bool {
	switch next {
	case FormStateSubmitting:
		return fs == FormStateIdle || fs.IsFinished()
	case FormStateProcessing:
		return fs == FormStateSubmitting
	case FormStateCompleted:
		return fs == FormStateProcessing
	case FormStateError, FormStateCancelled:
		return fs.IsActive()
	default:
		return false
	}
}
