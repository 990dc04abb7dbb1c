package model

// JobHandle is returned by the job creation call and identifies the job
// polled for the rest of the submission
type JobHandle struct {
	DownloadID string  `json:"download_id"`
	Title      string  `json:"title"`
	Author     string  `json:"author,omitempty"`
	Length     float64 `json:"length,omitempty"` // duration in seconds
	Message    string  `json:"message,omitempty"`
}

// Valid returns true if the handle can be polled
func (h JobHandle) Valid() bool {
	return h.DownloadID != ""
}

// StatusSnapshot is the payload of a single status poll. Each poll
// supersedes the previous one.
type StatusSnapshot struct {
	Status JobStatus `json:"status"`
	Title  string    `json:"title,omitempty"`
	Author string    `json:"author,omitempty"`
	Detail string    `json:"detail,omitempty"`
}

// Result is what the form renders once a job completes
type Result struct {
	DownloadID string
	Title      string
	Author     string
	Link       string // absolute URL of the file on the job server
}

// NewResult merges the completed snapshot with the handle. Snapshot values
// win; the handle fills in what the snapshot left out.
func NewResult(handle JobHandle, snapshot StatusSnapshot, link string) Result {
	result := Result{
		DownloadID: handle.DownloadID,
		Title:      snapshot.Title,
		Author:     snapshot.Author,
		Link:       link,
	}
	if result.Title == "" {
		result.Title = handle.Title
	}
	if result.Author == "" {
		result.Author = handle.Author
	}
	return result
}

// GetDisplayTitle returns the title, or the download ID when the server sent none
func (r Result) GetDisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.DownloadID
}
