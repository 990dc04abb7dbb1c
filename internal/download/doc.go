package download

// Package download implements the form controller: it turns a form
// submission into a job on the server, polls the job until it finishes and
// drives the status display and submit control along the way.
