package model

// Package model defines the data exchanged with the job server and the state
// of the download form: requests, job handles, status snapshots, results and
// the form state machine.
