package api

// Package api is the HTTP client for the download job server. It creates
// jobs, fetches job status snapshots and builds links to finished files.
