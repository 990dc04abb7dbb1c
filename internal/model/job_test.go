package model

import "testing"

func TestJobHandle_Valid(t *testing.T) {
	if (JobHandle{Title: "Song"}).Valid() {
		t.Error("Expected handle without download_id to be invalid")
	}
	if !(JobHandle{DownloadID: "abc"}).Valid() {
		t.Error("Expected handle with download_id to be valid")
	}
}

func TestNewResult(t *testing.T) {
	handle := JobHandle{DownloadID: "abc", Title: "Handle Title", Author: "Handle Author"}

	tests := []struct {
		name     string
		snapshot StatusSnapshot
		title    string
		author   string
	}{
		{"snapshot wins", StatusSnapshot{Status: JobStatusCompleted, Title: "Song", Author: "Artist"}, "Song", "Artist"},
		{"handle fallback", StatusSnapshot{Status: JobStatusCompleted}, "Handle Title", "Handle Author"},
		{"mixed", StatusSnapshot{Status: JobStatusCompleted, Author: "Artist"}, "Handle Title", "Artist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewResult(handle, tt.snapshot, "http://server/api/download/abc")
			if result.Title != tt.title {
				t.Errorf("Expected title %q, got %q", tt.title, result.Title)
			}
			if result.Author != tt.author {
				t.Errorf("Expected author %q, got %q", tt.author, result.Author)
			}
			if result.DownloadID != "abc" {
				t.Errorf("Expected download ID abc, got %q", result.DownloadID)
			}
			if result.Link != "http://server/api/download/abc" {
				t.Errorf("Unexpected link %q", result.Link)
			}
		})
	}
}

func TestResult_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		result   Result
		expected string
	}{
		{Result{DownloadID: "abc", Title: "Song"}, "Song"},
		{Result{DownloadID: "abc"}, "abc"},
	}

	for _, test := range tests {
		if got := test.result.GetDisplayTitle(); got != test.expected {
			t.Errorf("GetDisplayTitle() = %q, expected %q", got, test.expected)
		}
	}
}
