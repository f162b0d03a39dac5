package services

import "errors"

// Student service errors
var (
	// ErrNoDataset indicates no spreadsheet has been uploaded yet, or
	// the last upload failed and cleared the session state.
	ErrNoDataset = errors.New("no dataset loaded")

	// ErrStudentNotFound indicates the requested student index is out
	// of range for the current dataset.
	ErrStudentNotFound = errors.New("student not found")
)
