// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package imageload

// State is the lifecycle state of a cache entry.
type State uint8

const (
	// NotStarted means no entry exists for the source.
	NotStarted State = iota

	// Loading means a fetch was started and has not been delivered yet.
	Loading

	// Loaded means the image decoded successfully.
	Loaded

	// Failed means the fetch or decode failed. Failed entries are not retried.
	Failed
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case Loading:
		return "Loading"
	case Loaded:
		return "Loaded"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}
