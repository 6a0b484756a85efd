package orchestrator

import "errors"

// Error taxonomy for the public operations. Lower layers return their own
// errors; the orchestrator wraps them into exactly one of these so the API
// boundary can translate with errors.Is in a single place.
var (
	// ErrInvalidSelection marks a bad name, race or class (client error)
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrNotFound marks an unknown character id or session token (client error)
	ErrNotFound = errors.New("not found")
	// ErrCorrupt marks a stored transcript that failed shape validation
	ErrCorrupt = errors.New("corrupt session state")
	// ErrGenerator marks a failed or timed-out text-generation call
	ErrGenerator = errors.New("narrative generation failed")
	// ErrStorage marks an unavailable or failed persistence layer
	ErrStorage = errors.New("storage failure")
)
