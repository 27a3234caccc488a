package drill

import (
	"time"

	"github.com/abhisek/lexiz/internal/verify"
)

// batchReadyMsg is sent when the word batch fetch resolves.
type batchReadyMsg struct {
	Err error
}

// outcomeMsg is sent when answer verification resolves.
type outcomeMsg struct {
	Outcome verify.Outcome
	Err     error
}

// spinnerTickMsg is sent at short intervals to animate the loading spinner.
type spinnerTickMsg time.Time
