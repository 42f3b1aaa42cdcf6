package uierror

import (
	"fmt"
	"os"
)

// LogHandler is a Handler that logs failures to stderr.
type LogHandler struct {
	// Verbose enables the failure timestamp in the output.
	Verbose bool
}

// Handle logs a UIError to stderr.
func (h *LogHandler) Handle(err *UIError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[ember error] %s %s [%s]: %v\n",
			err.Timestamp.Format("15:04:05.000"), err.Op, err.Kind, err.Err)
	} else {
		fmt.Fprintf(os.Stderr, "[ember error] %s: %v\n", err.Op, err.Err)
	}
}
