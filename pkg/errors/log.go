package errors

import (
	"fmt"
	"os"
)

// LogHandler logs structured errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including the error category.
	Verbose bool
}

// HandleError logs a structured error to stderr.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[slint error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
	} else {
		fmt.Fprintf(os.Stderr, "[slint error] %s: %v\n", err.Op, err.Err)
	}
}
