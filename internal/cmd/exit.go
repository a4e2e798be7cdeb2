package cmd

import "fmt"

// SilentExit signals a process exit code without an error message of
// its own. It is used when the child process already reported the
// failure on its diagnostic stream.
type SilentExit struct {
	Code int
}

func (e *SilentExit) Error() string {
	return fmt.Sprintf("silent exit %d", e.Code)
}

// NewSilentExit returns a SilentExit carrying the given exit code.
func NewSilentExit(code int) *SilentExit {
	return &SilentExit{Code: code}
}
