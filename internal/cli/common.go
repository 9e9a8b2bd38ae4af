package cli

import (
	"fmt"
	"io"

	"github.com/danieljhkim/stagereslot/internal/engine"
	"github.com/danieljhkim/stagereslot/internal/fsops"
)

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine() *engine.Engine {
	return engine.New(fsops.NewRealFS())
}

// formatError formats an error for display.
func formatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// ReportError writes a top-level error for the operator.
func ReportError(w io.Writer, err error) {
	_, _ = fmt.Fprintln(w, formatError(err))
}
