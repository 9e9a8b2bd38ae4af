package cli

import (
	"bufio"
	"fmt"
	"io"
)

// Pause waits for Enter so a console window opened for the run stays up
// until the operator has read the output. It returns at once unless interactive.
func Pause(in io.Reader, out io.Writer, interactive bool) {
	if !interactive {
		return
	}
	_, _ = fmt.Fprint(out, "\nPress Enter to exit...")
	_, _ = bufio.NewReader(in).ReadString('\n')
}
