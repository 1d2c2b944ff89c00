// Package diag formats the interpreter's non-fatal diagnostics: overflow
// warnings, division-by-zero notices, and the like, printed to stderr
// without aborting the run. It takes the place of original_source's
// coloured warning printing, giving those same events a visible,
// timestamped trail in the teacher's style of formatting operational
// messages with dustin/go-humanize and ncruces/go-strftime rather than
// bare fmt.
package diag

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ncruces/go-strftime"
)

// Warning is one non-fatal event worth surfacing to the user.
type Warning struct {
	At      time.Time
	X, Y    int64
	Message string
}

// Format renders w the way this interpreter prints warnings: a
// strftime-formatted timestamp, the grid position, and the message.
func Format(w Warning) string {
	ts, err := strftime.Format("%H:%M:%S", w.At)
	if err != nil {
		ts = w.At.Format("15:04:05")
	}
	return fmt.Sprintf("[%s] warning at (%d,%d): %s", ts, w.X, w.Y, w.Message)
}

// Emit writes Format(w) plus a newline to out.
func Emit(out io.Writer, w Warning) {
	fmt.Fprintln(out, Format(w))
}

// FormatCellCount renders a cell count for diagnostics that report
// Funge-Space size, using humanize's digit grouping so large programs
// print as "12,000 cells" rather than a bare digit string.
func FormatCellCount(n int) string {
	return humanize.Comma(int64(n)) + " cells"
}
