package output

import (
	"io"

	"github.com/knockscan/knock/scan"
)

// Console renders a report as text to a writer, one line per port plus a
// summary line.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Write(report *scan.Report) error {
	if _, err := io.WriteString(c.w, report.String()); err != nil {
		return &SinkWriteError{Dest: "console", Err: err}
	}
	return nil
}
