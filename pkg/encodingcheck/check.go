// Package encodingcheck emits a fixed byte stream mixing UTF-8 and
// Latin-1 text, for harnesses that compare captured program output
// byte-for-byte. A harness that re-encodes or normalizes what it
// captures will not reproduce these bytes.
package encodingcheck

import (
	"io"
	"os"

	"github.com/lightlinux/buildprobe/pkg/probe"
)

// Both lines spell "öä". The first is UTF-8 (c3 b6 c3 a4); the second
// is the Latin-1 encoding of the same characters (f6 e4) and is
// intentionally not valid UTF-8.
const (
	utf8Line   = "UTF-8 : öä\n"
	latin1Line = "Latin1: \xf6\xe4\n"
)

// Check writes the mixed-encoding fixture to Out. It cannot detect
// mis-encoding itself; the comparison happens outside the process.
type Check struct {
	Out io.Writer // defaults to os.Stdout
}

// Run executes the encoding probe.
func (c *Check) Run() probe.Result {
	result := probe.Result{
		Name: "encoding",
	}

	out := c.Out
	if out == nil {
		out = os.Stdout
	}

	if _, err := io.WriteString(out, utf8Line); err != nil {
		return result.Failf("write failed: %v", err)
	}
	if _, err := io.WriteString(out, latin1Line); err != nil {
		return result.Failf("write failed: %v", err)
	}

	result.Status = probe.StatusOK
	return result
}
