package output

import (
	"fmt"
	"os"

	"github.com/jwalton/go-supportscolor"

	"github.com/lightlinux/buildprobe/pkg/probe"
)

var (
	green    = "\033[32m"
	red      = "\033[31m"
	reset    = "\033[0m"
	resetErr = "\033[0m"
)

func init() {
	// Captured output must be the plain bytes; color only on terminals.
	if !supportscolor.Stdout().SupportsColor {
		green, reset = "", ""
	}
	if !supportscolor.Stderr().SupportsColor {
		red, resetErr = "", ""
	}
}

// PrintBanner writes the line identifying the probe run.
func PrintBanner(project string) {
	fmt.Printf("Test project %s.\n", project)
}

// PrintResult outputs a probe result: successes to stdout, failures to
// stderr. Probes that emit their own output carry no message and print
// nothing here.
func PrintResult(r probe.Result) {
	if r.OK() {
		if r.Message != "" {
			fmt.Printf("%sOK:%s %s\n", green, reset, r.Message)
		}
		return
	}
	fmt.Fprintf(os.Stderr, "%sOoops:%s %s\n", red, resetErr, r.Message)
}
