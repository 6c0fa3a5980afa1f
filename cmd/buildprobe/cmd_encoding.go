package main

import (
	"github.com/spf13/cobra"

	"github.com/lightlinux/buildprobe/pkg/encodingcheck"
)

var encodingCmd = &cobra.Command{
	Use:   "encoding",
	Short: "Emit the mixed-encoding output fixture",
	Long: `Write two lines to standard output: one with UTF-8 bytes for "öä" and
one with the Latin-1 bytes for the same characters. A harness that
captures program output is expected to compare them byte-for-byte; any
re-encoding or normalization on the way shows up as a mismatch.

Examples:
  buildprobe encoding | xxd               # inspect the raw bytes
  buildprobe encoding > got && cmp got expected`,
	RunE: runEncodingProbe,
}

func init() {
	rootCmd.AddCommand(encodingCmd)
}

func runEncodingProbe(_ *cobra.Command, _ []string) error {
	return runProbe(&encodingcheck.Check{})
}
