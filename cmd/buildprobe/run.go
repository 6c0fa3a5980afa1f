package main

import (
	"errors"

	"github.com/lightlinux/buildprobe/pkg/output"
	"github.com/lightlinux/buildprobe/pkg/probe"
)

// ErrProbeFailed is returned when a probe fails.
var ErrProbeFailed = errors.New("probe failed")

// runProbe executes a probe, prints the result, and returns an error if
// it failed. The returned error causes main to exit with code 1.
func runProbe(p probe.Probe) error {
	result := p.Run()
	output.PrintResult(result)

	if !result.OK() {
		return ErrProbeFailed
	}
	return nil
}
