package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lightlinux/buildprobe/pkg/encodingcheck"
	"github.com/lightlinux/buildprobe/pkg/output"
	"github.com/lightlinux/buildprobe/pkg/shmcheck"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		// A failed probe already printed its diagnostic.
		if !errors.Is(err, ErrProbeFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

var (
	shmName   string
	shmUnlink bool
)

var rootCmd = &cobra.Command{
	Use:   "buildprobe",
	Short: "Build-environment capability probes",
	Long: `Buildprobe verifies that a build or test environment provides the
capabilities a build actually exercises: POSIX shared-memory object
creation, and byte-exact pass-through of mixed-encoding program output.

Run without a subcommand it prints a banner, probes shared memory, then
emits the encoding fixture. A failed shared-memory probe stops the run
and exits nonzero.`,
	Version:       Version,
	Args:          cobra.NoArgs,
	RunE:          runAllProbes,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&shmName, "name", shmcheck.DefaultName,
		"shared-memory object name")
	rootCmd.PersistentFlags().BoolVar(&shmUnlink, "unlink", false,
		"remove the shared-memory object after the probe")
}

func runAllProbes(_ *cobra.Command, _ []string) error {
	output.PrintBanner(shmName)

	if err := runProbe(&shmcheck.Check{
		Name:   shmName,
		Unlink: shmUnlink,
		Opener: &shmcheck.RealOpener{},
	}); err != nil {
		return err
	}

	return runProbe(&encodingcheck.Check{})
}
