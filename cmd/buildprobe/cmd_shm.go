package main

import (
	"github.com/spf13/cobra"

	"github.com/lightlinux/buildprobe/pkg/shmcheck"
)

var shmCmd = &cobra.Command{
	Use:   "shm",
	Short: "Check that a POSIX shared-memory object can be created",
	Long: `Open or create a named shared-memory object with read/write access,
then release the handle. The object's content is never touched; the
probe only confirms that allocation is possible.

The object stays resident in the shared-memory namespace afterwards, so
a second run opens the same object. Pass --unlink to remove it instead.

Examples:
  buildprobe shm                          # probe with the default object name
  buildprobe shm --name ci-worker-3       # avoid collisions between runners
  buildprobe shm --unlink                 # clean up after the probe`,
	RunE: runShmProbe,
}

func init() {
	rootCmd.AddCommand(shmCmd)
}

func runShmProbe(_ *cobra.Command, _ []string) error {
	return runProbe(&shmcheck.Check{
		Name:   shmName,
		Unlink: shmUnlink,
		Opener: &shmcheck.RealOpener{},
	})
}
