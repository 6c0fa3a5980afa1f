package shmcheck

import (
	"io"

	"github.com/lightlinux/buildprobe/pkg/probe"
)

// DefaultName is the shared-memory object name used when none is given.
// It matches the object left behind by earlier runs, so repeated probes
// open the same slot instead of piling up new ones.
const DefaultName = "mbd-test-cpp"

// Opener abstracts the platform shared-memory calls for testability.
type Opener interface {
	// OpenOrCreate opens the named shared-memory object for read/write,
	// creating it with owner-only permissions if absent. The returned
	// handle must be closed by the caller.
	OpenOrCreate(name string) (io.Closer, error)

	// Unlink removes the named object from the shared-memory namespace.
	Unlink(name string) error
}

// Check verifies that the environment supports POSIX shared-memory
// object creation. The object's content is never used; a successful
// open is the whole point.
type Check struct {
	Name   string // shared-memory object name (default: DefaultName)
	Unlink bool   // remove the object after the probe
	Opener Opener // injected for testing
}

// Run executes the shared-memory probe.
func (c *Check) Run() probe.Result {
	name := c.Name
	if name == "" {
		name = DefaultName
	}

	result := probe.Result{
		Name: "shm: " + name,
	}

	opener := c.Opener
	if opener == nil {
		opener = &RealOpener{}
	}

	handle, err := opener.OpenOrCreate(name)
	if err != nil {
		return result.Failf("shm_open(2) failed: %v", err)
	}

	// The open itself proved what we came for; a close error does not
	// change the outcome.
	_ = handle.Close()

	if c.Unlink {
		if err := opener.Unlink(name); err != nil {
			return result.Failf("shm_unlink(2) failed: %v", err)
		}
	}

	result.Status = probe.StatusOK
	result.Message = "shm_open works."
	return result
}
