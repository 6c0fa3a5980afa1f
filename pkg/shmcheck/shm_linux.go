//go:build linux

package shmcheck

import (
	"io"
	"os"
	"path"

	"golang.org/x/sys/unix"
)

// Linux backs POSIX shared-memory objects with a tmpfs mounted here;
// shm_open(3) is open(2) on a file under this prefix.
const shmDir = "/dev/shm"

// RealOpener implements Opener using actual system calls.
type RealOpener struct{}

// OpenOrCreate opens or creates the named shared-memory object with
// read/write access and owner-only permissions (shm_open with
// O_RDWR|O_CREAT and mode 0700).
func (r *RealOpener) OpenOrCreate(name string) (io.Closer, error) {
	fd, err := unix.Open(path.Join(shmDir, name), unix.O_RDWR|unix.O_CREAT, 0o700)
	if err != nil {
		return nil, err
	}
	return os.NewFile(uintptr(fd), name), nil
}

// Unlink removes the named object from the shared-memory namespace.
func (r *RealOpener) Unlink(name string) error {
	return unix.Unlink(path.Join(shmDir, name))
}
