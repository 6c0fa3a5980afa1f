//go:build !linux

package shmcheck

import (
	"errors"
	"io"
)

// ErrPlatformNotSupported is returned on platforms without a POSIX
// shared-memory namespace this probe knows how to reach.
var ErrPlatformNotSupported = errors.New("no shared memory support on this platform")

// RealOpener implements Opener where shared memory is unavailable.
type RealOpener struct{}

func (r *RealOpener) OpenOrCreate(name string) (io.Closer, error) {
	return nil, ErrPlatformNotSupported
}

func (r *RealOpener) Unlink(name string) error {
	return ErrPlatformNotSupported
}
