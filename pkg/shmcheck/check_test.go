package shmcheck

import (
	"errors"
	"io"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightlinux/buildprobe/pkg/probe"
)

type nopCloser struct{ closeErr error }

func (n *nopCloser) Close() error { return n.closeErr }

type mockOpener struct {
	openErr   error
	closeErr  error
	unlinkErr error
	opened    []string
	unlinked  []string
}

func (m *mockOpener) OpenOrCreate(name string) (io.Closer, error) {
	m.opened = append(m.opened, name)
	if m.openErr != nil {
		return nil, m.openErr
	}
	return &nopCloser{closeErr: m.closeErr}, nil
}

func (m *mockOpener) Unlink(name string) error {
	m.unlinked = append(m.unlinked, name)
	return m.unlinkErr
}

func TestShmCheck(t *testing.T) {
	tests := []struct {
		name        string
		check       Check
		opener      *mockOpener
		wantStatus  probe.Status
		wantMessage string
	}{
		{"open succeeds", Check{Name: "probe-test"}, &mockOpener{}, probe.StatusOK, "shm_open works."},
		{"open denied", Check{Name: "probe-test"}, &mockOpener{openErr: syscall.EACCES}, probe.StatusFail, "shm_open(2) failed: permission denied"},
		{"no shm namespace", Check{Name: "probe-test"}, &mockOpener{openErr: syscall.ENOENT}, probe.StatusFail, "shm_open(2) failed: no such file or directory"},
		{"close error ignored", Check{Name: "probe-test"}, &mockOpener{closeErr: errors.New("bad fd")}, probe.StatusOK, "shm_open works."},
		{"unlink succeeds", Check{Name: "probe-test", Unlink: true}, &mockOpener{}, probe.StatusOK, "shm_open works."},
		{"unlink fails", Check{Name: "probe-test", Unlink: true}, &mockOpener{unlinkErr: syscall.EACCES}, probe.StatusFail, "shm_unlink(2) failed: permission denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check.Opener = tt.opener
			result := tt.check.Run()
			assert.Equal(t, tt.wantStatus, result.Status, "message: %s", result.Message)
			assert.Equal(t, tt.wantMessage, result.Message)
		})
	}
}

func TestShmCheckFailureCarriesPlatformError(t *testing.T) {
	c := Check{Name: "probe-test", Opener: &mockOpener{openErr: syscall.EACCES}}

	result := c.Run()

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "permission denied")
}

func TestShmCheckDefaultName(t *testing.T) {
	opener := &mockOpener{}
	c := Check{Opener: opener}

	result := c.Run()

	assert.Equal(t, probe.StatusOK, result.Status)
	assert.Equal(t, []string{DefaultName}, opener.opened)
	assert.Equal(t, "shm: "+DefaultName, result.Name)
}

func TestShmCheckUnlinkOnlyWhenRequested(t *testing.T) {
	opener := &mockOpener{}
	c := Check{Name: "probe-test", Opener: opener}

	c.Run()

	assert.Empty(t, opener.unlinked)
}

func TestShmCheckNoUnlinkAfterFailedOpen(t *testing.T) {
	opener := &mockOpener{openErr: syscall.EACCES}
	c := Check{Name: "probe-test", Unlink: true, Opener: opener}

	result := c.Run()

	assert.Equal(t, probe.StatusFail, result.Status)
	assert.Empty(t, opener.unlinked)
}
