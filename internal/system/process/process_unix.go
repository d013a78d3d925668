// Released under an MIT license. See LICENSE.

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris
// +build aix darwin dragonfly freebsd linux netbsd openbsd solaris

package process

import (
	"time"

	"golang.org/x/sys/unix"
)

// Platform names the family of operating systems alc is running on.
//
//nolint:gochecknoglobals
var Platform = "unix"

// Getwd returns the current working directory.
func Getwd() (string, error) {
	return unix.Getwd()
}

// Sleep pauses the calling goroutine for at least d.
// It resumes sleeping if interrupted by a signal.
func Sleep(d time.Duration) error {
	if d <= 0 {
		return nil
	}

	ts := unix.NsecToTimespec(d.Nanoseconds())

	for {
		err := unix.Nanosleep(&ts, &ts)
		if err != unix.EINTR {
			return err
		}
	}
}
